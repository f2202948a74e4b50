package record

import (
	"expman-backend/internal/domain/record"

	"go.uber.org/zap"
)

type EmployeeCreate struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Position   string `json:"position" validate:"required,max=100"`
	Department string `json:"department" validate:"required,max=100"`
}

type EmployeePatch struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Position   *string `json:"position" validate:"omitempty,min=1,max=100"`
	Department *string `json:"department" validate:"omitempty,min=1,max=100"`
}

type EmployeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type employeeCodec struct{}

func (employeeCodec) New(in EmployeeCreate) *record.Employee {
	return &record.Employee{
		Name:       in.Name,
		Email:      in.Email,
		Position:   in.Position,
		Department: in.Department,
	}
}

func (employeeCodec) Patch(e *record.Employee, in EmployeePatch) {
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.Department != nil {
		e.Department = *in.Department
	}
}

func (employeeCodec) Transcode(e *record.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         fmtID(e.ID),
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		CreatedAt:  fmtTime(e.CreatedAt),
	}
}

type EmployeeUsecase = Usecase[record.Employee, EmployeeCreate, EmployeePatch, EmployeeDTO]

func NewEmployeeUsecase(repo record.Repository[record.Employee], log *zap.Logger) *EmployeeUsecase {
	return New(repo, employeeCodec{}, log)
}
