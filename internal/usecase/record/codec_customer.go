package record

import (
	"expman-backend/internal/domain/record"

	"go.uber.org/zap"
)

type CustomerCreate struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Status  *string `json:"status" validate:"omitempty,oneof=lead prospect customer inactive"`
}

type CustomerPatch struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Company *string `json:"company" validate:"omitempty,max=100"`
	Status  *string `json:"status" validate:"omitempty,oneof=lead prospect customer inactive"`
}

type CustomerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type customerCodec struct{}

func (customerCodec) New(in CustomerCreate) *record.Customer {
	status := record.CustomerLead
	if in.Status != nil {
		status = record.CustomerStatus(*in.Status)
	}
	return &record.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
		Status:  status,
	}
}

func (customerCodec) Patch(cu *record.Customer, in CustomerPatch) {
	if in.Name != nil {
		cu.Name = *in.Name
	}
	if in.Email != nil {
		cu.Email = *in.Email
	}
	if in.Phone != nil {
		cu.Phone = *in.Phone
	}
	if in.Company != nil {
		cu.Company = *in.Company
	}
	if in.Status != nil {
		cu.Status = record.CustomerStatus(*in.Status)
	}
}

func (customerCodec) Transcode(cu *record.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        fmtID(cu.ID),
		Name:      cu.Name,
		Email:     cu.Email,
		Phone:     cu.Phone,
		Company:   cu.Company,
		Status:    string(cu.Status),
		CreatedAt: fmtTime(cu.CreatedAt),
	}
}

type CustomerUsecase = Usecase[record.Customer, CustomerCreate, CustomerPatch, CustomerDTO]

func NewCustomerUsecase(repo record.Repository[record.Customer], log *zap.Logger) *CustomerUsecase {
	return New(repo, customerCodec{}, log)
}
