package record

import (
	"expman-backend/internal/domain/record"

	"go.uber.org/zap"
)

type ProjectCreate struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description"`
	Client      string  `json:"client" validate:"required,max=100"`
	Status      *string `json:"status" validate:"omitempty,oneof=planning active completed cancelled"`
	StartDate   *string `json:"start_date" validate:"omitempty,dateonly"`
	EndDate     *string `json:"end_date" validate:"omitempty,dateonly"`
	Progress    *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

type ProjectPatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Client      *string `json:"client" validate:"omitempty,min=1,max=100"`
	Status      *string `json:"status" validate:"omitempty,oneof=planning active completed cancelled"`
	StartDate   *string `json:"start_date" validate:"omitempty,dateonly"`
	EndDate     *string `json:"end_date" validate:"omitempty,dateonly"`
	Progress    *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

type ProjectDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Client      string  `json:"client"`
	Status      string  `json:"status"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Progress    int     `json:"progress"`
	CreatedAt   string  `json:"created_at"`
}

type projectCodec struct{}

func (projectCodec) New(in ProjectCreate) *record.Project {
	status := record.ProjectPlanning
	if in.Status != nil {
		status = record.ProjectStatus(*in.Status)
	}
	progress := 0
	if in.Progress != nil {
		progress = *in.Progress
	}
	return &record.Project{
		Name:        in.Name,
		Description: in.Description,
		Client:      in.Client,
		Status:      status,
		StartDate:   mustDatePtr(in.StartDate),
		EndDate:     mustDatePtr(in.EndDate),
		Progress:    progress,
	}
}

func (projectCodec) Patch(p *record.Project, in ProjectPatch) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Client != nil {
		p.Client = *in.Client
	}
	if in.Status != nil {
		p.Status = record.ProjectStatus(*in.Status)
	}
	if in.StartDate != nil {
		p.StartDate = mustDatePtr(in.StartDate)
	}
	if in.EndDate != nil {
		p.EndDate = mustDatePtr(in.EndDate)
	}
	if in.Progress != nil {
		p.Progress = *in.Progress
	}
}

func (projectCodec) Transcode(p *record.Project) ProjectDTO {
	return ProjectDTO{
		ID:          fmtID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Client:      p.Client,
		Status:      string(p.Status),
		StartDate:   fmtDatePtr(p.StartDate),
		EndDate:     fmtDatePtr(p.EndDate),
		Progress:    p.Progress,
		CreatedAt:   fmtTime(p.CreatedAt),
	}
}

type ProjectUsecase = Usecase[record.Project, ProjectCreate, ProjectPatch, ProjectDTO]

func NewProjectUsecase(repo record.Repository[record.Project], log *zap.Logger) *ProjectUsecase {
	return New(repo, projectCodec{}, log)
}
