package record

import (
	"expman-backend/internal/domain/record"

	"go.uber.org/zap"
)

type AssetCreate struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required,oneof=equipment furniture vehicle software other"`
	Value       *float64 `json:"value" validate:"required,gte=0,dec2"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active maintenance retired disposed"`
	Location    string   `json:"location" validate:"omitempty,max=100"`
}

type AssetPatch struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" validate:"omitempty,oneof=equipment furniture vehicle software other"`
	Value       *float64 `json:"value" validate:"omitempty,gte=0,dec2"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active maintenance retired disposed"`
	Location    *string  `json:"location" validate:"omitempty,max=100"`
}

type AssetDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Value       float64 `json:"value"`
	Status      string  `json:"status"`
	Location    string  `json:"location"`
	CreatedAt   string  `json:"created_at"`
}

type assetCodec struct{}

func (assetCodec) New(in AssetCreate) *record.Asset {
	status := record.AssetActive
	if in.Status != nil {
		status = record.AssetStatus(*in.Status)
	}
	return &record.Asset{
		Name:        in.Name,
		Description: in.Description,
		Category:    record.AssetCategory(in.Category),
		Value:       *in.Value,
		Status:      status,
		Location:    in.Location,
	}
}

func (assetCodec) Patch(a *record.Asset, in AssetPatch) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.Category != nil {
		a.Category = record.AssetCategory(*in.Category)
	}
	if in.Value != nil {
		a.Value = *in.Value
	}
	if in.Status != nil {
		a.Status = record.AssetStatus(*in.Status)
	}
	if in.Location != nil {
		a.Location = *in.Location
	}
}

func (assetCodec) Transcode(a *record.Asset) AssetDTO {
	return AssetDTO{
		ID:          fmtID(a.ID),
		Name:        a.Name,
		Description: a.Description,
		Category:    string(a.Category),
		Value:       a.Value,
		Status:      string(a.Status),
		Location:    a.Location,
		CreatedAt:   fmtTime(a.CreatedAt),
	}
}

type AssetUsecase = Usecase[record.Asset, AssetCreate, AssetPatch, AssetDTO]

func NewAssetUsecase(repo record.Repository[record.Asset], log *zap.Logger) *AssetUsecase {
	return New(repo, assetCodec{}, log)
}
