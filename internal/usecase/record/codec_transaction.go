package record

import (
	"expman-backend/internal/domain/record"

	"go.uber.org/zap"
)

type TransactionCreate struct {
	Date        string   `json:"date" validate:"required,dateonly"`
	Description string   `json:"description" validate:"required,max=200"`
	Amount      *float64 `json:"amount" validate:"required,gte=0,dec2"`
	Type        string   `json:"type" validate:"required,oneof=income expense"`
	Category    string   `json:"category" validate:"required,max=100"`
}

type TransactionPatch struct {
	Date        *string  `json:"date" validate:"omitempty,dateonly"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=200"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0,dec2"`
	Type        *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Category    *string  `json:"category" validate:"omitempty,min=1,max=100"`
}

type TransactionDTO struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"created_at"`
}

type transactionCodec struct{}

func (transactionCodec) New(in TransactionCreate) *record.Transaction {
	return &record.Transaction{
		Date:        mustDate(in.Date),
		Description: in.Description,
		Amount:      *in.Amount,
		Type:        record.TransactionType(in.Type),
		Category:    in.Category,
	}
}

func (transactionCodec) Patch(t *record.Transaction, in TransactionPatch) {
	if in.Date != nil {
		t.Date = mustDate(*in.Date)
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.Type != nil {
		t.Type = record.TransactionType(*in.Type)
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
}

func (transactionCodec) Transcode(t *record.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          fmtID(t.ID),
		Date:        fmtDate(t.Date),
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		CreatedAt:   fmtTime(t.CreatedAt),
	}
}

type TransactionUsecase = Usecase[record.Transaction, TransactionCreate, TransactionPatch, TransactionDTO]

func NewTransactionUsecase(repo record.Repository[record.Transaction], log *zap.Logger) *TransactionUsecase {
	return New(repo, transactionCodec{}, log)
}
