package record

import (
	"context"
	"errors"

	"expman-backend/internal/domain/record"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Codec is the per-entity half of the generic CRUD behavior: it turns a
// validated create input into a new record (applying defaults), applies a
// partial update, and shapes a stored record for the client.
type Codec[T, C, P, D any] interface {
	// New builds a fresh record from a validated create input.
	New(in C) *T
	// Patch rewrites only the fields supplied in the input.
	Patch(rec *T, in P)
	// Transcode shapes a stored record for the client: string ids,
	// RFC 3339 timestamps, YYYY-MM-DD dates.
	Transcode(rec *T) D
}

// Usecase implements list/create/retrieve/update/delete for one record type.
// T is the domain record, C the create input, P the partial-update input and
// D the outward DTO.
type Usecase[T, C, P, D any] struct {
	repo  record.Repository[T]
	codec Codec[T, C, P, D]
	val   *validator.Validate
	log   *zap.Logger
}

func New[T, C, P, D any](repo record.Repository[T], codec Codec[T, C, P, D], log *zap.Logger) *Usecase[T, C, P, D] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase[T, C, P, D]{repo: repo, codec: codec, val: NewValidator(), log: log}
}

func (u *Usecase[T, C, P, D]) List(ctx context.Context) ([]D, error) {
	recs, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("list failed", zap.Error(err))
		return nil, err
	}
	out := make([]D, 0, len(recs))
	for i := range recs {
		out = append(out, u.codec.Transcode(&recs[i]))
	}
	return out, nil
}

func (u *Usecase[T, C, P, D]) Create(ctx context.Context, in C) (*D, error) {
	if err := u.val.Struct(in); err != nil {
		return nil, &ValidationError{Fields: ToFieldErrors(err)}
	}
	rec := u.codec.New(in)
	if err := u.repo.Create(ctx, rec); err != nil {
		u.log.Error("create failed", zap.Error(err))
		return nil, err
	}
	dto := u.codec.Transcode(rec)
	return &dto, nil
}

func (u *Usecase[T, C, P, D]) Get(ctx context.Context, id uint64) (*D, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, u.mapErr(err)
	}
	dto := u.codec.Transcode(rec)
	return &dto, nil
}

// Update checks existence before validating the input, so an update against a
// missing id reports not-found even when the body is invalid.
func (u *Usecase[T, C, P, D]) Update(ctx context.Context, id uint64, in P) (*D, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, u.mapErr(err)
	}
	if err := u.val.Struct(in); err != nil {
		return nil, &ValidationError{Fields: ToFieldErrors(err)}
	}
	u.codec.Patch(rec, in)
	if err := u.repo.Save(ctx, rec); err != nil {
		u.log.Error("update failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	dto := u.codec.Transcode(rec)
	return &dto, nil
}

func (u *Usecase[T, C, P, D]) Delete(ctx context.Context, id uint64) error {
	if _, err := u.repo.GetByID(ctx, id); err != nil {
		return u.mapErr(err)
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Error("delete failed", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (u *Usecase[T, C, P, D]) mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	u.log.Error("backend failure", zap.Error(err))
	return err
}
