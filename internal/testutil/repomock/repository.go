package repomock

import (
	"context"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies record.Repository[T].
// Unset lookup funcs report not-found; unset write funcs succeed.
type Repo[T any] struct {
	CreateFn  func(ctx context.Context, rec *T) error
	GetByIDFn func(ctx context.Context, id uint64) (*T, error)
	ListFn    func(ctx context.Context) ([]T, error)
	SaveFn    func(ctx context.Context, rec *T) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Repo[T]) Create(ctx context.Context, rec *T) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rec)
	}
	return nil
}

func (m *Repo[T]) GetByID(ctx context.Context, id uint64) (*T, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo[T]) List(ctx context.Context) ([]T, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo[T]) Save(ctx context.Context, rec *T) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, rec)
	}
	return nil
}

func (m *Repo[T]) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
