package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the GORM-backed implementation of record.Repository[T]. One wired
// instance per record type; GORM resolves the table from T.
type Repo[T any] struct{ db *gorm.DB }

func NewRepo[T any](db *gorm.DB) *Repo[T] { return &Repo[T]{db: db} }

func (r *Repo[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *Repo[T]) GetByID(ctx context.Context, id uint64) (*T, error) {
	var out T
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *Repo[T]) Save(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *Repo[T]) Delete(ctx context.Context, id uint64) error {
	var zero T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&zero).Error
}
