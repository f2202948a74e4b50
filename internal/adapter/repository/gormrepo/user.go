package gormrepo

import (
	"context"

	"expman-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var out user.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
