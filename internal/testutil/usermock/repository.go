package usermock

import (
	"context"

	"expman-backend/internal/domain/user"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *user.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*user.User, error)
}

func (m *Repo) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}
