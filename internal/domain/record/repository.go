package record

import "context"

// Repository is the persistence contract shared by all five record types.
// Not-found is reported as gorm.ErrRecordNotFound by the GORM adapter;
// callers translate it at the usecase boundary.
type Repository[T any] interface {
	Create(ctx context.Context, rec *T) error
	GetByID(ctx context.Context, id uint64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Save(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id uint64) error
}
