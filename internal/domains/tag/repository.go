package tag

import "context"

type TagRepository interface {
	Create(ctx context.Context, name string) (int64, error)
	GetAll(ctx context.Context) ([]Tag, error)
	GetByID(ctx context.Context, id int64) (*Tag, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}
