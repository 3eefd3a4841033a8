package category

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, name string) (int64, error)
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}
