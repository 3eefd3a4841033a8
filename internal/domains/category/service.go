package category

import "context"

type CategoryService interface {
	Create(ctx context.Context, req *CategoryRequest) (*Category, error)
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Update(ctx context.Context, id int64, req *CategoryRequest) error
	Delete(ctx context.Context, id int64) error
}
