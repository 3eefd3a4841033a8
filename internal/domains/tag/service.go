package tag

import "context"

type TagService interface {
	Create(ctx context.Context, req *TagRequest) (*Tag, error)
	GetAll(ctx context.Context) ([]Tag, error)
	GetByID(ctx context.Context, id int64) (*Tag, error)
	Update(ctx context.Context, id int64, req *TagRequest) error
	Delete(ctx context.Context, id int64) error
}
