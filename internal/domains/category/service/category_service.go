package service

import (
	"context"
	"fmt"

	"recipes-backend/internal/domains/category"
	"recipes-backend/pkg/logger"
)

type categoryServiceImpl struct {
	repository category.CategoryRepository
}

func NewCategoryService(repo category.CategoryRepository) category.CategoryService {
	return &categoryServiceImpl{repository: repo}
}

func (s *categoryServiceImpl) Create(ctx context.Context, req *category.CategoryRequest) (*category.Category, error) {
	if req == nil {
		return nil, fmt.Errorf("create category: invalid request")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.repository.Create(ctx, req.Name)
	if err != nil {
		logger.Error("create category failed", err)
		return nil, err
	}

	return &category.Category{ID: id, Name: req.Name}, nil
}

func (s *categoryServiceImpl) GetAll(ctx context.Context) ([]category.Category, error) {
	return s.repository.GetAll(ctx)
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *categoryServiceImpl) Update(ctx context.Context, id int64, req *category.CategoryRequest) error {
	if req == nil {
		return fmt.Errorf("update category: invalid request")
	}

	if err := req.Validate(); err != nil {
		return err
	}

	return s.repository.Update(ctx, id, req.Name)
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
