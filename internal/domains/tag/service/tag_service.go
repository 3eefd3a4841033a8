package service

import (
	"context"
	"fmt"

	"recipes-backend/internal/domains/tag"
	"recipes-backend/pkg/logger"
)

type tagServiceImpl struct {
	repository tag.TagRepository
}

func NewTagService(repo tag.TagRepository) tag.TagService {
	return &tagServiceImpl{repository: repo}
}

func (s *tagServiceImpl) Create(ctx context.Context, req *tag.TagRequest) (*tag.Tag, error) {
	if req == nil {
		return nil, fmt.Errorf("create tag: invalid request")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.repository.Create(ctx, req.Name)
	if err != nil {
		logger.Error("create tag failed", err)
		return nil, err
	}

	return &tag.Tag{ID: id, Name: req.Name}, nil
}

func (s *tagServiceImpl) GetAll(ctx context.Context) ([]tag.Tag, error) {
	return s.repository.GetAll(ctx)
}

func (s *tagServiceImpl) GetByID(ctx context.Context, id int64) (*tag.Tag, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *tagServiceImpl) Update(ctx context.Context, id int64, req *tag.TagRequest) error {
	if req == nil {
		return fmt.Errorf("update tag: invalid request")
	}

	if err := req.Validate(); err != nil {
		return err
	}

	return s.repository.Update(ctx, id, req.Name)
}

func (s *tagServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
