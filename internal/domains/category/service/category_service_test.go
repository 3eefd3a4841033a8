package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipes-backend/internal/domains/category"
)

type fakeCategoryRepository struct {
	createID   int64
	createErr  error
	updateErr  error
	deleteErr  error
	categories []category.Category

	createdName string
	calls       int
}

func (f *fakeCategoryRepository) Create(ctx context.Context, name string) (int64, error) {
	f.calls++
	f.createdName = name
	return f.createID, f.createErr
}

func (f *fakeCategoryRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepository) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepository) Update(ctx context.Context, id int64, name string) error {
	f.calls++
	return f.updateErr
}

func (f *fakeCategoryRepository) Delete(ctx context.Context, id int64) error {
	f.calls++
	return f.deleteErr
}

func TestCreateCategory(t *testing.T) {
	repo := &fakeCategoryRepository{createID: 3}
	svc := NewCategoryService(repo)

	cat, err := svc.Create(context.Background(), &category.CategoryRequest{Name: "Drinks"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), cat.ID)
	assert.Equal(t, "Drinks", repo.createdName)
}

func TestCreateCategoryRejectsEmptyName(t *testing.T) {
	repo := &fakeCategoryRepository{}
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), &category.CategoryRequest{})

	require.Error(t, err)
	assert.Zero(t, repo.calls)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	repo := &fakeCategoryRepository{createErr: category.ErrDuplicateCategory}
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), &category.CategoryRequest{Name: "Drinks"})

	assert.ErrorIs(t, err, category.ErrDuplicateCategory)
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepository{})

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestDeleteCategoryInUse(t *testing.T) {
	repo := &fakeCategoryRepository{deleteErr: category.ErrCategoryInUse}
	svc := NewCategoryService(repo)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, category.ErrCategoryInUse)
}
