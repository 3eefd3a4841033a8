package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipes-backend/internal/domains/category"
)

const (
	uniqueViolation = "23505"
	fkViolation     = "23503"
)

type postgresCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryRepository(pool *pgxpool.Pool) category.CategoryRepository {
	return &postgresCategoryRepository{pool: pool}
}

func (r *postgresCategoryRepository) Create(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING category_id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, name).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, category.ErrDuplicateCategory
		}
		return 0, fmt.Errorf("failed to create category: %w", err)
	}

	return id, nil
}

func (r *postgresCategoryRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	query := `
		SELECT category_id, name
		FROM categories
		ORDER BY category_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}

func (r *postgresCategoryRepository) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	query := `
		SELECT category_id, name
		FROM categories
		WHERE category_id = $1
	`

	cat := &category.Category{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&cat.ID, &cat.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return cat, nil
}

func (r *postgresCategoryRepository) Update(ctx context.Context, id int64, name string) error {
	query := `
		UPDATE categories
		SET name = $1
		WHERE category_id = $2
	`

	ct, err := r.pool.Exec(ctx, query, name, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return category.ErrDuplicateCategory
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM categories
		WHERE category_id = $1
	`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		// Recipes reference categories; the FK blocks deleting one in use.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return category.ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
