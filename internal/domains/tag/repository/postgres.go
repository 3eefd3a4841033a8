package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipes-backend/internal/domains/tag"
)

const uniqueViolation = "23505"

type postgresTagRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTagRepository(pool *pgxpool.Pool) tag.TagRepository {
	return &postgresTagRepository{pool: pool}
}

func (r *postgresTagRepository) Create(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO tags (name)
		VALUES ($1)
		RETURNING tag_id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, name).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, tag.ErrDuplicateTag
		}
		return 0, fmt.Errorf("failed to create tag: %w", err)
	}

	return id, nil
}

func (r *postgresTagRepository) GetAll(ctx context.Context) ([]tag.Tag, error) {
	query := `
		SELECT tag_id, name
		FROM tags
		ORDER BY tag_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]tag.Tag, 0)
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return tags, nil
}

func (r *postgresTagRepository) GetByID(ctx context.Context, id int64) (*tag.Tag, error) {
	query := `
		SELECT tag_id, name
		FROM tags
		WHERE tag_id = $1
	`

	t := &tag.Tag{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return t, nil
}

func (r *postgresTagRepository) Update(ctx context.Context, id int64, name string) error {
	query := `
		UPDATE tags
		SET name = $1
		WHERE tag_id = $2
	`

	ct, err := r.pool.Exec(ctx, query, name, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return tag.ErrDuplicateTag
		}
		return fmt.Errorf("failed to update tag: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}

	return nil
}

func (r *postgresTagRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM tags
		WHERE tag_id = $1
	`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}

	return nil
}
