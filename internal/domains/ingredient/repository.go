package ingredient

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the slice of pgx needed by the resolver. Both pgx.Tx and
// *pgxpool.Pool satisfy it, so the resolver can run inside the recipe write
// transaction without knowing about transaction management.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Resolver maps an ingredient name to its stable catalog id, creating the
// catalog row when the name is unseen.
type Resolver interface {
	Resolve(ctx context.Context, q Querier, name string) (int64, error)
}

// Repository is the read-only catalog access.
type Repository interface {
	List(ctx context.Context) ([]Ingredient, error)
}
