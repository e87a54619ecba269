package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/queryshape/pkg/query"
)

// Repository defines data access methods for products.
type Repository interface {
	// Query returns an unexecuted, unfiltered view over all products.
	Query() query.Queryable[Product]
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p *Product) error
}

var productColumns = []string{"id::text AS id", "name", "category", "price_cents", "created_by", "created_at"}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Query() query.Queryable[Product] {
	base := squirrel.Select(productColumns...).From("public.products")
	return query.NewSQLSource[Product](r.pool, base, Columns())
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(productColumns...).
		From("public.products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get product failed: %w", err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product failed: %w", err)
	}
	return p, nil
}

func (r *pgxRepository) Create(ctx context.Context, p *Product) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Insert("public.products").
		Columns("name", "category", "price_cents", "created_by").
		Values(p.Name, p.Category, p.PriceCents, p.CreatedBy).
		Suffix("RETURNING id::text, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create product query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return fmt.Errorf("create product failed: %w", err)
	}
	return nil
}
