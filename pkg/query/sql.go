package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx used by SQLSource.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Columns maps a field name, as used in sort orders and filters, to a SQL column expression.
type Columns map[string]string

func (c Columns) lookup(field string) (string, bool) {
	if col, ok := c[field]; ok {
		return col, true
	}
	for key, col := range c {
		if strings.EqualFold(key, field) {
			return col, true
		}
	}
	return "", false
}

// SQLSource is a Queryable backed by a squirrel select statement executed through pgx.
// Only columns registered in Columns can be filtered or sorted by, so user input
// never reaches the SQL text.
type SQLSource[T any] struct {
	db      Querier
	query   squirrel.SelectBuilder
	columns Columns
	scan    pgx.RowToFunc[T]
	orderBy []string
	offset  int
	limit   int // negative means no limit
	err     error
}

// SQLOption configures a SQLSource.
type SQLOption[T any] func(*SQLSource[T])

// WithScanner replaces the default pgx.RowToStructByName scanner.
func WithScanner[T any](scan pgx.RowToFunc[T]) SQLOption[T] {
	return func(s *SQLSource[T]) {
		s.scan = scan
	}
}

// NewSQLSource creates a SQLSource over the given base select. The base may already
// carry joins and where clauses; it must not carry ORDER BY, LIMIT or OFFSET.
func NewSQLSource[T any](db Querier, base squirrel.SelectBuilder, columns Columns, opts ...SQLOption[T]) *SQLSource[T] {
	s := &SQLSource[T]{
		db:      db,
		query:   base.PlaceholderFormat(squirrel.Dollar),
		columns: columns,
		scan:    pgx.RowToStructByName[T],
		limit:   -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SQLSource[T]) clone() *SQLSource[T] {
	c := *s
	c.orderBy = append([]string(nil), s.orderBy...)
	return &c
}

func (s *SQLSource[T]) column(field string) (string, error) {
	col, ok := s.columns.lookup(field)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return col, nil
}

func (s *SQLSource[T]) Where(field, substring string) (Queryable[T], error) {
	col, err := s.column(field)
	if err != nil {
		return nil, err
	}

	c := s.clone()
	c.query = c.query.Where(squirrel.Expr("strpos(CAST("+col+" AS text), ?) > 0", substring))
	return c, nil
}

func (s *SQLSource[T]) OrderBy(field string, dir Direction) (Queryable[T], error) {
	col, err := s.column(field)
	if err != nil {
		return nil, err
	}

	orderDir := "ASC"
	if dir == Descending {
		orderDir = "DESC"
	}

	c := s.clone()
	c.orderBy = append(c.orderBy, col+" "+orderDir)
	return c, nil
}

func (s *SQLSource[T]) Skip(n int) Queryable[T] {
	c := s.clone()
	if n < 0 {
		c.err = fmt.Errorf("%w: %d", ErrNegativeSkip, n)
		return c
	}
	c.offset += n
	// Skipping inside an earlier Take shrinks what remains of it.
	if c.limit >= 0 {
		c.limit = max(c.limit-n, 0)
	}
	return c
}

func (s *SQLSource[T]) Take(n int) Queryable[T] {
	c := s.clone()
	if n < 0 {
		c.err = fmt.Errorf("%w: %d", ErrNegativeTake, n)
		return c
	}
	if c.limit < 0 || n < c.limit {
		c.limit = n
	}
	return c
}

// Count returns the number of rows the query selects. Ordering is ignored.
func (s *SQLSource[T]) Count(ctx context.Context) (int, error) {
	sql, args, err := s.countSQL()
	if err != nil {
		return 0, err
	}

	var total int
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return total, nil
}

func (s *SQLSource[T]) List(ctx context.Context) ([]T, error) {
	sql, args, err := s.listSQL()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}

	items, err := pgx.CollectRows(rows, s.scan)
	if err != nil {
		return nil, fmt.Errorf("scan rows failed: %w", err)
	}
	return items, nil
}

func (s *SQLSource[T]) paginated() squirrel.SelectBuilder {
	query := s.query
	if len(s.orderBy) > 0 {
		query = query.OrderBy(s.orderBy...)
	}
	if s.offset > 0 {
		query = query.Offset(uint64(s.offset))
	}
	if s.limit >= 0 {
		query = query.Limit(uint64(s.limit))
	}
	return query
}

func (s *SQLSource[T]) listSQL() (string, []any, error) {
	if s.err != nil {
		return "", nil, s.err
	}

	sql, args, err := s.paginated().ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build list query failed: %w", err)
	}
	return sql, args, nil
}

func (s *SQLSource[T]) countSQL() (string, []any, error) {
	if s.err != nil {
		return "", nil, s.err
	}

	// Ordering does not change the count; pagination does.
	inner := s.query
	if s.offset > 0 || s.limit >= 0 {
		inner = s.paginated()
	}

	sql, args, err := squirrel.Select("count(*)").
		FromSelect(inner, "shaped").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build count query failed: %w", err)
	}
	return sql, args, nil
}
