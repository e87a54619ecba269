// Package query turns a queryable data source into a filtered, sorted and
// paginated response envelope.
package query

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrNegativeSkip   = errors.New("skip count must not be negative")
	ErrNegativeTake   = errors.New("take count must not be negative")
	ErrNotComparable  = errors.New("values are not comparable")
	ErrFieldNameEmpty = errors.New("field name must not be empty")
	ErrFieldAccessor  = errors.New("field accessor must not be nil")
	ErrFieldDuplicate = errors.New("field already registered")
)

// Direction is the ordering of a single-key sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection returns Descending for "desc" (any case) and Ascending for anything else.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Descending
	}
	return Ascending
}

// Queryable is a lazily evaluated collection of records.
//
// Where and OrderBy only build the query and fail on invalid input such as an
// unknown field. Count and List execute it. Implementations must not modify the
// receiver; every builder call returns a new Queryable.
type Queryable[T any] interface {
	// Where keeps the records whose field, as text, contains substring.
	Where(field, substring string) (Queryable[T], error)
	// OrderBy sorts the records by a single field.
	OrderBy(field string, dir Direction) (Queryable[T], error)
	Skip(n int) Queryable[T]
	Take(n int) Queryable[T]
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]T, error)
}
