package query

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

type sliceOp[T any] func([]T) ([]T, error)

// SliceSource is an in-memory Queryable over a slice. Filtering is case-sensitive
// and sorting is stable.
type SliceSource[T any] struct {
	items  []T
	fields *Fields[T]
	ops    []sliceOp[T]
}

// NewSliceSource wraps items. The slice is never modified.
func NewSliceSource[T any](items []T, fields *Fields[T]) *SliceSource[T] {
	return &SliceSource[T]{items: items, fields: fields}
}

func (s *SliceSource[T]) with(op sliceOp[T]) *SliceSource[T] {
	ops := make([]sliceOp[T], len(s.ops), len(s.ops)+1)
	copy(ops, s.ops)
	return &SliceSource[T]{items: s.items, fields: s.fields, ops: append(ops, op)}
}

func (s *SliceSource[T]) lookup(field string) (Accessor[T], error) {
	if s.fields != nil {
		if fn, ok := s.fields.Lookup(field); ok {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func (s *SliceSource[T]) Where(field, substring string) (Queryable[T], error) {
	get, err := s.lookup(field)
	if err != nil {
		return nil, err
	}

	return s.with(func(in []T) ([]T, error) {
		out := make([]T, 0, len(in))
		for _, item := range in {
			v := get(item)
			if v == nil {
				continue
			}
			if strings.Contains(fmt.Sprint(v), substring) {
				out = append(out, item)
			}
		}
		return out, nil
	}), nil
}

func (s *SliceSource[T]) OrderBy(field string, dir Direction) (Queryable[T], error) {
	get, err := s.lookup(field)
	if err != nil {
		return nil, err
	}

	return s.with(func(in []T) ([]T, error) {
		out := slices.Clone(in)
		var sortErr error
		slices.SortStableFunc(out, func(a, b T) int {
			c, err := compareValues(get(a), get(b))
			if err != nil && sortErr == nil {
				sortErr = fmt.Errorf("order by %q: %w", field, err)
			}
			if dir == Descending {
				return -c
			}
			return c
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return out, nil
	}), nil
}

func (s *SliceSource[T]) Skip(n int) Queryable[T] {
	return s.with(func(in []T) ([]T, error) {
		if n < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeSkip, n)
		}
		if n >= len(in) {
			return in[:0], nil
		}
		return in[n:], nil
	})
}

func (s *SliceSource[T]) Take(n int) Queryable[T] {
	return s.with(func(in []T) ([]T, error) {
		if n < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeTake, n)
		}
		if n < len(in) {
			return in[:n], nil
		}
		return in, nil
	})
}

func (s *SliceSource[T]) Count(ctx context.Context) (int, error) {
	items, err := s.run(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *SliceSource[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.run(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (s *SliceSource[T]) run(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := s.items
	for _, op := range s.ops {
		var err error
		if items, err = op(items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// compareValues orders two field values. nil sorts before everything else.
func compareValues(a, b any) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return -1, nil
	case b == nil:
		return 1, nil
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y), nil
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y), nil
		}
	case int32:
		if y, ok := b.(int32); ok {
			return cmp.Compare(x, y), nil
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y), nil
		}
	case uint:
		if y, ok := b.(uint); ok {
			return cmp.Compare(x, y), nil
		}
	case uint64:
		if y, ok := b.(uint64); ok {
			return cmp.Compare(x, y), nil
		}
	case float32:
		if y, ok := b.(float32); ok {
			return cmp.Compare(x, y), nil
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y), nil
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0, nil
			case !x:
				return -1, nil
			default:
				return 1, nil
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y), nil
		}
	case fmt.Stringer:
		if y, ok := b.(fmt.Stringer); ok {
			return cmp.Compare(x.String(), y.String()), nil
		}
	}

	return compareKinds(a, b)
}

// compareKinds orders values of the same named type by their underlying kind,
// e.g. `type Status string`.
func compareKinds(a, b any) (int, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() == vb.Type() {
		switch va.Kind() {
		case reflect.String:
			return cmp.Compare(va.String(), vb.String()), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(va.Uint(), vb.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float()), nil
		case reflect.Bool:
			return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool())), nil
		}
	}

	return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, a, b)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
