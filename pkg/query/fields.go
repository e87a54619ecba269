package query

import (
	"fmt"
	"sort"
	"strings"
)

// Accessor extracts a named field from a record.
type Accessor[T any] func(T) any

// Fields is a registry of the fields of T that can be filtered and sorted by name.
// Names are validated when registered, not when a query runs.
type Fields[T any] struct {
	accessors map[string]Accessor[T]
}

func NewFields[T any]() *Fields[T] {
	return &Fields[T]{accessors: make(map[string]Accessor[T])}
}

// Register adds a named accessor.
func (f *Fields[T]) Register(name string, fn Accessor[T]) error {
	if strings.TrimSpace(name) == "" {
		return ErrFieldNameEmpty
	}
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrFieldAccessor, name)
	}
	if _, ok := f.Lookup(name); ok {
		return fmt.Errorf("%w: %s", ErrFieldDuplicate, name)
	}
	f.accessors[name] = fn
	return nil
}

// MustRegister is Register for static setup; it panics on invalid registrations.
func (f *Fields[T]) MustRegister(name string, fn Accessor[T]) *Fields[T] {
	if err := f.Register(name, fn); err != nil {
		panic(err)
	}
	return f
}

// Lookup finds an accessor by exact name, falling back to a case-insensitive match.
func (f *Fields[T]) Lookup(name string) (Accessor[T], bool) {
	if fn, ok := f.accessors[name]; ok {
		return fn, true
	}
	for key, fn := range f.accessors {
		if strings.EqualFold(key, name) {
			return fn, true
		}
	}
	return nil, false
}

// Names returns the registered names in sorted order.
func (f *Fields[T]) Names() []string {
	names := make([]string, 0, len(f.accessors))
	for name := range f.accessors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
