package product

import (
	"errors"
	"time"

	"github.com/nekogravitycat/queryshape/pkg/query"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrNameRequired = errors.New("name is required")
	ErrNameTaken    = errors.New("product name already exists")
	ErrPriceInvalid = errors.New("price must not be negative")
)

// Product is a catalogue item.
type Product struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Category   string    `json:"category" db:"category"`
	PriceCents int64     `json:"price_cents" db:"price_cents"`
	CreatedBy  string    `json:"created_by" db:"created_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Fields lists the product fields that can be sorted and filtered by name.
func Fields() *query.Fields[Product] {
	return query.NewFields[Product]().
		MustRegister("ID", func(p Product) any { return p.ID }).
		MustRegister("Name", func(p Product) any { return p.Name }).
		MustRegister("Category", func(p Product) any { return p.Category }).
		MustRegister("PriceCents", func(p Product) any { return p.PriceCents }).
		MustRegister("CreatedAt", func(p Product) any { return p.CreatedAt })
}

// Columns maps the same field names to SQL columns.
func Columns() query.Columns {
	return query.Columns{
		"ID":         "id",
		"Name":       "name",
		"Category":   "category",
		"PriceCents": "price_cents",
		"CreatedAt":  "created_at",
	}
}
