package product

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/queryshape/pkg/query"
)

// memoryRepository keeps products in process memory. Each Query call sees a
// snapshot taken at the time of the call.
type memoryRepository struct {
	mu       sync.RWMutex
	products []Product
	fields   *query.Fields[Product]
}

// NewMemoryRepository creates a Repository seeded with the given products.
func NewMemoryRepository(seed ...Product) Repository {
	return &memoryRepository{
		products: slices.Clone(seed),
		fields:   Fields(),
	}
}

func (r *memoryRepository) Query() query.Queryable[Product] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return query.NewSliceSource(slices.Clone(r.products), r.fields)
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Create(_ context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.Name == p.Name {
			return ErrNameTaken
		}
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	r.products = append(r.products, *p)
	return nil
}
