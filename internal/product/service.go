package product

import (
	"context"
	"strings"

	"github.com/nekogravitycat/queryshape/pkg/query"
	"github.com/nekogravitycat/queryshape/pkg/response"
)

// CreateProductRequest carries data to create a product.
type CreateProductRequest struct {
	Name       string
	Category   string
	PriceCents int64
	CreatedBy  string
}

type Service interface {
	List(ctx context.Context, params query.Params) response.Envelope[[]Product]
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, req CreateProductRequest) (*Product, error)
}

type service struct {
	repo            Repository
	defaultPageSize int
}

func NewService(repo Repository, defaultPageSize int) Service {
	if defaultPageSize < 1 {
		defaultPageSize = query.DefaultPageSize
	}
	return &service{repo: repo, defaultPageSize: defaultPageSize}
}

// List shapes the product catalogue into a page. It never fails; errors are
// reported inside the envelope.
func (s *service) List(ctx context.Context, params query.Params) response.Envelope[[]Product] {
	if params.PageSize == 0 {
		params.PageSize = s.defaultPageSize
	}
	return query.Shape(ctx, s.repo.Query(), params)
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.PriceCents < 0 {
		return nil, ErrPriceInvalid
	}

	p := &Product{
		Name:       name,
		Category:   strings.TrimSpace(req.Category),
		PriceCents: req.PriceCents,
		CreatedBy:  req.CreatedBy,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
