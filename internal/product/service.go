package product

import (
	"context"

	"maison-storefront/internal/httpx"
)

// Service defines the catalog REST operations.
type Service interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, p Product) (*Product, error)
}

// service implements the Service interface
type service struct {
	api *httpx.Client
}

// NewService creates a new product service
func NewService(api *httpx.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.api.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := s.api.Get(ctx, "/products/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update sends the full updated product; the server appends its own audit entry.
func (s *service) Update(ctx context.Context, p Product) (*Product, error) {
	var updated Product
	if err := s.api.Put(ctx, "/products/"+p.ID, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
