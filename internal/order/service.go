package order

import (
	"context"

	"maison-storefront/internal/cart"
	"maison-storefront/internal/httpx"
)

type CreateParams struct {
	Customer string      `json:"customer"`
	Email    string      `json:"email"`
	Address  string      `json:"address"`
	Items    []cart.Item `json:"items"`
}

type updateStatusRequest struct {
	Status Status `json:"status"`
	User   string `json:"user"`
}

// Service defines the order REST operations.
type Service interface {
	List(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, params CreateParams) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status, user string) (*Order, error)
}

// service implements the Service interface
type service struct {
	api *httpx.Client
}

// NewService creates a new order service
func NewService(api *httpx.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := s.api.Get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create posts the cart snapshot; the server computes the frozen total and
// decrements stock.
func (s *service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	var created Order
	if err := s.api.Post(ctx, "/orders", params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status, user string) (*Order, error) {
	var updated Order
	body := updateStatusRequest{Status: status, User: user}
	if err := s.api.Patch(ctx, "/orders/"+orderID+"/status", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
