package auth

import (
	"context"
	"strings"

	"maison-storefront/internal/httpx"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User AdminUser `json:"user"`
}

// Service defines the auth REST operations.
type Service interface {
	Login(ctx context.Context, email, password string) (*AdminUser, error)
}

// service implements the Service interface
type service struct {
	api *httpx.Client
}

// NewService creates a new auth service
func NewService(api *httpx.Client) Service {
	return &service{api: api}
}

// Login exchanges credentials for the admin identity. The server matches
// emails case-insensitively, so the address is normalized before sending.
func (s *service) Login(ctx context.Context, email, password string) (*AdminUser, error) {
	body := loginRequest{
		Email:    strings.TrimSpace(strings.ToLower(email)),
		Password: password,
	}

	var resp loginResponse
	if err := s.api.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
