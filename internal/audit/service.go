package audit

import (
	"context"

	"maison-storefront/internal/httpx"
)

// Entry is a log to be created: everything except the server-assigned
// id and timestamp.
type Entry struct {
	Action   string   `json:"action"`
	Category Category `json:"category"`
	User     string   `json:"user"`
	Details  string   `json:"details"`
	Severity Severity `json:"severity"`
}

// Service defines the audit log REST operations.
type Service interface {
	List(ctx context.Context) ([]Log, error)
	Create(ctx context.Context, entry Entry) (*Log, error)
}

// service implements the Service interface
type service struct {
	api *httpx.Client
}

// NewService creates a new audit log service
func NewService(api *httpx.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context) ([]Log, error) {
	var logs []Log
	if err := s.api.Get(ctx, "/audit-logs", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *service) Create(ctx context.Context, entry Entry) (*Log, error) {
	var created Log
	if err := s.api.Post(ctx, "/audit-logs", entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
