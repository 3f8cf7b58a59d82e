package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-success response from the storefront API, carrying the
// structured payload the server uses for validation and business errors.
type APIError struct {
	Status  int
	Message string
	Reason  string
	Body    []byte
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: body}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = strings.TrimSpace(payload.Message)
		apiErr.Reason = strings.TrimSpace(payload.Error)
	} else if s := strings.TrimSpace(string(body)); s != "" && !strings.HasPrefix(s, "{") {
		// Some error paths return a bare string body.
		apiErr.Message = s
	}

	return apiErr
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Reason != "":
		return e.Reason
	default:
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
}

// ErrorMessage extracts a human-readable message for the UI. Priority:
// server message field, server error field, the transport error's own text,
// then the caller-supplied fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Reason != "" {
			return apiErr.Reason
		}
		return apiErr.Error()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return fallback
}
