package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maison-storefront/internal/cart"
	"maison-storefront/internal/httpx"
	"maison-storefront/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, IsValidStatus(status), string(status))
	}
	assert.False(t, IsValidStatus("returned"))
	assert.False(t, IsValidStatus(""))
}

func TestOrderService(t *testing.T) {
	items := []cart.Item{
		{Product: product.Product{ID: "prod-1", Name: "Oslo Sofa", Price: 100}, Quantity: 2},
	}

	t.Run("Create posts the cart snapshot", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)

			var payload CreateParams
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Jane Doe", payload.Customer)
			require.Len(t, payload.Items, 1)

			_ = json.NewEncoder(w).Encode(Order{
				ID:       "ORD-1001",
				Customer: payload.Customer,
				Email:    payload.Email,
				Items:    payload.Items,
				Total:    200,
				Status:   StatusPending,
				Date:     time.Now().UTC(),
				Address:  payload.Address,
			})
		}))
		defer srv.Close()

		svc := NewService(httpx.NewClient(srv.URL, httpx.DefaultTimeout))
		created, err := svc.Create(context.Background(), CreateParams{
			Customer: "Jane Doe",
			Email:    "jane@example.com",
			Address:  "1 Main St",
			Items:    items,
		})
		require.NoError(t, err)
		assert.Equal(t, "ORD-1001", created.ID)
		assert.Equal(t, int64(200), created.Total)
		assert.Equal(t, StatusPending, created.Status)
	})

	t.Run("UpdateStatus patches status and user", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/orders/ORD-1001/status", r.URL.Path)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "shipped", payload["status"])
			assert.Equal(t, "admin@maison.co", payload["user"])

			_ = json.NewEncoder(w).Encode(Order{ID: "ORD-1001", Status: StatusShipped})
		}))
		defer srv.Close()

		svc := NewService(httpx.NewClient(srv.URL, httpx.DefaultTimeout))
		updated, err := svc.UpdateStatus(context.Background(), "ORD-1001", StatusShipped, "admin@maison.co")
		require.NoError(t, err)
		assert.Equal(t, StatusShipped, updated.Status)
	})

	t.Run("Unknown order surfaces the server message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"order not found"}`))
		}))
		defer srv.Close()

		svc := NewService(httpx.NewClient(srv.URL, httpx.DefaultTimeout))
		updated, err := svc.UpdateStatus(context.Background(), "ORD-404", StatusShipped, "admin@maison.co")
		require.Error(t, err)
		assert.Nil(t, updated)
		assert.Equal(t, "order not found", httpx.ErrorMessage(err, "fallback"))
	})
}
