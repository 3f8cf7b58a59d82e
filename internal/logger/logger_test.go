package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestL(t *testing.T) {
	t.Run("Lazily initializes a logger", func(t *testing.T) {
		log = nil
		assert.NotNil(t, L())
	})

	t.Run("Production config builds", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, L())
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Run("Round-trips through context", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-42")
		assert.Equal(t, "req-42", RequestIDFrom(ctx))
	})

	t.Run("Empty without a request id", func(t *testing.T) {
		assert.Equal(t, "", RequestIDFrom(context.Background()))
	})

	t.Run("FromCtx never returns nil", func(t *testing.T) {
		assert.NotNil(t, FromCtx(context.Background()))
		assert.NotNil(t, FromCtx(WithRequestID(context.Background(), "req-7")))
	})
}
