package cart

import (
	"testing"

	"maison-storefront/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sofa = product.Product{ID: "prod-1", Name: "Oslo Sofa", Price: 100}
	desk = product.Product{ID: "prod-2", Name: "Noma Desk", Price: 50}
)

func TestAdd(t *testing.T) {
	t.Run("Appends a new line", func(t *testing.T) {
		items := Add(nil, sofa, 2)
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Merges quantities for the same product", func(t *testing.T) {
		items := Add(Add(nil, sofa, 2), sofa, 3)
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("Defaults quantity to one", func(t *testing.T) {
		items := Add(nil, sofa, 0)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("Does not mutate the input slice", func(t *testing.T) {
		orig := Add(nil, sofa, 1)
		_ = Add(orig, sofa, 4)
		assert.Equal(t, 1, orig[0].Quantity)
	})
}

func TestRemove(t *testing.T) {
	t.Run("Drops the matching line", func(t *testing.T) {
		items := Remove(Add(Add(nil, sofa, 1), desk, 1), sofa.ID)
		require.Len(t, items, 1)
		assert.Equal(t, desk.ID, items[0].Product.ID)
	})

	t.Run("Idempotent when absent", func(t *testing.T) {
		items := Add(nil, desk, 1)
		assert.Equal(t, items, Remove(items, "prod-404"))
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("Sets the quantity exactly", func(t *testing.T) {
		items := SetQuantity(Add(nil, sofa, 2), sofa.ID, 7)
		assert.Equal(t, 7, items[0].Quantity)
	})

	t.Run("Zero removes the line", func(t *testing.T) {
		assert.Empty(t, SetQuantity(Add(nil, sofa, 2), sofa.ID, 0))
	})

	t.Run("Negative removes the line", func(t *testing.T) {
		assert.Empty(t, SetQuantity(Add(nil, sofa, 2), sofa.ID, -1))
	})
}

func TestTotal(t *testing.T) {
	t.Run("Sums price times quantity", func(t *testing.T) {
		items := Add(Add(nil, sofa, 2), desk, 1)
		assert.Equal(t, int64(250), Total(items))
	})

	t.Run("Empty cart totals zero", func(t *testing.T) {
		assert.Equal(t, int64(0), Total(nil))
	})
}
