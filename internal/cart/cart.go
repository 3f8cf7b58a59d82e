package cart

import "maison-storefront/internal/product"

// Add merges the product into the cart. An existing line for the same
// product gets its quantity incremented; otherwise a new line is appended.
func Add(items []Item, p product.Product, quantity int) []Item {
	if quantity < 1 {
		quantity = 1
	}

	for i := range items {
		if items[i].Product.ID == p.ID {
			out := make([]Item, len(items))
			copy(out, items)
			out[i].Quantity += quantity
			return out
		}
	}

	out := make([]Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, Item{Product: p, Quantity: quantity})
}

// Remove drops the line for the given product. Idempotent when absent.
func Remove(items []Item, productID string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}

// SetQuantity sets a line's quantity exactly. Zero or negative removes the
// line, same as Remove.
func SetQuantity(items []Item, productID string, quantity int) []Item {
	if quantity <= 0 {
		return Remove(items, productID)
	}

	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Product.ID == productID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Total is the cart value: sum of price times quantity over all lines.
func Total(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}
