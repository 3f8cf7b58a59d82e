package cart

import "maison-storefront/internal/product"

// Item is one cart line. The product is an embedded snapshot taken at
// add-to-cart time, matching what the order endpoint expects back.
type Item struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}
