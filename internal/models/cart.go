package models

// CartItem is a single product-plus-quantity row in the cart. TotalPrice is
// maintained incrementally by the cart store and always equals Quantity times
// the product's unit price.
type CartItem struct {
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// FavoriteItem marks a product as liked. Qty is always 1; presence is boolean
// membership, not a counter.
type FavoriteItem struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}
