package models

// ProductSnapshot is the product as the cart saw it when it was added.
// The cart never interprets display fields; it only keys on ID and reads Price.
type ProductSnapshot struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
}

type CartItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// CartState is the persisted cart record. Item order is insertion order;
// no two items share a product ID.
type CartState struct {
	Items []CartItem `json:"items"`
}
