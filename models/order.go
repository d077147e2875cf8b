package models

import "time"

type Order struct {
	ID          int         `json:"id"`
	OrderNumber string      `json:"order_number"`
	Email       string      `json:"email"`
	FullName    string      `json:"full_name"`
	Address     string      `json:"address,omitempty"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
