package models

import "time"

// Order is the model for a placed order.
type Order struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"userId"`
	Total  float64 `json:"total"`
	Status string  `json:"status"` // e.g. pending, processing, shipped, delivered

	PaymentMethod   string  `json:"paymentMethod"`
	ShippingAddress string  `json:"shippingAddress"`
	BillingAddress  string  `json:"billingAddress"`
	ShippingMethod  string  `json:"shippingMethod"`
	TrackingNumber  *string `json:"trackingNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt"` // assigned by the store, immutable
}

// OrderItem is one line of an order. Price is the effective unit price
// captured at checkout time and never recomputed from the live product.
type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderItemWithProduct is the resolved read view of an order line.
type OrderItemWithProduct struct {
	OrderItem
	Product Product `json:"product"`
}
