package models

// CartItem is a single row in a user's cart.
// There is at most one row per (UserID, ProductID) pair.
type CartItem struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartItemWithProduct is the resolved read view of a cart row with its
// referenced product attached. Computed on read, never stored.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}
