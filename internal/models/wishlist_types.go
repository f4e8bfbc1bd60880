package models

// WishlistItem is a single row in a user's wishlist.
// There is at most one row per (UserID, ProductID) pair.
type WishlistItem struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}

// WishlistItemWithProduct is the resolved read view of a wishlist row.
type WishlistItemWithProduct struct {
	WishlistItem
	Product Product `json:"product"`
}
