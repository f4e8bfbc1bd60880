package store

import (
	"fmt"
	"sort"

	"github.com/petsphere/petsphere-api/internal/models"
)

// GetWishlist returns the user's wishlist rows with their products
// attached, in insertion order. A row whose product has been deleted fails
// the read with ErrDanglingProduct.
func (s *Store) GetWishlist(userID int64) ([]models.WishlistItemWithProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.WishlistItemWithProduct
	for _, item := range s.wishlists {
		if item.UserID != userID {
			continue
		}
		product, ok := s.products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("wishlist item %d: %w", item.ID, ErrDanglingProduct)
		}
		out = append(out, models.WishlistItemWithProduct{
			WishlistItem: *item,
			Product:      *product,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// AddToWishlist adds a product to a user's wishlist. Adding a product that
// is already on the list is a no-op returning the existing row unchanged.
// The product must exist; otherwise the operation fails with
// ErrProductNotFound and no row is created.
func (s *Store) AddToWishlist(userID, productID int64) (*models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return nil, fmt.Errorf("add to wishlist: %w", ErrProductNotFound)
	}

	for _, item := range s.wishlists {
		if item.UserID == userID && item.ProductID == productID {
			c := *item
			return &c, nil
		}
	}

	item := &models.WishlistItem{
		ID:        s.wishlistID,
		UserID:    userID,
		ProductID: productID,
	}
	s.wishlistID++
	s.wishlists[item.ID] = item
	c := *item
	return &c, nil
}

// RemoveFromWishlist deletes a wishlist row and reports whether one was
// removed.
func (s *Store) RemoveFromWishlist(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wishlists[id]; !ok {
		return false
	}
	delete(s.wishlists, id)
	return true
}
