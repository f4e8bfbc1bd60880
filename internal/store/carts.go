package store

import (
	"fmt"
	"sort"

	"github.com/petsphere/petsphere-api/internal/models"
)

// GetCart returns the user's cart rows with their products attached, in
// insertion order. A row whose product has been deleted from the catalog is
// a consistency violation and fails the whole read with ErrDanglingProduct:
// a cart item without its product cannot be priced or displayed.
func (s *Store) GetCart(userID int64) ([]models.CartItemWithProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.CartItemWithProduct
	for _, item := range s.carts {
		if item.UserID != userID {
			continue
		}
		product, ok := s.products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("cart item %d: %w", item.ID, ErrDanglingProduct)
		}
		out = append(out, models.CartItemWithProduct{
			CartItem: *item,
			Product:  *product,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// AddToCart adds a product to a user's cart. If the user already has a row
// for this product the quantities are merged onto the existing row instead
// of creating a duplicate. The product must exist; otherwise the operation
// fails with ErrProductNotFound and no row is created.
func (s *Store) AddToCart(userID, productID int64, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return nil, fmt.Errorf("add to cart: %w", ErrProductNotFound)
	}

	for _, item := range s.carts {
		if item.UserID == userID && item.ProductID == productID {
			item.Quantity += quantity
			c := *item
			return &c, nil
		}
	}

	item := &models.CartItem{
		ID:        s.cartID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	s.cartID++
	s.carts[item.ID] = item
	c := *item
	return &c, nil
}

// UpdateCartItem sets the quantity of a cart row and returns the updated
// row, or nil if no such row exists.
func (s *Store) UpdateCartItem(id int64, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.carts[id]
	if !ok {
		return nil, nil
	}
	item.Quantity = quantity
	c := *item
	return &c, nil
}

// RemoveFromCart deletes a cart row and reports whether one was removed.
// Removing an absent row is not an error; it simply reports false.
func (s *Store) RemoveFromCart(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[id]; !ok {
		return false
	}
	delete(s.carts, id)
	return true
}

// ClearCart removes every cart row belonging to the user. Clearing an
// already-empty cart is a no-op.
func (s *Store) ClearCart(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.carts {
		if item.UserID == userID {
			delete(s.carts, id)
		}
	}
}
