package store

import (
	"fmt"
	"sort"

	"github.com/petsphere/petsphere-api/internal/models"
)

// GetOrder returns the order with the given id, or nil if absent.
func (s *Store) GetOrder(id int64) *models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOrder(s.orders[id])
}

// GetOrdersByUser returns all of a user's orders in insertion order.
func (s *Store) GetOrdersByUser(userID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateOrder stores a new order, assigning the next id and the creation
// timestamp. Any id or CreatedAt supplied by the caller is overwritten.
func (s *Store) CreateOrder(o models.Order) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.orderID
	s.orderID++
	o.CreatedAt = s.now()
	s.orders[o.ID] = &o
	return copyOrder(&o)
}

// UpdateOrderStatus writes a new status string on the order and returns the
// updated record, or nil if no such order exists. Status values are
// free-form; there is no enforced state machine.
func (s *Store) UpdateOrderStatus(id int64, status string) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil
	}
	o.Status = status
	return copyOrder(o)
}

// GetOrderItems returns the order's lines with their products attached, in
// insertion order. A line whose product has been deleted fails the read
// with ErrDanglingProduct.
func (s *Store) GetOrderItems(orderID int64) ([]models.OrderItemWithProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.OrderItemWithProduct
	for _, item := range s.orderItems {
		if item.OrderID != orderID {
			continue
		}
		product, ok := s.products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("order item %d: %w", item.ID, ErrDanglingProduct)
		}
		out = append(out, models.OrderItemWithProduct{
			OrderItem: *item,
			Product:   *product,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CreateOrderItem stores a new order line, assigning the next id. The
// caller supplies the price: it is the snapshot taken at checkout and is
// never recomputed here.
func (s *Store) CreateOrderItem(item models.OrderItem) *models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.orderItemID
	s.orderItemID++
	s.orderItems[item.ID] = &item
	c := item
	return &c
}

func copyOrder(o *models.Order) *models.Order {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}
