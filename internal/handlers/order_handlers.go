package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/models"
)

//
// --- Order Handlers (Login Required) ---
//

// GetOrders is the handler for GET /api/orders.
func (h *Handlers) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.GetOrdersByUser(currentUser(c).ID))
}

// GetOrder is the handler for GET /api/orders/:id. The response embeds the
// resolved order lines; only the order's owner may read it.
func (h *Handlers) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order := h.Store.GetOrder(id)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != currentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	items, err := h.Store.GetOrderItems(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order is in an inconsistent state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              order.ID,
		"userId":          order.UserID,
		"total":           order.Total,
		"status":          order.Status,
		"paymentMethod":   order.PaymentMethod,
		"shippingAddress": order.ShippingAddress,
		"billingAddress":  order.BillingAddress,
		"shippingMethod":  order.ShippingMethod,
		"trackingNumber":  order.TrackingNumber,
		"createdAt":       order.CreatedAt,
		"items":           items,
	})
}

// CreateOrderInput holds the checkout payload. Ids and timestamps are
// store-assigned; a caller cannot supply them.
type CreateOrderInput struct {
	Total           float64 `json:"total" binding:"required,gt=0"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required"`
	ShippingAddress string  `json:"shippingAddress" binding:"required"`
	BillingAddress  string  `json:"billingAddress" binding:"required"`
	ShippingMethod  string  `json:"shippingMethod" binding:"required"`
	TrackingNumber  *string `json:"trackingNumber"`
}

// CreateOrder is the handler for POST /api/orders — the checkout flow.
//
// Sequence: create the order, snapshot each resolved cart row into an order
// line at its effective price, then clear the cart. These three steps are
// not wrapped in a transaction: a failure after the order is created leaves
// the order persisted and the cart intact.
func (h *Handlers) CreateOrder(c *gin.Context) {
	user := currentUser(c)

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	// Resolve the cart first so a dangling product aborts checkout before
	// anything is written.
	cartItems, err := h.Store.GetCart(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart is in an inconsistent state"})
		return
	}

	order := h.Store.CreateOrder(models.Order{
		UserID:          user.ID,
		Total:           input.Total,
		Status:          status,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		ShippingMethod:  input.ShippingMethod,
		TrackingNumber:  input.TrackingNumber,
	})

	for _, item := range cartItems {
		h.Store.CreateOrderItem(models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.EffectivePrice(),
		})
	}

	h.Store.ClearCart(user.ID)

	c.JSON(http.StatusCreated, order)
}

// UpdateOrderStatusInput defines the JSON for PUT /api/orders/:id/status.
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus is the handler for PUT /api/orders/:id/status. Status
// strings are free-form writes; CreatedAt is untouched.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	order := h.Store.GetOrder(id)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != currentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, h.Store.UpdateOrderStatus(id, input.Status))
}
