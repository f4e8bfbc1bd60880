package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/store"
)

//
// --- Cart Handlers (Login Required) ---
//

// GetCart is the handler for GET /api/cart. It returns the resolved cart
// rows plus the aggregates the storefront sidebar needs: total item count
// and the subtotal at effective prices.
func (h *Handlers) GetCart(c *gin.Context) {
	items, err := h.Store.GetCart(currentUser(c).ID)
	if err != nil {
		// A dangling product reference means store invariants are already
		// broken; surface it as a server fault, never drop the row.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart is in an inconsistent state"})
		return
	}

	subtotal := 0.0
	totalItems := 0
	for _, item := range items {
		subtotal += item.Product.EffectivePrice() * float64(item.Quantity)
		totalItems += item.Quantity
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"subtotal":   subtotal,
		"totalItems": totalItems,
	})
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// AddToCart is the handler for POST /api/cart. Adding a product already in
// the cart merges quantities onto the existing row.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	item, err := h.Store.AddToCart(currentUser(c).ID, input.ProductID, input.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateCartItemInput defines the JSON for changing a row's quantity.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

// UpdateCartItem is the handler for PUT /api/cart/:id.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	item, err := h.Store.UpdateCartItem(id, input.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// RemoveFromCart is the handler for DELETE /api/cart/:id.
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	if !h.Store.RemoveFromCart(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearCart is the handler for DELETE /api/cart. Clearing an empty cart
// succeeds trivially.
func (h *Handlers) ClearCart(c *gin.Context) {
	h.Store.ClearCart(currentUser(c).ID)
	c.Status(http.StatusNoContent)
}
