package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/store"
)

//
// --- Wishlist Handlers (Login Required) ---
//

// GetWishlist is the handler for GET /api/wishlist.
func (h *Handlers) GetWishlist(c *gin.Context) {
	items, err := h.Store.GetWishlist(currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Wishlist is in an inconsistent state"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToWishlistInput defines the JSON for POST /api/wishlist.
type AddToWishlistInput struct {
	ProductID int64 `json:"productId" binding:"required"`
}

// AddToWishlist is the handler for POST /api/wishlist. Re-adding a product
// already on the list returns the existing row unchanged.
func (h *Handlers) AddToWishlist(c *gin.Context) {
	var input AddToWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	item, err := h.Store.AddToWishlist(currentUser(c).ID, input.ProductID)
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

// RemoveFromWishlist is the handler for DELETE /api/wishlist/:id.
func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist item id"})
		return
	}

	if !h.Store.RemoveFromWishlist(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
