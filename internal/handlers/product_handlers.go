package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/models"
	"github.com/petsphere/petsphere-api/internal/store"
)

//
// --- Product Handlers ---
//

// GetProducts is the handler for GET /api/products.
// Optional filters: ?category=, ?subCategory=, ?featured=true. The first
// filter present wins, matching how the storefront queries the catalog.
func (h *Handlers) GetProducts(c *gin.Context) {
	var products []models.Product

	switch {
	case c.Query("category") != "":
		products = h.Store.GetProductsByCategory(c.Query("category"))
	case c.Query("subCategory") != "":
		products = h.Store.GetProductsBySubCategory(c.Query("subCategory"))
	case c.Query("featured") == "true":
		products = h.Store.GetFeaturedProducts()
	default:
		products = h.Store.GetProducts()
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct is the handler for GET /api/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product := h.Store.GetProduct(id)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProductInput holds the payload for adding a catalog item.
type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	SubCategory *string  `json:"subCategory"`
	IsFeatured  bool     `json:"isFeatured"`
	IsOnSale    bool     `json:"isOnSale"`
	SalePrice   *float64 `json:"salePrice"`
	Stock       int      `json:"stock" binding:"gte=0"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
}

// CreateProduct is the handler for POST /api/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product := h.Store.CreateProduct(models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		IsFeatured:  input.IsFeatured,
		IsOnSale:    input.IsOnSale,
		SalePrice:   input.SalePrice,
		Stock:       input.Stock,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
	})

	c.JSON(http.StatusCreated, product)
}

// UpdateProductInput holds a partial update; absent fields stay untouched.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl"`
	Category    *string  `json:"category"`
	SubCategory *string  `json:"subCategory"`
	IsFeatured  *bool    `json:"isFeatured"`
	IsOnSale    *bool    `json:"isOnSale"`
	SalePrice   *float64 `json:"salePrice"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"reviewCount"`
}

// UpdateProduct is the handler for PUT /api/products/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product := h.Store.UpdateProduct(id, store.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		IsFeatured:  input.IsFeatured,
		IsOnSale:    input.IsOnSale,
		SalePrice:   input.SalePrice,
		Stock:       input.Stock,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
	})
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct is the handler for DELETE /api/products/:id.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if !h.Store.DeleteProduct(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
