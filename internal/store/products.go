package store

import (
	"sort"

	"github.com/petsphere/petsphere-api/internal/models"
)

// ProductPatch is a partial update for a product. Nil fields are left
// untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Category    *string
	SubCategory *string
	IsFeatured  *bool
	IsOnSale    *bool
	SalePrice   *float64
	Stock       *int
	Rating      *float64
	ReviewCount *int
}

// GetProduct returns the product with the given id, or nil if absent.
func (s *Store) GetProduct(id int64) *models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProduct(s.products[id])
}

// GetProducts returns the whole catalog in insertion order.
func (s *Store) GetProducts() []models.Product {
	return s.listProducts(func(*models.Product) bool { return true })
}

// GetProductsByCategory returns all products in a category.
func (s *Store) GetProductsByCategory(category string) []models.Product {
	return s.listProducts(func(p *models.Product) bool {
		return p.Category == category
	})
}

// GetProductsBySubCategory returns all products in a sub-category.
func (s *Store) GetProductsBySubCategory(subCategory string) []models.Product {
	return s.listProducts(func(p *models.Product) bool {
		return p.SubCategory != nil && *p.SubCategory == subCategory
	})
}

// GetFeaturedProducts returns the products flagged for the storefront's
// featured shelf.
func (s *Store) GetFeaturedProducts() []models.Product {
	return s.listProducts(func(p *models.Product) bool { return p.IsFeatured })
}

func (s *Store) listProducts(match func(*models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if match(p) {
			out = append(out, *p)
		}
	}
	// Ids are monotonic, so id order is insertion order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateProduct stores a new product, assigning the next id. Any id
// supplied by the caller is overwritten.
func (s *Store) CreateProduct(p models.Product) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.productID
	s.productID++
	s.products[p.ID] = &p
	return copyProduct(&p)
}

// UpdateProduct merges the patch into the existing product and returns the
// updated record, or nil if no such product exists.
func (s *Store) UpdateProduct(id int64, patch ProductPatch) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SubCategory != nil {
		p.SubCategory = patch.SubCategory
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.IsOnSale != nil {
		p.IsOnSale = *patch.IsOnSale
	}
	if patch.SalePrice != nil {
		p.SalePrice = patch.SalePrice
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.ReviewCount != nil {
		p.ReviewCount = *patch.ReviewCount
	}

	return copyProduct(p)
}

// DeleteProduct removes a product and reports whether one was removed.
// Rows already referencing the product are not touched; subsequent resolved
// reads of those rows fail with ErrDanglingProduct.
func (s *Store) DeleteProduct(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

func copyProduct(p *models.Product) *models.Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
