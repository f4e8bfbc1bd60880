package models

// Product is the model for a catalog item.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// --- Pricing & Stock ---
	Price     float64  `json:"price"`
	IsOnSale  bool     `json:"isOnSale"`
	SalePrice *float64 `json:"salePrice,omitempty"`
	Stock     int      `json:"stock"`

	// --- Catalog Placement ---
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`              // dog, cat, fish
	SubCategory *string `json:"subCategory,omitempty"` // food, toy, accessory
	IsFeatured  bool    `json:"isFeatured"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// EffectivePrice is the price actually charged: the sale price while the
// product is on sale and one is set, otherwise the list price.
func (p *Product) EffectivePrice() float64 {
	if p.IsOnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
