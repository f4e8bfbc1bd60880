package store

import "github.com/petsphere/petsphere-api/internal/models"

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// SeedDemoCatalog loads the demonstration catalog into an empty store.
// Products receive ids 1 through 6.
func (s *Store) SeedDemoCatalog() {
	catalog := []models.Product{
		{
			Name:        "Premium Organic Dog Treats",
			Description: "All-natural ingredients, perfect for training.",
			Price:       14.99,
			ImageURL:    "https://images.unsplash.com/photo-1601758124277-f0086d5ab050",
			Category:    "dog",
			SubCategory: strPtr("food"),
			IsFeatured:  true,
			Stock:       50,
			Rating:      4.5,
			ReviewCount: 42,
		},
		{
			Name:        "Plush Cat Bed",
			Description: "Ultra-soft cushioning for ultimate comfort.",
			Price:       29.99,
			ImageURL:    "https://images.unsplash.com/photo-1615678815958-5910c6811c25",
			Category:    "cat",
			SubCategory: strPtr("accessory"),
			IsFeatured:  true,
			Stock:       30,
			Rating:      4.0,
			ReviewCount: 28,
		},
		{
			Name:        "Automatic Fish Feeder",
			Description: "Programmable feeding times for fish tanks.",
			Price:       19.99,
			ImageURL:    "https://images.unsplash.com/photo-1535591273668-578e31182c4f",
			Category:    "fish",
			SubCategory: strPtr("accessory"),
			IsFeatured:  true,
			IsOnSale:    true,
			SalePrice:   floatPtr(15.99),
			Stock:       25,
			Rating:      5.0,
			ReviewCount: 56,
		},
		{
			Name:        "Durable Dog Chew Toy",
			Description: "Long-lasting rubber toy for aggressive chewers.",
			Price:       12.99,
			ImageURL:    "https://images.unsplash.com/photo-1560743641-3914f2c45636",
			Category:    "dog",
			SubCategory: strPtr("toy"),
			IsFeatured:  true,
			Stock:       45,
			Rating:      3.5,
			ReviewCount: 34,
		},
		{
			Name:        "Interactive Cat Toy",
			Description: "Feather Wand with Bell to keep your cat entertained.",
			Price:       12.99,
			ImageURL:    "https://images.unsplash.com/photo-1573865526739-10659fec78a5",
			Category:    "cat",
			SubCategory: strPtr("toy"),
			IsFeatured:  true,
			Stock:       40,
			Rating:      4.2,
			ReviewCount: 21,
		},
		{
			Name:        "Premium Dry Dog Food",
			Description: "5kg bag, Chicken Flavor, nutritionally complete.",
			Price:       24.99,
			ImageURL:    "https://images.unsplash.com/photo-1597843786411-a7fa8ad44a95",
			Category:    "dog",
			SubCategory: strPtr("food"),
			Stock:       60,
			Rating:      4.7,
			ReviewCount: 38,
		},
	}

	for _, p := range catalog {
		s.CreateProduct(p)
	}
}
