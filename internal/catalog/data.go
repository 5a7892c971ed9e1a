package catalog

import "github.com/ksynicapp/storefront-server/internal/domain"

// Built-in sample catalog. Ids are stable; persisted favorites and cart
// lines reference them across restarts. Favorite flags here are the seed
// defaults adopted on first run.

func sampleBrands() map[string]*domain.Brand {
	return map[string]*domain.Brand{
		"adidas":       {ID: "brand_1", Name: "Adidas"},
		"calvin_klein": {ID: "brand_2", Name: "Calvin Klein"},
		"nike":         {ID: "brand_3", Name: "Nike"},
		"apple":        {ID: "brand_4", Name: "Apple"},
	}
}

func sampleSellers() map[string]*domain.Seller {
	return map[string]*domain.Seller{
		"fashion_store": {ID: "seller_2", Name: "Fashion Store", Rating: 4.8, OrdersCount: 1200, ReviewsCount: 287},
		"tech_shop":     {ID: "seller_3", Name: "TechShop", Rating: 5.0, OrdersCount: 5600, ReviewsCount: 892},
		"sport_style":   {ID: "seller_4", Name: "Sport Style", Rating: 4.7, OrdersCount: 2100, ReviewsCount: 156},
		"watch_master":  {ID: "seller_5", Name: "Watch Master", Rating: 4.9, OrdersCount: 890, ReviewsCount: 234},
	}
}

func sampleCatalog() []domain.Item {
	brands := sampleBrands()
	sellers := sampleSellers()

	return []domain.Item{
		{
			ID:           "product_1",
			Name:         "Adidas Sportswear Hoops 3.0 Sneakers",
			Price:        3743,
			Rating:       4.9,
			ReviewsCount: 457,
			ImageNames:   []string{"adidas_1_1", "adidas_1", "adidas_2", "adidas_2_1"},
			AccentColor:  "#000000",
			Seller:       sellers["sport_style"],
			Brand:        brands["adidas"],
			Description:  "Adidas Sportswear Hoops 3.0 sneakers. Cushioned sole and a clean modern silhouette.",
			Specs: []domain.Specification{
				{Name: "Upper material", Value: "Textile, synthetic"},
				{Name: "Sole material", Value: "Rubber"},
				{Name: "Country of origin", Value: "China"},
				{Name: "Weight", Value: "350 g"},
			},
			Sizes: []domain.Size{
				{ID: "size_1_1", Value: "40", IsAvailable: true},
				{ID: "size_1_2", Value: "41", IsAvailable: true},
				{ID: "size_1_3", Value: "42", IsAvailable: true},
				{ID: "size_1_4", Value: "43", IsAvailable: false},
			},
			Variants: []domain.Variant{
				{ID: "variant_1_1", Name: "Color", Value: "Black", IsAvailable: true, ImageNames: []string{"adidas_1", "adidas_1_1"}},
				{ID: "variant_1_2", Name: "Color", Value: "White", IsAvailable: true, ImageNames: []string{"adidas_2", "adidas_2_1"}},
			},
		},
		{
			ID:            "product_2",
			Name:          "Quartz Wrist Watch",
			Price:         4200,
			OldPrice:      21000,
			Discount:      80,
			Rating:        5.0,
			ReviewsCount:  23,
			ImageNames:    []string{"watch_quartz_hero", "watch_quartz_1", "watch_quartz_2", "watch_quartz_1_2", "watch_quartz_3"},
			IsTimeLimited: true,
			AccentColor:   "#CC3333",
			Seller:        sellers["watch_master"],
			Brand:         brands["calvin_klein"],
			Description: "A refined quartz watch for everyday wear and formal occasions alike. " +
				"Stainless steel case, water resistant to 30 meters, and a legible minimalist dial " +
				"that pairs with a business suit as easily as with casual clothes.",
			Specs: []domain.Specification{
				{Name: "Movement", Value: "Quartz"},
				{Name: "Case material", Value: "Stainless steel"},
				{Name: "Water resistance", Value: "30 m"},
				{Name: "Case diameter", Value: "40 mm"},
			},
			Variants: []domain.Variant{
				{ID: "variant_2_1", Name: "Color", Value: "Black", IsAvailable: true, ImageNames: []string{"watch_quartz_1", "watch_quartz_1_2"}},
				{ID: "variant_2_2", Name: "Color", Value: "Gold", IsAvailable: true, ImageNames: []string{"watch_quartz_2"}},
				{ID: "variant_3", Name: "Color", Value: "Silver", IsAvailable: false, ImageNames: []string{"watch_quartz_3"}},
			},
		},
		{
			ID:            "product_3",
			Name:          "Calvin Klein Black Men's Wrist Watch",
			Price:         4200,
			OldPrice:      21000,
			Discount:      80,
			Rating:        4.9,
			ReviewsCount:  457,
			ImageNames:    []string{"watch_calvin", "watch_calvin_1"},
			IsTimeLimited: true,
			AccentColor:   "#CC3333",
			IsFavorite:    true,
			Seller:        sellers["watch_master"],
			Brand:         brands["calvin_klein"],
			Description:   "Premium Calvin Klein men's watch. Black case, leather strap, water resistant to 50 meters.",
			Specs: []domain.Specification{
				{Name: "Brand", Value: "Calvin Klein"},
				{Name: "Movement", Value: "Quartz"},
				{Name: "Case material", Value: "Stainless steel"},
				{Name: "Strap material", Value: "Leather"},
				{Name: "Water resistance", Value: "50 m"},
				{Name: "Case diameter", Value: "42 mm"},
				{Name: "Case thickness", Value: "8 mm"},
				{Name: "Dial", Value: "Black with luminescent hands"},
			},
			Variants: []domain.Variant{
				{ID: "variant_3_1", Name: "Color", Value: "Grey", IsAvailable: true, ImageNames: []string{"watch_calvin"}},
				{ID: "variant_3_2", Name: "Color", Value: "Black", IsAvailable: true, ImageNames: []string{"watch_calvin_1"}},
			},
		},
		{
			ID:           "product_4",
			Name:         "iPhone 15 Pro 256GB",
			Price:        89990,
			OldPrice:     99990,
			Discount:     10,
			Rating:       4.8,
			ReviewsCount: 1234,
			ImageNames:   []string{"iphone_1", "iphone_2", "iphone_3"},
			AccentColor:  "#007AFF",
			Seller:       sellers["tech_shop"],
			Brand:        brands["apple"],
			Description:  "The new iPhone 15 Pro with the A17 Pro chip, Pro camera system, and ProMotion display.",
			Specs: []domain.Specification{
				{Name: "Display", Value: "6.1 inch"},
				{Name: "Chip", Value: "Apple A17 Pro"},
				{Name: "Storage", Value: "256 GB"},
				{Name: "Camera", Value: "48 MP + 12 MP + 12 MP"},
				{Name: "Battery", Value: "Up to 23 hours of video"},
				{Name: "OS", Value: "iOS 17"},
				{Name: "Weight", Value: "187 g"},
			},
			Variants: []domain.Variant{
				{ID: "variant_4_1", Name: "Color", Value: "Blue Titanium", IsAvailable: true, ImageNames: []string{"iphone_1"}},
				{ID: "variant_4_2", Name: "Color", Value: "White Titanium", IsAvailable: true, ImageNames: []string{"iphone_2"}},
				{ID: "variant_4_3", Name: "Color", Value: "Black Titanium", IsAvailable: true, ImageNames: []string{"iphone_3"}},
				{ID: "variant_4_4", Name: "Storage", Value: "128GB", IsAvailable: true},
				{ID: "variant_4_5", Name: "Storage", Value: "256GB", IsAvailable: true},
				{ID: "variant_4_6", Name: "Storage", Value: "512GB", IsAvailable: false},
			},
		},
		{
			ID:           "product_5",
			Name:         "Nike Air Max 270 Running Shoes",
			Price:        8999,
			Rating:       4.6,
			ReviewsCount: 89,
			ImageNames:   []string{"nike_270_1", "nike_270_2"},
			AccentColor:  "#000000",
			IsFavorite:   true,
			Seller:       sellers["fashion_store"],
			Brand:        brands["nike"],
			Description:  "Nike Air Max 270 with visible Air cushioning for all-day comfort, running or walking.",
			Specs: []domain.Specification{
				{Name: "Upper material", Value: "Synthetic leather, textile"},
				{Name: "Sole technology", Value: "Air Max"},
				{Name: "Country of origin", Value: "Vietnam"},
				{Name: "Weight", Value: "320 g"},
				{Name: "Closure", Value: "Laces"},
			},
			Sizes: []domain.Size{
				{ID: "size_5_1", Value: "39", IsAvailable: true},
				{ID: "size_5_2", Value: "40", IsAvailable: true},
				{ID: "size_5_3", Value: "41", IsAvailable: true},
				{ID: "size_5_4", Value: "42", IsAvailable: true},
				{ID: "size_5_5", Value: "43", IsAvailable: false},
			},
			Variants: []domain.Variant{
				{ID: "variant_5_1", Name: "Color", Value: "Black/White", IsAvailable: true},
				{ID: "variant_5_2", Name: "Color", Value: "Red/White", IsAvailable: true},
			},
		},
	}
}
