// Package domain contains the core data model for the storefront:
// catalog items, cart lines, and the user profile.
package domain

// Item is a purchasable catalog entry.
//
// IsFavorite is derived state: it is stamped from the favorites ledger at
// read time and is never part of the item's persisted identity. Prices are
// integer minor currency units.
type Item struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         int             `json:"price"`
	OldPrice      int             `json:"old_price,omitempty"`
	Discount      int             `json:"discount,omitempty"`
	Rating        float64         `json:"rating"`
	ReviewsCount  int             `json:"reviews_count"`
	ImageURLs     []string        `json:"image_urls,omitempty"`
	ImageNames    []string        `json:"image_names,omitempty"`
	IsTimeLimited bool            `json:"is_time_limited,omitempty"`
	AccentColor   string          `json:"accent_color,omitempty"` // hex, e.g. "#1B5E20"
	IsFavorite    bool            `json:"is_favorite"`
	Seller        *Seller         `json:"seller,omitempty"`
	Brand         *Brand          `json:"brand,omitempty"`
	Description   string          `json:"description,omitempty"`
	Variants      []Variant       `json:"variants,omitempty"`
	Sizes         []Size          `json:"sizes,omitempty"`
	Specs         []Specification `json:"specifications,omitempty"`
}

// Seller is the merchant offering an item.
type Seller struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AvatarURL    string  `json:"avatar_url,omitempty"`
	Rating       float64 `json:"rating"`
	OrdersCount  int     `json:"orders_count"`
	ReviewsCount int     `json:"reviews_count"`
}

// Brand identifies an item's brand.
type Brand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

// Specification is one name/value row in an item's spec sheet.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is a non-size attribute of an item, such as a color or material.
type Variant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Value       string   `json:"value"`
	IsAvailable bool     `json:"is_available"`
	ImageNames  []string `json:"image_names,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

// Size is a selectable size of an item.
type Size struct {
	ID          string `json:"id"`
	Value       string `json:"value"`
	IsAvailable bool   `json:"is_available"`
}

// DiscountPercent computes the effective discount from old and current price,
// falling back to the explicit Discount field when prices don't imply one.
func (it *Item) DiscountPercent() int {
	if it.OldPrice > it.Price && it.OldPrice > 0 {
		return (it.OldPrice - it.Price) * 100 / it.OldPrice
	}
	return it.Discount
}

// HasDiscount reports whether the item is currently discounted.
func (it *Item) HasDiscount() bool {
	return it.OldPrice > it.Price && it.OldPrice > 0
}

// Variant returns the variant with the given id, or nil.
func (it *Item) Variant(variantID string) *Variant {
	for i := range it.Variants {
		if it.Variants[i].ID == variantID {
			return &it.Variants[i]
		}
	}
	return nil
}

// Size returns the size with the given id, or nil.
func (it *Item) Size(sizeID string) *Size {
	for i := range it.Sizes {
		if it.Sizes[i].ID == sizeID {
			return &it.Sizes[i]
		}
	}
	return nil
}

// WithFavorite returns a copy of the item with the favorite flag set.
// The receiver is left untouched; slices are shared since they are
// treated as immutable once published.
func (it Item) WithFavorite(fav bool) Item {
	it.IsFavorite = fav
	return it
}

// FirstImage returns the first image name of a variant, or "".
func (v *Variant) FirstImage() string {
	if len(v.ImageNames) > 0 {
		return v.ImageNames[0]
	}
	return ""
}

// HasImages reports whether the variant carries any image reference.
func (v *Variant) HasImages() bool {
	return len(v.ImageNames) > 0 || len(v.ImageURLs) > 0
}
