package domain

import "strings"

// noSelection is the placeholder used in a line id when no variant or size
// was selected. It keeps line ids deterministic and parseable.
const noSelection = "none"

// LineID builds the composite identity of a cart line from the item and the
// optional variant/size selection. The same selection always yields the same
// id, so adding the same combination twice lands on one line.
func LineID(itemID, variantID, sizeID string) string {
	if variantID == "" {
		variantID = noSelection
	}
	if sizeID == "" {
		sizeID = noSelection
	}
	return strings.Join([]string{itemID, variantID, sizeID}, "_")
}

// CartLine is one entry in the cart. The embedded item is a snapshot taken
// when the line was created or last rehydrated; only its favorite flag is
// kept current afterwards.
type CartLine struct {
	ID        string `json:"id"`
	Item      Item   `json:"item"`
	VariantID string `json:"variant_id,omitempty"`
	SizeID    string `json:"size_id,omitempty"`
	Quantity  int    `json:"quantity"`
	Selected  bool   `json:"is_selected"`
}

// TotalPrice is the line's price contribution: unit price times quantity.
func (l *CartLine) TotalPrice() int {
	return l.Item.Price * l.Quantity
}

// VariantValue returns the display value of the selected variant, or "".
func (l *CartLine) VariantValue() string {
	if l.VariantID == "" {
		return ""
	}
	if v := l.Item.Variant(l.VariantID); v != nil {
		return v.Value
	}
	return ""
}

// SizeValue returns the display value of the selected size, or "".
func (l *CartLine) SizeValue() string {
	if l.SizeID == "" {
		return ""
	}
	if s := l.Item.Size(l.SizeID); s != nil {
		return s.Value
	}
	return ""
}

// CartRecord is the minimal persisted form of a cart line. Lines are
// rehydrated against a freshly loaded catalog on startup, so only the
// selection state is stored, not the item snapshot.
type CartRecord struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	VariantID string `json:"variant_id,omitempty"`
	SizeID    string `json:"size_id,omitempty"`
	Quantity  int    `json:"quantity"`
	Selected  bool   `json:"is_selected"`
}

// Record strips a cart line down to its persisted form.
func (l *CartLine) Record() CartRecord {
	return CartRecord{
		ID:        l.ID,
		ItemID:    l.Item.ID,
		VariantID: l.VariantID,
		SizeID:    l.SizeID,
		Quantity:  l.Quantity,
		Selected:  l.Selected,
	}
}
