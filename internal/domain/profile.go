package domain

import "strings"

// Profile is the storefront user profile. It is a flat record with no
// relationships; updates overwrite the whole record.
type Profile struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	BirthDate   string `json:"birth_date"` // "DD.MM.YYYY"
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarName  string `json:"avatar_name,omitempty"`
	// AvatarColor is the accent shown behind the initials when no avatar
	// image is set. Derived from the profile id, not user-editable.
	AvatarColor string `json:"avatar_color,omitempty"`
}

// DefaultProfile returns the profile created on first access when none has
// been persisted yet.
func DefaultProfile() *Profile {
	return &Profile{
		FirstName:   "Dana",
		LastName:    "Deaton",
		Gender:      "unspecified",
		BirthDate:   "19.09.2001",
		Phone:       "+1 555 014 2297",
		Email:       "dana.deaton@example.com",
		DisplayName: "Dana D.",
		AvatarName:  "ava_default",
	}
}

// FullName joins first and last name, tolerating either being empty.
func (p *Profile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}

// ShortName returns the display name, or a compacted "First L." form
// derived from the real name when no display name is set.
func (p *Profile) ShortName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.FirstName != "" && p.LastName != "" {
		return p.FirstName + " " + strings.ToUpper(p.LastName[:1]) + "."
	}
	return p.FullName()
}
