package section

import "github.com/bracketpress/bracketpress/internal/palette"

// Padding is the vertical spacing pair shared by every section.
type Padding struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// FontSizes is the recurring text sizing sub-record, in pixels.
type FontSizes struct {
	Heading int `json:"heading"`
	Body    int `json:"body"`
}

// Button is a call-to-action shared by hero and registration sections.
type Button struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	URL     string `json:"url"`
	Style   string `json:"style"`
	Enabled bool   `json:"enabled"`
}

// ItemID implements Item.
func (b Button) ItemID() string { return b.ID }

// syncColor rewrites a palette-linked color field when its current value
// still equals the previous palette's value for the role. A field the user
// has overridden no longer matches and is left alone. Reports whether the
// field changed.
func syncColor(field *string, role palette.Role, prev, next palette.Palette) bool {
	pv, ok := prev.Role(role)
	if !ok || field == nil {
		return false
	}
	nv, _ := next.Role(role)
	if *field != pv || pv == nv {
		return false
	}
	*field = nv
	return true
}
