package section

import "github.com/bracketpress/bracketpress/internal/palette"

// NavigationSettings configures the top navigation bar.
type NavigationSettings struct {
	Layout          string     `json:"layout"`
	BackgroundColor string     `json:"background_color"`
	TextColor       string     `json:"text_color"`
	HoverColor      string     `json:"hover_color"`
	Padding         Padding    `json:"padding"`
	FontSizes       FontSizes  `json:"font_sizes"`
	Sticky          bool       `json:"sticky"`
	ShowLogo        bool       `json:"show_logo"`
	LogoImage       string     `json:"logo_image"`
	MenuItems       []MenuItem `json:"menu_items"`
	CTA             NavCTA     `json:"cta"`
}

// MenuItem is one navigation entry pointing at a section anchor or URL.
type MenuItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

// ItemID implements Item.
func (m MenuItem) ItemID() string { return m.ID }

// NavCTA is the optional call-to-action button at the end of the bar.
type NavCTA struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
	URL     string `json:"url"`
	Color   string `json:"color"`
}

func defaultNavigationSettings(pal palette.Palette) *NavigationSettings {
	return &NavigationSettings{
		Layout:          "classic",
		BackgroundColor: pal.NavBackground,
		TextColor:       pal.NavText,
		HoverColor:      pal.NavHover,
		Padding:         Padding{Top: 16, Bottom: 16},
		FontSizes:       FontSizes{Heading: 18, Body: 15},
		Sticky:          true,
		ShowLogo:        true,
		MenuItems: []MenuItem{
			{ID: NewItemID(), Label: "Home", Target: "#hero"},
			{ID: NewItemID(), Label: "Bracket", Target: "#bracket"},
			{ID: NewItemID(), Label: "Teams", Target: "#teams"},
			{ID: NewItemID(), Label: "Watch", Target: "#stream"},
		},
		CTA: NavCTA{Enabled: true, Label: "Register", URL: "#registration", Color: pal.ButtonPrimary},
	}
}

func (s *NavigationSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.BackgroundColor, palette.RoleNavBackground, prev, next) || changed
	changed = syncColor(&s.TextColor, palette.RoleNavText, prev, next) || changed
	changed = syncColor(&s.HoverColor, palette.RoleNavHover, prev, next) || changed
	changed = syncColor(&s.CTA.Color, palette.RoleButtonPrimary, prev, next) || changed
	return changed
}

var navigationVariants = []Variant{
	{Name: "classic", Overrides: nil},
	{Name: "centered", Overrides: map[string]any{"show_logo": true, "sticky": false}},
	{Name: "split", Overrides: map[string]any{"show_logo": true, "sticky": true}},
}

var navigationFormats = []Format{
	{Name: "standard", Overrides: map[string]any{
		"padding": map[string]any{"top": 16, "bottom": 16},
		"cta":     map[string]any{"enabled": true},
	}},
	{Name: "minimal", Overrides: map[string]any{
		"padding": map[string]any{"top": 8, "bottom": 8},
		"cta":     map[string]any{"enabled": false},
	}},
	{Name: "expanded", Overrides: map[string]any{
		"padding":   map[string]any{"top": 28, "bottom": 28},
		"show_logo": true,
		"cta":       map[string]any{"enabled": true},
	}},
}
