package section

import "github.com/bracketpress/bracketpress/internal/palette"

// FooterSettings configures the page footer.
type FooterSettings struct {
	Template        string           `json:"template"`
	Text            string           `json:"text"`
	BackgroundColor string           `json:"background_color"`
	TextColor       string           `json:"text_color"`
	LinkColor       string           `json:"link_color"`
	ShowSocials     bool             `json:"show_socials"`
	Padding         Padding          `json:"padding"`
	Links           []FooterLinkItem `json:"links"`
}

// FooterLinkItem is one footer navigation entry.
type FooterLinkItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ItemID implements Item.
func (l FooterLinkItem) ItemID() string { return l.ID }

func defaultFooterSettings(pal palette.Palette) *FooterSettings {
	return &FooterSettings{
		Template:        "three-columns",
		Text:            "© Tournament organizers",
		BackgroundColor: pal.FooterBackground,
		TextColor:       pal.FooterText,
		LinkColor:       pal.FooterLink,
		ShowSocials:     true,
		Padding:         Padding{Top: 40, Bottom: 40},
		Links: []FooterLinkItem{
			{ID: NewItemID(), Label: "Rules", URL: "#"},
			{ID: NewItemID(), Label: "Contact", URL: "#"},
		},
	}
}

func (s *FooterSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.BackgroundColor, palette.RoleFooterBackground, prev, next) || changed
	changed = syncColor(&s.TextColor, palette.RoleFooterText, prev, next) || changed
	changed = syncColor(&s.LinkColor, palette.RoleFooterLink, prev, next) || changed
	return changed
}

var footerVariants = []Variant{
	{Name: "three-columns", Overrides: nil},
	{Name: "two-columns", Overrides: nil},
	{Name: "centered", Overrides: map[string]any{"show_socials": true}},
	{Name: "minimal", Overrides: map[string]any{"show_socials": false}},
}

var footerFormats = []Format{
	{Name: "full", Overrides: map[string]any{
		"show_socials": true,
		"padding":      map[string]any{"top": 56, "bottom": 56},
	}},
	{Name: "slim", Overrides: map[string]any{
		"show_socials": false,
		"padding":      map[string]any{"top": 20, "bottom": 20},
	}},
}
