package section

import "github.com/bracketpress/bracketpress/internal/palette"

// AboutSettings configures the event description section.
type AboutSettings struct {
	Layout          string    `json:"layout"`
	Heading         string    `json:"heading"`
	Body            string    `json:"body"`
	Image           string    `json:"image"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	Padding         Padding   `json:"padding"`
	FontSizes       FontSizes `json:"font_sizes"`
	Bullets         []Bullet  `json:"bullets"`
}

// Bullet is one highlighted fact in the about section.
type Bullet struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ItemID implements Item.
func (b Bullet) ItemID() string { return b.ID }

func defaultAboutSettings(pal palette.Palette) *AboutSettings {
	return &AboutSettings{
		Layout:          "image-left",
		Heading:         "About the tournament",
		Body:            "Tell visitors what this event is, who plays, and why it matters.",
		BackgroundColor: pal.CardBackground,
		TextColor:       pal.BodyText,
		Padding:         Padding{Top: 64, Bottom: 64},
		FontSizes:       FontSizes{Heading: 32, Body: 16},
		Bullets: []Bullet{
			{ID: NewItemID(), Text: "Open qualifier"},
			{ID: NewItemID(), Text: "Double elimination playoffs"},
		},
	}
}

func (s *AboutSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.BackgroundColor, palette.RoleCardBackground, prev, next) || changed
	changed = syncColor(&s.TextColor, palette.RoleBodyText, prev, next) || changed
	return changed
}

var aboutVariants = []Variant{
	{Name: "image-left", Overrides: nil},
	{Name: "image-right", Overrides: nil},
	{Name: "stacked", Overrides: map[string]any{"padding": map[string]any{"top": 48, "bottom": 48}}},
	{Name: "spotlight", Overrides: map[string]any{"padding": map[string]any{"top": 96, "bottom": 96}}},
	{Name: "feature-grid", Overrides: nil},
}
