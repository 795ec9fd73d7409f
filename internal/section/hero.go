package section

import "github.com/bracketpress/bracketpress/internal/palette"

// HeroSettings configures the lead banner section.
type HeroSettings struct {
	Template         string    `json:"template"`
	Title            string    `json:"title"`
	Subtitle         string    `json:"subtitle"`
	Alignment        string    `json:"alignment"`
	BackgroundImage  string    `json:"background_image"`
	OverlayColor     string    `json:"overlay_color"`
	TitleColor       string    `json:"title_color"`
	SubtitleColor    string    `json:"subtitle_color"`
	Padding          Padding   `json:"padding"`
	FontSizes        FontSizes `json:"font_sizes"`
	CountdownEnabled bool      `json:"countdown_enabled"`
	StartTime        string    `json:"start_time"`
	Buttons          []Button  `json:"buttons"`
}

func defaultHeroSettings(pal palette.Palette) *HeroSettings {
	return &HeroSettings{
		Template:      "classic-center",
		Title:         "Tournament Name",
		Subtitle:      "The season starts here",
		Alignment:     "center",
		OverlayColor:  pal.HeroOverlay,
		TitleColor:    pal.Heading,
		SubtitleColor: pal.MutedText,
		Padding:       Padding{Top: 96, Bottom: 96},
		FontSizes:     FontSizes{Heading: 48, Body: 20},
		Buttons: []Button{
			{ID: NewItemID(), Label: "Register now", URL: "#registration", Style: "primary", Enabled: true},
			{ID: NewItemID(), Label: "Watch live", URL: "#stream", Style: "secondary", Enabled: true},
		},
	}
}

func (s *HeroSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.OverlayColor, palette.RoleHeroOverlay, prev, next) || changed
	changed = syncColor(&s.TitleColor, palette.RoleHeading, prev, next) || changed
	changed = syncColor(&s.SubtitleColor, palette.RoleMutedText, prev, next) || changed
	return changed
}

// Switching a hero template cascades a matching default alignment; the
// cascade is a merge, so titles, buttons and colors are untouched.
var heroVariants = []Variant{
	{Name: "classic-center", Overrides: map[string]any{"alignment": "center"}},
	{Name: "story-left", Overrides: map[string]any{"alignment": "left"}},
	{Name: "split-image-left", Overrides: map[string]any{"alignment": "left"}},
	{Name: "split-image-right", Overrides: map[string]any{"alignment": "right"}},
}

var heroFormats = []Format{
	{Name: "launch", Overrides: map[string]any{
		"countdown_enabled": true,
		"padding":           map[string]any{"top": 120, "bottom": 120},
	}},
	{Name: "compact", Overrides: map[string]any{
		"countdown_enabled": false,
		"padding":           map[string]any{"top": 48, "bottom": 48},
	}},
}
