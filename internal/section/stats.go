package section

import "github.com/bracketpress/bracketpress/internal/palette"

// StatsSettings configures the headline numbers section.
type StatsSettings struct {
	Layout         string      `json:"layout"`
	Heading        string      `json:"heading"`
	HighlightColor string      `json:"highlight_color"`
	TextColor      string      `json:"text_color"`
	Padding        Padding     `json:"padding"`
	Entries        []StatEntry `json:"entries"`
}

// StatEntry is one labelled figure.
type StatEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ItemID implements Item.
func (e StatEntry) ItemID() string { return e.ID }

func defaultStatsSettings(pal palette.Palette) *StatsSettings {
	return &StatsSettings{
		Layout:         "tiles",
		Heading:        "By the numbers",
		HighlightColor: pal.Badge,
		TextColor:      pal.MutedText,
		Padding:        Padding{Top: 48, Bottom: 48},
		Entries: []StatEntry{
			{ID: NewItemID(), Label: "Teams", Value: "16"},
			{ID: NewItemID(), Label: "Prize pool", Value: "$5,000"},
			{ID: NewItemID(), Label: "Matches", Value: "31"},
		},
	}
}

func (s *StatsSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.HighlightColor, palette.RoleBadge, prev, next) || changed
	changed = syncColor(&s.TextColor, palette.RoleMutedText, prev, next) || changed
	return changed
}

var statsVariants = []Variant{
	{Name: "tiles", Overrides: nil},
	{Name: "table", Overrides: nil},
}
