package section

import "github.com/bracketpress/bracketpress/internal/palette"

// ProgramSettings configures the schedule section.
type ProgramSettings struct {
	Layout          string        `json:"layout"`
	Heading         string        `json:"heading"`
	AccentColor     string        `json:"accent_color"`
	BackgroundColor string        `json:"background_color"`
	Padding         Padding       `json:"padding"`
	Items           []ProgramItem `json:"items"`
}

// ProgramItem is one scheduled slot in the event program.
type ProgramItem struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ItemID implements Item.
func (p ProgramItem) ItemID() string { return p.ID }

func defaultProgramSettings(pal palette.Palette) *ProgramSettings {
	return &ProgramSettings{
		Layout:          "timeline",
		Heading:         "Program",
		AccentColor:     pal.AccentStrong,
		BackgroundColor: pal.CardAlt,
		Padding:         Padding{Top: 64, Bottom: 64},
		Items: []ProgramItem{
			{ID: NewItemID(), Time: "10:00", Title: "Check-in", Description: "Team check-in opens"},
			{ID: NewItemID(), Time: "11:00", Title: "Group stage", Description: "First round of matches"},
			{ID: NewItemID(), Time: "18:00", Title: "Finals", Description: "Best of five on the main stream"},
		},
	}
}

func (s *ProgramSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.AccentColor, palette.RoleAccentStrong, prev, next) || changed
	changed = syncColor(&s.BackgroundColor, palette.RoleCardAlt, prev, next) || changed
	return changed
}

var programVariants = []Variant{
	{Name: "timeline", Overrides: nil},
	{Name: "table", Overrides: nil},
	{Name: "cards", Overrides: nil},
}
