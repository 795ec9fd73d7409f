package section

import "github.com/bracketpress/bracketpress/internal/palette"

// SponsorsSettings configures the sponsor logo wall.
type SponsorsSettings struct {
	Heading         string        `json:"heading"`
	BackgroundColor string        `json:"background_color"`
	Grayscale       bool          `json:"grayscale"`
	ShowTiers       bool          `json:"show_tiers"`
	Padding         Padding       `json:"padding"`
	Logos           []SponsorLogo `json:"logos"`
}

// SponsorLogo is one sponsor entry.
type SponsorLogo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	URL   string `json:"url"`
	Tier  string `json:"tier"`
}

// ItemID implements Item.
func (l SponsorLogo) ItemID() string { return l.ID }

func defaultSponsorsSettings(pal palette.Palette) *SponsorsSettings {
	return &SponsorsSettings{
		Heading:         "Our sponsors",
		BackgroundColor: pal.CardBackground,
		Grayscale:       true,
		Padding:         Padding{Top: 48, Bottom: 48},
		Logos: []SponsorLogo{
			{ID: NewItemID(), Name: "Your sponsor", Tier: "gold"},
		},
	}
}

func (s *SponsorsSettings) syncPalette(prev, next palette.Palette) bool {
	return syncColor(&s.BackgroundColor, palette.RoleCardBackground, prev, next)
}
