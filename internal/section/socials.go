package section

import "github.com/bracketpress/bracketpress/internal/palette"

// SocialsSettings configures the social links strip.
type SocialsSettings struct {
	Heading    string       `json:"heading"`
	IconColor  string       `json:"icon_color"`
	HoverColor string       `json:"hover_color"`
	Padding    Padding      `json:"padding"`
	Links      []SocialLink `json:"links"`
}

// SocialLink is one outbound social profile.
type SocialLink struct {
	ID      string `json:"id"`
	Network string `json:"network"`
	URL     string `json:"url"`
}

// ItemID implements Item.
func (l SocialLink) ItemID() string { return l.ID }

func defaultSocialsSettings(pal palette.Palette) *SocialsSettings {
	return &SocialsSettings{
		Heading:    "Follow the event",
		IconColor:  pal.Link,
		HoverColor: pal.LinkHover,
		Padding:    Padding{Top: 32, Bottom: 32},
		Links: []SocialLink{
			{ID: NewItemID(), Network: "twitch", URL: ""},
			{ID: NewItemID(), Network: "discord", URL: ""},
			{ID: NewItemID(), Network: "twitter", URL: ""},
		},
	}
}

func (s *SocialsSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.IconColor, palette.RoleLink, prev, next) || changed
	changed = syncColor(&s.HoverColor, palette.RoleLinkHover, prev, next) || changed
	return changed
}
