package section

import "github.com/bracketpress/bracketpress/internal/palette"

// StreamSettings configures the livestream embed section.
type StreamSettings struct {
	Heading    string  `json:"heading"`
	Channel    string  `json:"channel"`
	Autoplay   bool    `json:"autoplay"`
	Muted      bool    `json:"muted"`
	ShowChat   bool    `json:"show_chat"`
	FrameColor string  `json:"frame_color"`
	Padding    Padding `json:"padding"`
}

func defaultStreamSettings(pal palette.Palette) *StreamSettings {
	return &StreamSettings{
		Heading:    "Watch live",
		Muted:      true,
		ShowChat:   true,
		FrameColor: pal.SurfaceBorder,
		Padding:    Padding{Top: 48, Bottom: 48},
	}
}

func (s *StreamSettings) syncPalette(prev, next palette.Palette) bool {
	return syncColor(&s.FrameColor, palette.RoleSurfaceBorder, prev, next)
}
