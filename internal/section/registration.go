package section

import "github.com/bracketpress/bracketpress/internal/palette"

// RegistrationSettings configures the sign-up section.
type RegistrationSettings struct {
	Heading          string      `json:"heading"`
	Description      string      `json:"description"`
	Deadline         string      `json:"deadline"`
	ButtonLabel      string      `json:"button_label"`
	ButtonColor      string      `json:"button_color"`
	BackgroundColor  string      `json:"background_color"`
	InputBackground  string      `json:"input_background"`
	InputBorderColor string      `json:"input_border_color"`
	Padding          Padding     `json:"padding"`
	Fields           []FormField `json:"fields"`
}

// FormField is one input in the registration form.
type FormField struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

// ItemID implements Item.
func (f FormField) ItemID() string { return f.ID }

func defaultRegistrationSettings(pal palette.Palette) *RegistrationSettings {
	return &RegistrationSettings{
		Heading:          "Register your team",
		Description:      "Spots are limited. Sign up before the deadline.",
		ButtonLabel:      "Submit",
		ButtonColor:      pal.ButtonPrimary,
		BackgroundColor:  pal.CardAlt,
		InputBackground:  pal.InputBackground,
		InputBorderColor: pal.InputBorder,
		Padding:          Padding{Top: 64, Bottom: 64},
		Fields: []FormField{
			{ID: NewItemID(), Label: "Team name", Kind: "text", Required: true},
			{ID: NewItemID(), Label: "Captain email", Kind: "email", Required: true},
			{ID: NewItemID(), Label: "Roster", Kind: "textarea", Required: false},
		},
	}
}

func (s *RegistrationSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.ButtonColor, palette.RoleButtonPrimary, prev, next) || changed
	changed = syncColor(&s.BackgroundColor, palette.RoleCardAlt, prev, next) || changed
	changed = syncColor(&s.InputBackground, palette.RoleInputBackground, prev, next) || changed
	changed = syncColor(&s.InputBorderColor, palette.RoleInputBorder, prev, next) || changed
	return changed
}
