package palette

// BaseColors is the small user-edited seed from which every other color in
// the builder derives. All values are normalized "#rrggbb" hex strings.
type BaseColors struct {
	Primary    string `json:"primary" yaml:"primary" validate:"required,hexcolor"`
	Secondary  string `json:"secondary" yaml:"secondary" validate:"required,hexcolor"`
	Accent     string `json:"accent" yaml:"accent" validate:"required,hexcolor"`
	Background string `json:"background" yaml:"background" validate:"required,hexcolor"`
	Text       string `json:"text" yaml:"text" validate:"required,hexcolor"`
	Surface    string `json:"surface" yaml:"surface" validate:"required,hexcolor"`
	SurfaceAlt string `json:"surface_alt" yaml:"surface_alt" validate:"required,hexcolor"`
}

// Normalized returns a copy with every role canonicalised.
func (b BaseColors) Normalized() BaseColors {
	return BaseColors{
		Primary:    Normalize(b.Primary),
		Secondary:  Normalize(b.Secondary),
		Accent:     Normalize(b.Accent),
		Background: Normalize(b.Background),
		Text:       Normalize(b.Text),
		Surface:    Normalize(b.Surface),
		SurfaceAlt: Normalize(b.SurfaceAlt),
	}
}

// Role names a derived palette entry. Section settings declare which of
// their fields track which role.
type Role string

const (
	RoleNavBackground        Role = "nav_background"
	RoleNavText              Role = "nav_text"
	RoleNavHover             Role = "nav_hover"
	RoleLink                 Role = "link"
	RoleLinkHover            Role = "link_hover"
	RoleButtonPrimary        Role = "button_primary"
	RoleButtonPrimaryHover   Role = "button_primary_hover"
	RoleButtonSecondary      Role = "button_secondary"
	RoleButtonSecondaryHover Role = "button_secondary_hover"
	RoleAccentSoft           Role = "accent_soft"
	RoleAccentStrong         Role = "accent_strong"
	RoleHeading              Role = "heading"
	RoleBodyText             Role = "body_text"
	RoleMutedText            Role = "muted_text"
	RoleOverlay              Role = "overlay"
	RoleSurfaceBorder        Role = "surface_border"
	RoleShadow               Role = "shadow"
	RoleCardBackground       Role = "card_background"
	RoleCardAlt              Role = "card_alt"
	RoleDivider              Role = "divider"
	RoleFooterBackground     Role = "footer_background"
	RoleFooterText           Role = "footer_text"
	RoleFooterLink           Role = "footer_link"
	RoleHeroOverlay          Role = "hero_overlay"
	RoleInputBackground      Role = "input_background"
	RoleInputBorder          Role = "input_border"
	RoleBadge                Role = "badge"
	RoleTableStripe          Role = "table_stripe"
)

// Palette is the full derived color set. It is always recomputed in full
// from BaseColors and never patched directly.
type Palette struct {
	NavBackground        string `json:"nav_background"`
	NavText              string `json:"nav_text"`
	NavHover             string `json:"nav_hover"`
	Link                 string `json:"link"`
	LinkHover            string `json:"link_hover"`
	ButtonPrimary        string `json:"button_primary"`
	ButtonPrimaryHover   string `json:"button_primary_hover"`
	ButtonSecondary      string `json:"button_secondary"`
	ButtonSecondaryHover string `json:"button_secondary_hover"`
	AccentSoft           string `json:"accent_soft"`
	AccentStrong         string `json:"accent_strong"`
	Heading              string `json:"heading"`
	BodyText             string `json:"body_text"`
	MutedText            string `json:"muted_text"`
	Overlay              string `json:"overlay"`
	SurfaceBorder        string `json:"surface_border"`
	Shadow               string `json:"shadow"`
	CardBackground       string `json:"card_background"`
	CardAlt              string `json:"card_alt"`
	Divider              string `json:"divider"`
	FooterBackground     string `json:"footer_background"`
	FooterText           string `json:"footer_text"`
	FooterLink           string `json:"footer_link"`
	HeroOverlay          string `json:"hero_overlay"`
	InputBackground      string `json:"input_background"`
	InputBorder          string `json:"input_border"`
	Badge                string `json:"badge"`
	TableStripe          string `json:"table_stripe"`
}

// Derive computes the full palette from the base colors. The function is
// pure: same input, same output, no dependency on any previous palette.
// Only the five primary-derived roles (nav_hover, link, link_hover,
// button_primary, button_primary_hover) read the primary seed.
func Derive(base BaseColors) Palette {
	b := base.Normalized()

	return Palette{
		NavBackground:        Darken(b.Surface, 0.2),
		NavText:              b.Text,
		NavHover:             Lighten(b.Primary, 0.25),
		Link:                 Lighten(b.Primary, 0.15),
		LinkHover:            Lighten(b.Primary, 0.3),
		ButtonPrimary:        b.Primary,
		ButtonPrimaryHover:   Darken(b.Primary, 0.15),
		ButtonSecondary:      b.Secondary,
		ButtonSecondaryHover: Darken(b.Secondary, 0.15),
		AccentSoft:           Lighten(b.Accent, 0.35),
		AccentStrong:         Darken(b.Accent, 0.2),
		Heading:              b.Text,
		BodyText:             Mix(b.Text, b.Surface, 0.08),
		MutedText:            Mix(b.Text, b.Background, 0.4),
		Overlay:              Darken(b.Background, 0.5),
		SurfaceBorder:        Mix(b.Surface, b.Text, 0.15),
		Shadow:               Darken(b.SurfaceAlt, 0.4),
		CardBackground:       b.Surface,
		CardAlt:              b.SurfaceAlt,
		Divider:              Mix(b.SurfaceAlt, b.Text, 0.12),
		FooterBackground:     Darken(b.SurfaceAlt, 0.3),
		FooterText:           Mix(b.Text, b.SurfaceAlt, 0.2),
		FooterLink:           Lighten(b.Accent, 0.2),
		HeroOverlay:          Darken(b.Background, 0.6),
		InputBackground:      Lighten(b.Surface, 0.08),
		InputBorder:          Mix(b.Surface, b.Text, 0.25),
		Badge:                b.Accent,
		TableStripe:          Lighten(b.SurfaceAlt, 0.06),
	}
}

// Role returns the palette value for a named role.
func (p Palette) Role(r Role) (string, bool) {
	switch r {
	case RoleNavBackground:
		return p.NavBackground, true
	case RoleNavText:
		return p.NavText, true
	case RoleNavHover:
		return p.NavHover, true
	case RoleLink:
		return p.Link, true
	case RoleLinkHover:
		return p.LinkHover, true
	case RoleButtonPrimary:
		return p.ButtonPrimary, true
	case RoleButtonPrimaryHover:
		return p.ButtonPrimaryHover, true
	case RoleButtonSecondary:
		return p.ButtonSecondary, true
	case RoleButtonSecondaryHover:
		return p.ButtonSecondaryHover, true
	case RoleAccentSoft:
		return p.AccentSoft, true
	case RoleAccentStrong:
		return p.AccentStrong, true
	case RoleHeading:
		return p.Heading, true
	case RoleBodyText:
		return p.BodyText, true
	case RoleMutedText:
		return p.MutedText, true
	case RoleOverlay:
		return p.Overlay, true
	case RoleSurfaceBorder:
		return p.SurfaceBorder, true
	case RoleShadow:
		return p.Shadow, true
	case RoleCardBackground:
		return p.CardBackground, true
	case RoleCardAlt:
		return p.CardAlt, true
	case RoleDivider:
		return p.Divider, true
	case RoleFooterBackground:
		return p.FooterBackground, true
	case RoleFooterText:
		return p.FooterText, true
	case RoleFooterLink:
		return p.FooterLink, true
	case RoleHeroOverlay:
		return p.HeroOverlay, true
	case RoleInputBackground:
		return p.InputBackground, true
	case RoleInputBorder:
		return p.InputBorder, true
	case RoleBadge:
		return p.Badge, true
	case RoleTableStripe:
		return p.TableStripe, true
	default:
		return "", false
	}
}
