package section

import (
	"encoding/json"
	"fmt"

	"github.com/bracketpress/bracketpress/internal/palette"
)

// Variant is one named layout alternative for a section, selected through
// the section's discriminant field. Overrides cascade into related fields
// when the variant is selected; the cascade is a merge, never a replace.
type Variant struct {
	Name      string
	Overrides map[string]any
}

// Format is a named bulk preset that merges a partial overrides record into
// a section's settings. Fields the format does not name keep their values.
type Format struct {
	Name      string
	Overrides map[string]any
}

// Settings is the per-section settings union. Exactly one arm matching Kind
// is non-nil.
type Settings struct {
	Kind ID

	Navigation   *NavigationSettings
	Hero         *HeroSettings
	About        *AboutSettings
	Program      *ProgramSettings
	Bracket      *BracketSettings
	Groups       *GroupsSettings
	Teams        *TeamsSettings
	Stats        *StatsSettings
	Registration *RegistrationSettings
	FAQ          *FAQSettings
	Stream       *StreamSettings
	Sponsors     *SponsorsSettings
	Socials      *SocialsSettings
	Footer       *FooterSettings
}

// DefaultSettings builds a fresh default settings graph for the section,
// seeded from the given palette so every color field starts theme-linked.
// Each call produces new child-item ids and shares nothing with previous
// calls.
func DefaultSettings(id ID, pal palette.Palette) *Settings {
	s := &Settings{Kind: id}
	switch id {
	case Navigation:
		s.Navigation = defaultNavigationSettings(pal)
	case Hero:
		s.Hero = defaultHeroSettings(pal)
	case About:
		s.About = defaultAboutSettings(pal)
	case Program:
		s.Program = defaultProgramSettings(pal)
	case Bracket:
		s.Bracket = defaultBracketSettings(pal)
	case Groups:
		s.Groups = defaultGroupsSettings(pal)
	case Teams:
		s.Teams = defaultTeamsSettings(pal)
	case Stats:
		s.Stats = defaultStatsSettings(pal)
	case Registration:
		s.Registration = defaultRegistrationSettings(pal)
	case FAQ:
		s.FAQ = defaultFAQSettings(pal)
	case Stream:
		s.Stream = defaultStreamSettings(pal)
	case Sponsors:
		s.Sponsors = defaultSponsorsSettings(pal)
	case Socials:
		s.Socials = defaultSocialsSettings(pal)
	case Footer:
		s.Footer = defaultFooterSettings(pal)
	default:
		return nil
	}
	return s
}

// arm returns a pointer to the active arm.
func (s *Settings) arm() any {
	switch s.Kind {
	case Navigation:
		return s.Navigation
	case Hero:
		return s.Hero
	case About:
		return s.About
	case Program:
		return s.Program
	case Bracket:
		return s.Bracket
	case Groups:
		return s.Groups
	case Teams:
		return s.Teams
	case Stats:
		return s.Stats
	case Registration:
		return s.Registration
	case FAQ:
		return s.FAQ
	case Stream:
		return s.Stream
	case Sponsors:
		return s.Sponsors
	case Socials:
		return s.Socials
	case Footer:
		return s.Footer
	default:
		return nil
	}
}

// EncodeBody serialises the active arm to JSON.
func (s *Settings) EncodeBody() ([]byte, error) {
	arm := s.arm()
	if arm == nil {
		return nil, fmt.Errorf("settings for %q have no active arm", s.Kind)
	}
	return json.Marshal(arm)
}

// DecodeBody replaces the active arm with the decoded body.
func (s *Settings) DecodeBody(data []byte) error {
	fresh := &Settings{Kind: s.Kind}
	switch s.Kind {
	case Navigation:
		fresh.Navigation = &NavigationSettings{}
	case Hero:
		fresh.Hero = &HeroSettings{}
	case About:
		fresh.About = &AboutSettings{}
	case Program:
		fresh.Program = &ProgramSettings{}
	case Bracket:
		fresh.Bracket = &BracketSettings{}
	case Groups:
		fresh.Groups = &GroupsSettings{}
	case Teams:
		fresh.Teams = &TeamsSettings{}
	case Stats:
		fresh.Stats = &StatsSettings{}
	case Registration:
		fresh.Registration = &RegistrationSettings{}
	case FAQ:
		fresh.FAQ = &FAQSettings{}
	case Stream:
		fresh.Stream = &StreamSettings{}
	case Sponsors:
		fresh.Sponsors = &SponsorsSettings{}
	case Socials:
		fresh.Socials = &SocialsSettings{}
	case Footer:
		fresh.Footer = &FooterSettings{}
	default:
		return fmt.Errorf("unknown section kind %q", s.Kind)
	}
	if err := json.Unmarshal(data, fresh.arm()); err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// Clone returns a deep copy with no shared references.
func (s *Settings) Clone() (*Settings, error) {
	body, err := s.EncodeBody()
	if err != nil {
		return nil, err
	}
	out := &Settings{Kind: s.Kind}
	if err := out.DecodeBody(body); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncPalette sweeps every palette-linked field forward: a field whose value
// still equals the previous palette's role value follows the next palette; a
// user-overridden field no longer matches and is left alone. All rewrites
// for the section happen in this single call. Reports whether anything
// changed so unchanged sections can skip re-render.
func (s *Settings) SyncPalette(prev, next palette.Palette) bool {
	switch s.Kind {
	case Navigation:
		return s.Navigation.syncPalette(prev, next)
	case Hero:
		return s.Hero.syncPalette(prev, next)
	case About:
		return s.About.syncPalette(prev, next)
	case Program:
		return s.Program.syncPalette(prev, next)
	case Bracket:
		return s.Bracket.syncPalette(prev, next)
	case Groups:
		return s.Groups.syncPalette(prev, next)
	case Teams:
		return s.Teams.syncPalette(prev, next)
	case Stats:
		return s.Stats.syncPalette(prev, next)
	case Registration:
		return s.Registration.syncPalette(prev, next)
	case FAQ:
		return s.FAQ.syncPalette(prev, next)
	case Stream:
		return s.Stream.syncPalette(prev, next)
	case Sponsors:
		return s.Sponsors.syncPalette(prev, next)
	case Socials:
		return s.Socials.syncPalette(prev, next)
	case Footer:
		return s.Footer.syncPalette(prev, next)
	default:
		return false
	}
}

// Layout returns the section's layout discriminant, or "" for sections with
// a single fixed layout.
func (s *Settings) Layout() string {
	switch s.Kind {
	case Navigation:
		return s.Navigation.Layout
	case Hero:
		return s.Hero.Template
	case About:
		return s.About.Layout
	case Program:
		return s.Program.Layout
	case Teams:
		return s.Teams.Layout
	case Stats:
		return s.Stats.Layout
	case Footer:
		return s.Footer.Template
	default:
		return ""
	}
}

// SetLayout sets the layout discriminant without applying the variant
// cascade. Unknown kinds and kinds without variants are a no-op.
func (s *Settings) SetLayout(name string) {
	switch s.Kind {
	case Navigation:
		s.Navigation.Layout = name
	case Hero:
		s.Hero.Template = name
	case About:
		s.About.Layout = name
	case Program:
		s.Program.Layout = name
	case Teams:
		s.Teams.Layout = name
	case Stats:
		s.Stats.Layout = name
	case Footer:
		s.Footer.Template = name
	}
}

// Variants returns the layout variants for a section kind.
func Variants(id ID) []Variant {
	switch id {
	case Navigation:
		return navigationVariants
	case Hero:
		return heroVariants
	case About:
		return aboutVariants
	case Program:
		return programVariants
	case Teams:
		return teamsVariants
	case Stats:
		return statsVariants
	case Footer:
		return footerVariants
	default:
		return nil
	}
}

// FindVariant looks up a variant by name for a section kind.
func FindVariant(id ID, name string) (Variant, bool) {
	for _, v := range Variants(id) {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Formats returns the named bulk presets for a section kind.
func Formats(id ID) []Format {
	switch id {
	case Navigation:
		return navigationFormats
	case Hero:
		return heroFormats
	case Footer:
		return footerFormats
	default:
		return nil
	}
}

// FindFormat looks up a format by name for a section kind.
func FindFormat(id ID, name string) (Format, bool) {
	for _, f := range Formats(id) {
		if f.Name == name {
			return f, true
		}
	}
	return Format{}, false
}

// settingsEnvelope is the persisted JSON shape for the union.
type settingsEnvelope struct {
	Kind ID              `json:"kind"`
	Body json.RawMessage `json:"settings"`
}

// MarshalJSON encodes the union as {"kind": ..., "settings": {...}}.
func (s *Settings) MarshalJSON() ([]byte, error) {
	body, err := s.EncodeBody()
	if err != nil {
		return nil, err
	}
	return json.Marshal(settingsEnvelope{Kind: s.Kind, Body: body})
}

// UnmarshalJSON decodes the envelope and dispatches on the kind tag.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var env settingsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	s.Kind = env.Kind
	return s.DecodeBody(env.Body)
}
