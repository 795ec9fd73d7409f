package section

// ID identifies one section type in the builder catalog.
type ID string

const (
	Navigation   ID = "navigation"
	Hero         ID = "hero"
	About        ID = "about"
	Program      ID = "program"
	Bracket      ID = "bracket"
	Groups       ID = "groups"
	Teams        ID = "teams"
	Stats        ID = "stats"
	Registration ID = "registration"
	FAQ          ID = "faq"
	Stream       ID = "stream"
	Sponsors     ID = "sponsors"
	Socials      ID = "socials"
	Footer       ID = "footer"
)

// String returns the string representation of the id.
func (id ID) String() string {
	return string(id)
}

// Descriptor carries the static display metadata for a section type.
type Descriptor struct {
	ID    ID     `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// catalog is the fixed, ordered section catalog. Order here is the default
// page order for a new project.
var catalog = []Descriptor{
	{ID: Navigation, Label: "Navigation", Icon: "☰"},
	{ID: Hero, Label: "Hero", Icon: "★"},
	{ID: About, Label: "About", Icon: "ℹ"},
	{ID: Program, Label: "Program", Icon: "🕑"},
	{ID: Bracket, Label: "Bracket", Icon: "🏆"},
	{ID: Groups, Label: "Group Stage", Icon: "▦"},
	{ID: Teams, Label: "Teams", Icon: "👥"},
	{ID: Stats, Label: "Stats", Icon: "📊"},
	{ID: Registration, Label: "Registration", Icon: "✎"},
	{ID: FAQ, Label: "FAQ", Icon: "?"},
	{ID: Stream, Label: "Stream", Icon: "▶"},
	{ID: Sponsors, Label: "Sponsors", Icon: "◆"},
	{ID: Socials, Label: "Socials", Icon: "@"},
	{ID: Footer, Label: "Footer", Icon: "▁"},
}

// Catalog returns a copy of the full ordered section catalog.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// DefaultOrder returns the catalog permutation a fresh project starts with.
func DefaultOrder() []ID {
	out := make([]ID, len(catalog))
	for i, d := range catalog {
		out[i] = d.ID
	}
	return out
}

// Lookup returns the descriptor for an id.
func Lookup(id ID) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// IsValid reports whether the id names a catalog section.
func IsValid(id ID) bool {
	_, ok := Lookup(id)
	return ok
}

// Label returns the display label for an id, or the raw id when unknown.
func Label(id ID) string {
	if d, ok := Lookup(id); ok {
		return d.Label
	}
	return string(id)
}
