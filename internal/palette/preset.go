package palette

import "sort"

// Preset is a named base-color seed a user can apply in one step.
type Preset struct {
	Name        string     `yaml:"name" validate:"required,min=1,max=50"`
	Description string     `yaml:"description,omitempty"`
	Colors      BaseColors `yaml:"colors" validate:"required"`
}

// DefaultBase is the seed every new project starts from.
func DefaultBase() BaseColors {
	return builtinPresets["midnight"].Colors
}

var builtinPresets = map[string]Preset{
	"midnight": {
		Name:        "midnight",
		Description: "Dark navy default",
		Colors: BaseColors{
			Primary:    "#6c5ce7",
			Secondary:  "#00b894",
			Accent:     "#fdcb6e",
			Background: "#0f1220",
			Text:       "#eceff4",
			Surface:    "#1b1f33",
			SurfaceAlt: "#242946",
		},
	},
	"scarlet": {
		Name:        "scarlet",
		Description: "Red and slate esports look",
		Colors: BaseColors{
			Primary:    "#e74c3c",
			Secondary:  "#3498db",
			Accent:     "#f1c40f",
			Background: "#12090a",
			Text:       "#f5eef0",
			Surface:    "#241316",
			SurfaceAlt: "#321b20",
		},
	},
	"forest": {
		Name:        "forest",
		Description: "Green on deep charcoal",
		Colors: BaseColors{
			Primary:    "#27ae60",
			Secondary:  "#16a085",
			Accent:     "#e67e22",
			Background: "#0c120d",
			Text:       "#e8f5ec",
			Surface:    "#17201a",
			SurfaceAlt: "#1f2d23",
		},
	},
	"daylight": {
		Name:        "daylight",
		Description: "Light theme for community cups",
		Colors: BaseColors{
			Primary:    "#2980b9",
			Secondary:  "#8e44ad",
			Accent:     "#d35400",
			Background: "#f8f9fb",
			Text:       "#1d2129",
			Surface:    "#ffffff",
			SurfaceAlt: "#eef1f6",
		},
	},
}

// BuiltinPreset looks up a built-in preset by name.
func BuiltinPreset(name string) (Preset, bool) {
	p, ok := builtinPresets[name]
	return p, ok
}

// BuiltinPresets returns the built-in presets sorted by name.
func BuiltinPresets() []Preset {
	out := make([]Preset, 0, len(builtinPresets))
	for _, p := range builtinPresets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
