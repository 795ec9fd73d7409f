package palette

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	black = "#000000"
	white = "#ffffff"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Normalize canonicalises a user-supplied color string to lowercase
// "#rrggbb" form. It accepts 3- or 6-digit hex with or without the leading
// "#". Anything else degrades to black: the editor never rejects a color,
// it just renders the safe fallback.
func Normalize(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "#")

	if len(v) == 3 {
		var b strings.Builder
		for _, r := range v {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		v = b.String()
	}

	v = "#" + v
	if !hexPattern.MatchString(v) {
		return black
	}
	return v
}

// parse converts a normalized hex string into a colorful.Color.
func parse(s string) colorful.Color {
	c, err := colorful.Hex(Normalize(s))
	if err != nil {
		c, _ = colorful.Hex(black)
	}
	return c
}

// Mix linearly interpolates between two colors per RGB channel. t is clamped
// to [0, 1]; t=0 yields a, t=1 yields b.
func Mix(a, b string, t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return parse(a).BlendRgb(parse(b), t).Clamped().Hex()
}

// Lighten mixes a color toward white.
func Lighten(c string, t float64) string {
	return Mix(c, white, t)
}

// Darken mixes a color toward black.
func Darken(c string, t float64) string {
	return Mix(c, black, t)
}
