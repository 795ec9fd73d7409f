package section

import (
	"fmt"

	"github.com/bracketpress/bracketpress/internal/palette"
)

// BracketSettings configures the playoff bracket section.
type BracketSettings struct {
	Heading string       `json:"heading"`
	Style   BracketStyle `json:"style"`
	Padding Padding      `json:"padding"`
	Rounds  []Round      `json:"rounds"`
}

// BracketStyle groups the bracket's palette-linked colors.
type BracketStyle struct {
	LineColor string `json:"line_color"`
	BoxColor  string `json:"box_color"`
	TextColor string `json:"text_color"`
}

// Round is one column of the bracket.
type Round struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
}

// ItemID implements Item.
func (r Round) ItemID() string { return r.ID }

// Match is one pairing inside a round.
type Match struct {
	ID     string `json:"id"`
	TeamA  string `json:"team_a"`
	TeamB  string `json:"team_b"`
	ScoreA int    `json:"score_a"`
	ScoreB int    `json:"score_b"`
}

// ItemID implements Item.
func (m Match) ItemID() string { return m.ID }

// NewRound builds a named round with the given number of empty matches.
func NewRound(name string, matches int) Round {
	r := Round{ID: NewItemID(), Name: name}
	for i := 0; i < matches; i++ {
		r.Matches = append(r.Matches, Match{ID: NewItemID(), TeamA: "TBD", TeamB: "TBD"})
	}
	return r
}

func defaultBracketSettings(pal palette.Palette) *BracketSettings {
	return &BracketSettings{
		Heading: "Playoff bracket",
		Style: BracketStyle{
			LineColor: pal.ButtonPrimary,
			BoxColor:  pal.CardBackground,
			TextColor: pal.BodyText,
		},
		Padding: Padding{Top: 64, Bottom: 64},
		Rounds: []Round{
			NewRound("Quarterfinals", 4),
			NewRound("Semifinals", 2),
			NewRound("Final", 1),
		},
	}
}

func (s *BracketSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.Style.LineColor, palette.RoleButtonPrimary, prev, next) || changed
	changed = syncColor(&s.Style.BoxColor, palette.RoleCardBackground, prev, next) || changed
	changed = syncColor(&s.Style.TextColor, palette.RoleBodyText, prev, next) || changed
	return changed
}

// RoundName suggests a label for the nth appended round.
func RoundName(n int) string {
	return fmt.Sprintf("Round %d", n)
}
