package section

import (
	"fmt"

	"github.com/bracketpress/bracketpress/internal/palette"
)

// Count bounds for the team roster resize controls.
const (
	MinTeams          = 2
	MaxTeams          = 32
	MinPlayersPerTeam = 1
	MaxPlayersPerTeam = 10
)

// TeamsSettings configures the team roster section.
type TeamsSettings struct {
	Layout         string  `json:"layout"`
	Heading        string  `json:"heading"`
	NumberOfTeams  int     `json:"number_of_teams"`
	PlayersPerTeam int     `json:"players_per_team"`
	CardColor      string  `json:"card_color"`
	NameColor      string  `json:"name_color"`
	Padding        Padding `json:"padding"`
	Teams          []Team  `json:"teams"`
}

// Team is one roster card.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Logo    string   `json:"logo"`
	Players []Player `json:"players"`
}

// ItemID implements Item.
func (t Team) ItemID() string { return t.ID }

// Player is one roster entry.
type Player struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// ItemID implements Item.
func (p Player) ItemID() string { return p.ID }

// NewTeam builds a placeholder team with the given roster size.
func NewTeam(index, players int) Team {
	t := Team{ID: NewItemID(), Name: fmt.Sprintf("Team %d", index+1)}
	for i := 0; i < players; i++ {
		t.Players = append(t.Players, NewPlayer(i))
	}
	return t
}

// NewPlayer builds one placeholder roster entry.
func NewPlayer(index int) Player {
	return Player{ID: NewItemID(), Nickname: fmt.Sprintf("Player %d", index+1)}
}

func defaultTeamsSettings(pal palette.Palette) *TeamsSettings {
	s := &TeamsSettings{
		Layout:         "grid",
		Heading:        "Teams",
		NumberOfTeams:  4,
		PlayersPerTeam: 5,
		CardColor:      pal.CardBackground,
		NameColor:      pal.Heading,
		Padding:        Padding{Top: 64, Bottom: 64},
	}
	for i := 0; i < s.NumberOfTeams; i++ {
		s.Teams = append(s.Teams, NewTeam(i, s.PlayersPerTeam))
	}
	return s
}

func (s *TeamsSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.CardColor, palette.RoleCardBackground, prev, next) || changed
	changed = syncColor(&s.NameColor, palette.RoleHeading, prev, next) || changed
	return changed
}

var teamsVariants = []Variant{
	{Name: "grid", Overrides: nil},
	{Name: "list", Overrides: nil},
	{Name: "carousel", Overrides: nil},
}
