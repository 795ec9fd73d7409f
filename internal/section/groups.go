package section

import (
	"fmt"

	"github.com/bracketpress/bracketpress/internal/palette"
)

// Count bounds for the group stage resize controls.
const (
	MinGroups        = 1
	MaxGroups        = 8
	MinTeamsPerGroup = 2
	MaxTeamsPerGroup = 8
)

// GroupsSettings configures the group-stage standings section.
type GroupsSettings struct {
	Heading        string  `json:"heading"`
	NumberOfGroups int     `json:"number_of_groups"`
	TeamsPerGroup  int     `json:"teams_per_group"`
	HeaderColor    string  `json:"header_color"`
	StripeColor    string  `json:"stripe_color"`
	Padding        Padding `json:"padding"`
	Groups         []Group `json:"groups"`
}

// Group is one standings table.
type Group struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Teams []GroupTeam `json:"teams"`
}

// ItemID implements Item.
func (g Group) ItemID() string { return g.ID }

// GroupTeam is one standings row.
type GroupTeam struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
	Lost   int    `json:"lost"`
	Points int    `json:"points"`
}

// ItemID implements Item.
func (t GroupTeam) ItemID() string { return t.ID }

// NewGroup builds a lettered group with the given number of placeholder teams.
func NewGroup(index, teams int) Group {
	g := Group{ID: NewItemID(), Name: GroupName(index)}
	for i := 0; i < teams; i++ {
		g.Teams = append(g.Teams, NewGroupTeam(i))
	}
	return g
}

// NewGroupTeam builds one placeholder standings row.
func NewGroupTeam(index int) GroupTeam {
	return GroupTeam{ID: NewItemID(), Name: fmt.Sprintf("Team %d", index+1)}
}

// GroupName labels groups A, B, C... falling back to a number past Z.
func GroupName(index int) string {
	if index >= 0 && index < 26 {
		return fmt.Sprintf("Group %c", 'A'+index)
	}
	return fmt.Sprintf("Group %d", index+1)
}

func defaultGroupsSettings(pal palette.Palette) *GroupsSettings {
	s := &GroupsSettings{
		Heading:        "Group stage",
		NumberOfGroups: 2,
		TeamsPerGroup:  4,
		HeaderColor:    pal.AccentSoft,
		StripeColor:    pal.TableStripe,
		Padding:        Padding{Top: 64, Bottom: 64},
	}
	for i := 0; i < s.NumberOfGroups; i++ {
		s.Groups = append(s.Groups, NewGroup(i, s.TeamsPerGroup))
	}
	return s
}

func (s *GroupsSettings) syncPalette(prev, next palette.Palette) bool {
	changed := false
	changed = syncColor(&s.HeaderColor, palette.RoleAccentSoft, prev, next) || changed
	changed = syncColor(&s.StripeColor, palette.RoleTableStripe, prev, next) || changed
	return changed
}

// MinTeamsAcrossGroups returns the smallest team count across all groups.
// The tracked TeamsPerGroup is advisory: after per-group edits it reports
// this minimum rather than any authoritative count.
func (s *GroupsSettings) MinTeamsAcrossGroups() int {
	if len(s.Groups) == 0 {
		return 0
	}
	minCount := len(s.Groups[0].Teams)
	for _, g := range s.Groups[1:] {
		if len(g.Teams) < minCount {
			minCount = len(g.Teams)
		}
	}
	return minCount
}
