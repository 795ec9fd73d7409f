package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketpress/bracketpress/internal/section"
)

func TestSetGroupCountGrowsWithFreshGroups(t *testing.T) {
	s := newTestStore(t)
	before := s.Settings(section.Groups).Groups
	require.Len(t, before.Groups, 2)
	firstID := before.Groups[0].ID

	s.SetGroupCount(4)

	g := s.Settings(section.Groups).Groups
	require.Len(t, g.Groups, 4)
	assert.Equal(t, 4, g.NumberOfGroups)
	assert.Equal(t, firstID, g.Groups[0].ID, "existing groups keep ids")
	assert.Equal(t, "Group C", g.Groups[2].Name)
	assert.Len(t, g.Groups[2].Teams, g.TeamsPerGroup)
	assert.NotEqual(t, g.Groups[2].ID, g.Groups[3].ID)
}

func TestSetGroupCountShrinksFromEnd(t *testing.T) {
	s := newTestStore(t)
	s.SetGroupCount(4)
	kept := s.Settings(section.Groups).Groups.Groups[:2]
	keptIDs := []string{kept[0].ID, kept[1].ID}

	s.SetGroupCount(2)

	g := s.Settings(section.Groups).Groups
	require.Len(t, g.Groups, 2)
	assert.Equal(t, keptIDs[0], g.Groups[0].ID)
	assert.Equal(t, keptIDs[1], g.Groups[1].ID)
}

func TestGroupCountClamped(t *testing.T) {
	s := newTestStore(t)

	s.SetGroupCount(0)
	assert.Equal(t, section.MinGroups, s.Settings(section.Groups).Groups.NumberOfGroups)

	s.SetGroupCount(99)
	assert.Equal(t, section.MaxGroups, s.Settings(section.Groups).Groups.NumberOfGroups)
}

func TestSetTeamsPerGroupResizesEveryGroup(t *testing.T) {
	s := newTestStore(t)
	before := s.Settings(section.Groups).Groups
	surviving := before.Groups[0].Teams[0].ID

	s.SetTeamsPerGroup(6)

	g := s.Settings(section.Groups).Groups
	assert.Equal(t, 6, g.TeamsPerGroup)
	for _, grp := range g.Groups {
		assert.Len(t, grp.Teams, 6)
	}
	assert.Equal(t, surviving, g.Groups[0].Teams[0].ID)

	s.SetTeamsPerGroup(2)
	g = s.Settings(section.Groups).Groups
	for _, grp := range g.Groups {
		assert.Len(t, grp.Teams, 2)
	}
	assert.Equal(t, surviving, g.Groups[0].Teams[0].ID, "shrink truncates from the end")
}

func TestRemoveGroupTeamTracksAdvisoryMinimum(t *testing.T) {
	s := newTestStore(t)
	g := s.Settings(section.Groups).Groups
	groupID := g.Groups[0].ID
	teamID := g.Groups[0].Teams[3].ID

	require.True(t, s.RemoveGroupTeam(groupID, teamID))

	g = s.Settings(section.Groups).Groups
	assert.Len(t, g.Groups[0].Teams, 3)
	assert.Len(t, g.Groups[1].Teams, 4, "other groups untouched")
	assert.Equal(t, 3, g.TeamsPerGroup, "counter reports the minimum across groups")

	assert.False(t, s.RemoveGroupTeam(groupID, "unknown"))
}

func TestSetTeamCountAndPlayers(t *testing.T) {
	s := newTestStore(t)

	s.SetTeamCount(6)
	teams := s.Settings(section.Teams).Teams
	require.Len(t, teams.Teams, 6)
	assert.Len(t, teams.Teams[5].Players, teams.PlayersPerTeam)

	s.SetPlayersPerTeam(2)
	teams = s.Settings(section.Teams).Teams
	for _, tm := range teams.Teams {
		assert.Len(t, tm.Players, 2)
	}

	s.SetTeamCount(1)
	assert.Equal(t, section.MinTeams, s.Settings(section.Teams).Teams.NumberOfTeams)

	s.SetPlayersPerTeam(99)
	assert.Equal(t, section.MaxPlayersPerTeam, s.Settings(section.Teams).Teams.PlayersPerTeam)
}
