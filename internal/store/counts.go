package store

import "github.com/bracketpress/bracketpress/internal/section"

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// SetGroupCount resizes the group-stage list. Growing appends fresh default
// groups sized by the current teams-per-group counter; shrinking truncates
// from the end, leaving earlier groups untouched. The count is clamped to
// the group-stage bounds.
func (s *Store) SetGroupCount(n int) bool {
	return s.Update(section.Groups, func(st *section.Settings) {
		g := st.Groups
		n = clamp(n, section.MinGroups, section.MaxGroups)
		for len(g.Groups) < n {
			g.Groups = append(g.Groups, section.NewGroup(len(g.Groups), g.TeamsPerGroup))
		}
		if len(g.Groups) > n {
			g.Groups = g.Groups[:n]
		}
		g.NumberOfGroups = n
	})
}

// SetTeamsPerGroup resizes every group's team list to the clamped count.
// Rows past the count are truncated from the end; new rows are fresh
// placeholder teams.
func (s *Store) SetTeamsPerGroup(n int) bool {
	return s.Update(section.Groups, func(st *section.Settings) {
		g := st.Groups
		n = clamp(n, section.MinTeamsPerGroup, section.MaxTeamsPerGroup)
		for gi := range g.Groups {
			teams := g.Groups[gi].Teams
			for len(teams) < n {
				teams = append(teams, section.NewGroupTeam(len(teams)))
			}
			if len(teams) > n {
				teams = teams[:n]
			}
			g.Groups[gi].Teams = teams
		}
		g.TeamsPerGroup = n
	})
}

// RemoveGroupTeam removes one team row from one group. The tracked
// teams-per-group counter then reports the minimum across groups: after
// independent per-group edits it is advisory display state, not an
// authoritative count.
func (s *Store) RemoveGroupTeam(groupID, teamID string) bool {
	removed := false
	s.Update(section.Groups, func(st *section.Settings) {
		g := st.Groups
		for gi := range g.Groups {
			if g.Groups[gi].ID != groupID {
				continue
			}
			before := len(g.Groups[gi].Teams)
			g.Groups[gi].Teams = section.RemoveItem(g.Groups[gi].Teams, teamID)
			removed = len(g.Groups[gi].Teams) != before
		}
		if removed {
			g.TeamsPerGroup = g.MinTeamsAcrossGroups()
		}
	})
	return removed
}

// SetTeamCount resizes the roster section's team list.
func (s *Store) SetTeamCount(n int) bool {
	return s.Update(section.Teams, func(st *section.Settings) {
		t := st.Teams
		n = clamp(n, section.MinTeams, section.MaxTeams)
		for len(t.Teams) < n {
			t.Teams = append(t.Teams, section.NewTeam(len(t.Teams), t.PlayersPerTeam))
		}
		if len(t.Teams) > n {
			t.Teams = t.Teams[:n]
		}
		t.NumberOfTeams = n
	})
}

// SetPlayersPerTeam resizes every roster to the clamped count.
func (s *Store) SetPlayersPerTeam(n int) bool {
	return s.Update(section.Teams, func(st *section.Settings) {
		t := st.Teams
		n = clamp(n, section.MinPlayersPerTeam, section.MaxPlayersPerTeam)
		for ti := range t.Teams {
			players := t.Teams[ti].Players
			for len(players) < n {
				players = append(players, section.NewPlayer(len(players)))
			}
			if len(players) > n {
				players = players[:n]
			}
			t.Teams[ti].Players = players
		}
		t.PlayersPerTeam = n
	})
}
