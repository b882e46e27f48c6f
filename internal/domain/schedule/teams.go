package schedule

import (
	"github.com/google/uuid"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// reconcileTeams matches incoming teams to existing teams by player overlap.
// The upstream source has no durable team identity and re-derives partitions
// on every export (sometimes one row per player, sometimes pre-grouped), so
// shared player membership is the only signal available to keep a team's id
// and manually assigned name across re-imports.
//
// Teams are processed in incoming order. A new team whose players all map to
// the same old team (or to none of them while at least one maps) continues
// that old team; several such rows collapse into the first occurrence. A new
// team whose players map to more than one old team, or to none at all, is an
// irreducibly new grouping and gets a fresh id.
//
// Note: players that were added locally rather than through the schedule
// source are dropped here, because the incoming rows replace each team's
// player list. Known limitation.
func reconcileTeams(oldTeams, newTeams []model.Team) []model.Team {
	if len(oldTeams) == 1 && len(newTeams) == 1 {
		return []model.Team{{
			ID:        oldTeams[0].ID,
			Name:      oldTeams[0].Name,
			PlayerIDs: cloneRefs(newTeams[0].PlayerIDs),
		}}
	}

	result := make([]model.Team, 0, len(newTeams))
	for _, newTeam := range newTeams {
		matches := matchingOldTeams(oldTeams, newTeam)

		if len(matches) == 1 || distinctTeamIDs(matches) == 1 {
			// All of this team's players either had no previous team or
			// played for the same one: continue that team.
			old := matches[0]
			if idx := indexOfTeam(result, old.ID); idx >= 0 {
				result[idx].PlayerIDs = append(result[idx].PlayerIDs, cloneRefs(newTeam.PlayerIDs)...)
				continue
			}
			name := newTeam.Name
			if name == "" {
				name = old.Name
			}
			result = append(result, model.Team{
				ID:        old.ID,
				Name:      name,
				PlayerIDs: cloneRefs(newTeam.PlayerIDs),
			})
			continue
		}

		// Players were re-partitioned across previously different teams, or
		// none of them is known: treat as a brand-new grouping.
		fresh := newTeam.Clone()
		fresh.ID = uuid.NewString()
		result = append(result, fresh)
	}

	return result
}

// matchingOldTeams returns, per player of newTeam, the old team that player
// belonged to. Players with no previous team contribute nothing.
func matchingOldTeams(oldTeams []model.Team, newTeam model.Team) []model.Team {
	var matches []model.Team
	for _, player := range newTeam.PlayerIDs {
		for _, old := range oldTeams {
			if teamHasPlayer(old, player.ID) {
				matches = append(matches, old)
				break
			}
		}
	}
	return matches
}

func teamHasPlayer(team model.Team, playerID string) bool {
	for _, ref := range team.PlayerIDs {
		if ref.ID == playerID {
			return true
		}
	}
	return false
}

func distinctTeamIDs(teams []model.Team) int {
	ids := make(map[string]struct{}, len(teams))
	for _, team := range teams {
		ids[team.ID] = struct{}{}
	}
	return len(ids)
}

func indexOfTeam(teams []model.Team, id string) int {
	for i := range teams {
		if teams[i].ID == id {
			return i
		}
	}
	return -1
}
