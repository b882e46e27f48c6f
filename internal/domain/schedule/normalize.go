package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/internal/domain/talent"
)

// NormalizeItem validates and cleans a manually edited schedule item before
// it replaces the stored one. Durations and dates must be valid ISO 8601.
// References to talent that no longer exists are filtered out, blank team ids
// are backfilled, and teams left without players are dropped. A speedrun must
// end up with at least one team.
func NormalizeItem(item model.ScheduleItem, roster []model.TalentItem) (model.ScheduleItem, error) {
	if item.ID == "" {
		return model.ScheduleItem{}, ErrMissingItemID
	}
	if err := model.ValidateDuration(item.Estimate); err != nil {
		return model.ScheduleItem{}, fmt.Errorf("invalid estimate: %w", err)
	}
	if err := model.ValidateDuration(item.SetupTime); err != nil {
		return model.ScheduleItem{}, fmt.Errorf("invalid setup time: %w", err)
	}
	if err := model.ValidateDate(item.ScheduledStartTime); err != nil {
		return model.ScheduleItem{}, fmt.Errorf("invalid scheduled start time: %w", err)
	}

	out := item.Clone()
	if out.IsSpeedrun() {
		out.CommentatorIDs = filterExisting(out.CommentatorIDs, roster)
		teams := make([]model.Team, 0, len(out.Teams))
		for _, team := range out.Teams {
			if team.ID == "" {
				team.ID = uuid.NewString()
			}
			team.PlayerIDs = filterExisting(team.PlayerIDs, roster)
			if len(team.PlayerIDs) > 0 {
				teams = append(teams, team)
			}
		}
		if len(teams) == 0 {
			return model.ScheduleItem{}, ErrNoPlayers
		}
		out.Teams = teams
	} else {
		out.TalentIDs = filterExisting(out.TalentIDs, roster)
	}
	return out, nil
}

func filterExisting(refs []model.TalentRef, roster []model.TalentItem) []model.TalentRef {
	out := make([]model.TalentRef, 0, len(refs))
	for _, ref := range refs {
		if talent.ItemExists(roster, ref.ID) {
			out = append(out, ref)
		}
	}
	return out
}
