// Package schedule implements reconciliation of imported schedule items
// against the locally curated schedule, and read-side lookups over the
// merged item list.
package schedule

import (
	"github.com/google/uuid"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// Stats reports what a schedule merge did, for logging and metrics.
type Stats struct {
	New     int
	Updated int
}

// MergeItems reconciles a fully talent-resolved incoming item list against
// the existing schedule. Items are correlated by non-empty external id.
// The incoming list is authoritative for which items exist and in what order:
// unmatched existing items are dropped and the output follows incoming order.
// Matched items keep their local id and are merged field by field; see
// mergeItem for the special cases.
func MergeItems(existing, incoming []model.ScheduleItem) ([]model.ScheduleItem, Stats) {
	var stats Stats
	merged := make([]model.ScheduleItem, 0, len(incoming))

	for _, in := range incoming {
		found := findByExternalID(existing, in.ExternalID)
		if found == nil {
			item := in.Clone()
			item.ID = uuid.NewString()
			generateTeamIDs(item.Teams)
			merged = append(merged, item)
			stats.New++
			continue
		}
		merged = append(merged, mergeItem(*found, in))
		stats.Updated++
	}

	return merged, stats
}

// GenerateIDs assigns fresh local ids to every item, and to every team of
// speedrun items. Used when importing a schedule for the first time, where
// nothing can be correlated.
func GenerateIDs(items []model.ScheduleItem) []model.ScheduleItem {
	out := make([]model.ScheduleItem, len(items))
	for i, item := range items {
		item = item.Clone()
		item.ID = uuid.NewString()
		if item.IsSpeedrun() {
			for t := range item.Teams {
				item.Teams[t].ID = uuid.NewString()
			}
		}
		out[i] = item
	}
	return out
}

// mergeItem overlays the incoming item onto the existing one. The general
// rule is that the incoming value wins unless it is empty, with exceptions
// that are business rules rather than merge mechanics:
//
//   - the local id always comes from the existing item
//   - commentator assignments are never overwritten: no schedule source
//     supplies them, so incoming data is always absent-equivalent here
//   - teams go through player-overlap reconciliation to keep team identity
//   - plain reference lists are replaced outright, not merged row by row
//   - cached title-derived lookups survive only while the title is unchanged
func mergeItem(existing, incoming model.ScheduleItem) model.ScheduleItem {
	out := existing.Clone()

	out.ExternalID = overlay(existing.ExternalID, incoming.ExternalID)
	if incoming.Type != "" {
		out.Type = incoming.Type
	}
	out.Title = overlay(existing.Title, incoming.Title)
	out.Estimate = overlay(existing.Estimate, incoming.Estimate)
	out.SetupTime = overlay(existing.SetupTime, incoming.SetupTime)
	out.ScheduledStartTime = overlay(existing.ScheduledStartTime, incoming.ScheduledStartTime)
	out.Category = overlay(existing.Category, incoming.Category)
	out.System = overlay(existing.System, incoming.System)
	out.Relay = incoming.Relay
	out.Emulated = incoming.Emulated

	switch {
	case incoming.Teams == nil:
		// keep existing teams
	case len(existing.Teams) == 0:
		out.Teams = make([]model.Team, len(incoming.Teams))
		for i, team := range incoming.Teams {
			out.Teams[i] = team.Clone()
		}
		generateTeamIDs(out.Teams)
	default:
		out.Teams = reconcileTeams(existing.Teams, incoming.Teams)
	}

	if incoming.TalentIDs != nil {
		out.TalentIDs = cloneRefs(incoming.TalentIDs)
	}
	if incoming.Completed != nil {
		completed := *incoming.Completed
		out.Completed = &completed
	}

	titleChanged := incoming.Title != "" && incoming.Title != existing.Title
	switch {
	case incoming.TwitchCategory != nil:
		category := *incoming.TwitchCategory
		out.TwitchCategory = &category
	case titleChanged:
		out.TwitchCategory = nil
	}
	switch {
	case incoming.VideoGameReleaseYear != "":
		out.VideoGameReleaseYear = incoming.VideoGameReleaseYear
	case titleChanged:
		out.VideoGameReleaseYear = ""
	}

	return out
}

func overlay(existing, incoming string) string {
	if incoming == "" {
		return existing
	}
	return incoming
}

func generateTeamIDs(teams []model.Team) {
	for i := range teams {
		if teams[i].ID == "" {
			teams[i].ID = uuid.NewString()
		}
	}
}

func findByExternalID(items []model.ScheduleItem, externalID string) *model.ScheduleItem {
	if externalID == "" {
		return nil
	}
	for i := range items {
		if items[i].ExternalID == externalID {
			return &items[i]
		}
	}
	return nil
}

func cloneRefs(refs []model.TalentRef) []model.TalentRef {
	out := make([]model.TalentRef, len(refs))
	copy(out, refs)
	return out
}
