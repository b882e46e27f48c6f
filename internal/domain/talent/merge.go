// Package talent implements reconciliation of the talent roster against
// freshly imported data, and resolution of schedule talent references to
// local ids.
package talent

import (
	"github.com/google/uuid"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// Stats reports what a roster merge did, for logging and metrics.
type Stats struct {
	New        int
	Updated    int
	Unmodified int
}

// MergeNewTalentList reconciles an incoming talent list against the existing
// roster. Items are correlated by external id; non-empty comparison only, so
// entries without one on either side never match. Matches keep their local id
// and are field-merged with the incoming value winning unless it is empty.
// Unmatched incoming items are appended with a fresh local id. Existing items
// with no correlate are appended unchanged after everything else: previously
// known talent is never dropped by an import.
func MergeNewTalentList(existing, incoming []model.TalentItem) ([]model.TalentItem, Stats) {
	var stats Stats
	merged := make([]model.TalentItem, 0, len(incoming))

	for _, in := range incoming {
		found := findByExternalID(existing, in.ExternalID)
		if found == nil {
			in.ID = uuid.NewString()
			merged = append(merged, in)
			stats.New++
			continue
		}
		merged = append(merged, mergeTalentItem(*found, in))
		stats.Updated++
	}

	for _, ex := range existing {
		if !containsID(merged, ex.ID) {
			merged = append(merged, ex)
			stats.Unmodified++
		}
	}

	return merged, stats
}

// ItemExists reports whether the roster contains an item with the given local
// id. A blank id never matches; dangling references stay invalid.
func ItemExists(talent []model.TalentItem, id string) bool {
	if id == "" {
		return false
	}
	for _, item := range talent {
		if item.ID == id {
			return true
		}
	}
	return false
}

// mergeTalentItem overlays incoming fields onto the existing item. The local
// id always comes from the existing item; empty incoming values keep the
// existing value so sparse updates cannot erase richer data.
func mergeTalentItem(existing, incoming model.TalentItem) model.TalentItem {
	out := existing
	out.Name = overlay(existing.Name, incoming.Name)
	out.Pronouns = overlay(existing.Pronouns, incoming.Pronouns)
	out.CountryCode = overlay(existing.CountryCode, incoming.CountryCode)
	out.ExternalID = overlay(existing.ExternalID, incoming.ExternalID)
	out.Socials = model.Socials{
		Twitch:      overlay(existing.Socials.Twitch, incoming.Socials.Twitch),
		YouTube:     overlay(existing.Socials.YouTube, incoming.Socials.YouTube),
		Twitter:     overlay(existing.Socials.Twitter, incoming.Socials.Twitter),
		Speedruncom: overlay(existing.Socials.Speedruncom, incoming.Socials.Speedruncom),
	}
	return out
}

func overlay(existing, incoming string) string {
	if incoming == "" {
		return existing
	}
	return incoming
}

func findByExternalID(talent []model.TalentItem, externalID string) *model.TalentItem {
	if externalID == "" {
		return nil
	}
	for i := range talent {
		if talent[i].ExternalID == externalID {
			return &talent[i]
		}
	}
	return nil
}

func containsID(talent []model.TalentItem, id string) bool {
	for _, item := range talent {
		if item.ID == id {
			return true
		}
	}
	return false
}
