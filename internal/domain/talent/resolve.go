package talent

import (
	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// ResolveResult is the outcome of resolving a schedule's talent references.
// Dangling lists the external ids that could not be found in the roster;
// the matching references are passed through with an empty local id and must
// be treated as invalid by every later consumer.
type ResolveResult struct {
	Items    []model.ScheduleItem
	Dangling []string
}

// ResolveScheduleRefs walks the schedule items and replaces every talent
// reference that only carries an external id with a resolved reference to the
// matching roster item. References that already carry a local id pass through
// untouched. A reference with neither id is a caller bug and returns
// ErrRefMissingIDs.
func ResolveScheduleRefs(items []model.ScheduleItem, talent []model.TalentItem) (ResolveResult, error) {
	result := ResolveResult{Items: make([]model.ScheduleItem, len(items))}

	for i, item := range items {
		item = item.Clone()
		if item.IsSpeedrun() {
			if err := resolveRefs(item.CommentatorIDs, talent, &result); err != nil {
				return ResolveResult{}, err
			}
			for t := range item.Teams {
				if err := resolveRefs(item.Teams[t].PlayerIDs, talent, &result); err != nil {
					return ResolveResult{}, err
				}
			}
		} else {
			if err := resolveRefs(item.TalentIDs, talent, &result); err != nil {
				return ResolveResult{}, err
			}
		}
		result.Items[i] = item
	}

	return result, nil
}

func resolveRefs(refs []model.TalentRef, talent []model.TalentItem, result *ResolveResult) error {
	for i, ref := range refs {
		if ref.ID != "" {
			continue
		}
		if ref.ExternalID == "" {
			return ErrRefMissingIDs
		}
		found := findByExternalID(talent, ref.ExternalID)
		if found == nil {
			result.Dangling = append(result.Dangling, ref.ExternalID)
			continue
		}
		refs[i] = model.TalentRef{ID: found.ID, ExternalID: ref.ExternalID}
	}
	return nil
}
