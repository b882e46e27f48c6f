package talent

import (
	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// ApplyTalentUpdates applies manual roster edits. Every update must carry a
// local id; known ids are replaced wholesale and unknown ids are appended.
// Returns ErrMissingID if any update has a blank id.
func ApplyTalentUpdates(existing, updates []model.TalentItem) ([]model.TalentItem, error) {
	for _, update := range updates {
		if update.ID == "" {
			return nil, ErrMissingID
		}
	}

	out := model.CloneTalent(existing)
	for _, update := range updates {
		replaced := false
		for i := range out {
			if out[i].ID == update.ID {
				out[i] = update
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, update)
		}
	}
	return out, nil
}
