package app

import (
	"context"
	"fmt"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/internal/domain/schedule"
	"github.com/SumOfBesties/besties-layout/internal/domain/talent"
)

// ActiveItem resolves the effectively active schedule item: the active run,
// or the earliest incomplete interstitial sitting before it.
func (s *Service) ActiveItem(ctx context.Context) *model.ScheduleItem {
	state := s.store.Load(ctx)
	return schedule.FindActiveItem(state.Schedule.Items, state.ActiveRunID)
}

// ItemAfter returns the first item after the given one, optionally filtered
// by type (empty means any).
func (s *Service) ItemAfter(ctx context.Context, id string, itemType model.ScheduleItemType) *model.ScheduleItem {
	return schedule.FindItemAfter(s.store.Load(ctx).Schedule.Items, id, itemType)
}

// ItemBefore returns the first item before the given one, optionally
// filtered by type (empty means any).
func (s *Service) ItemBefore(ctx context.Context, id string, itemType model.ScheduleItemType) *model.ScheduleItem {
	return schedule.FindItemBefore(s.store.Load(ctx).Schedule.Items, id, itemType)
}

// SetActiveRunByID makes the given speedrun the active run and repoints the
// next run after it.
func (s *Service) SetActiveRunByID(ctx context.Context, id string) error {
	state := s.store.Load(ctx)
	item := findItem(state.Schedule.Items, id)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if !item.IsSpeedrun() {
		return fmt.Errorf("%w: %s is type %s", ErrNotSpeedrun, id, item.Type)
	}
	state.ActiveRunID = item.ID
	repointNextRun(&state)
	return s.store.Commit(ctx, state)
}

// SetActiveRunByIndex makes the schedule item at the given position the
// active run.
func (s *Service) SetActiveRunByIndex(ctx context.Context, index int) error {
	state := s.store.Load(ctx)
	if index < 0 || index >= len(state.Schedule.Items) {
		return fmt.Errorf("%w: no schedule item at index %d", ErrItemNotFound, index)
	}
	return s.SetActiveRunByID(ctx, state.Schedule.Items[index].ID)
}

// SeekToNextRun advances the active run to the current next run.
func (s *Service) SeekToNextRun(ctx context.Context) error {
	state := s.store.Load(ctx)
	if state.NextRunID == "" {
		return ErrNoNextRun
	}
	state.ActiveRunID = state.NextRunID
	repointNextRun(&state)
	return s.store.Commit(ctx, state)
}

// SeekToPreviousRun moves the active run one speedrun backwards; the
// previously active run becomes the next run.
func (s *Service) SeekToPreviousRun(ctx context.Context) error {
	state := s.store.Load(ctx)
	previous := schedule.FindItemBefore(state.Schedule.Items, state.ActiveRunID, model.ItemTypeSpeedrun)
	if previous == nil {
		return ErrNoPreviousRun
	}
	state.NextRunID = state.ActiveRunID
	state.ActiveRunID = previous.ID
	return s.store.Commit(ctx, state)
}

// SetInterstitialCompleted flags a non-speedrun item as completed or not.
func (s *Service) SetInterstitialCompleted(ctx context.Context, id string, completed bool) error {
	state := s.store.Load(ctx)
	item := findItem(state.Schedule.Items, id)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if item.IsSpeedrun() {
		return fmt.Errorf("%w: %s", ErrNotInterstitial, id)
	}
	item.Completed = &completed
	return s.store.Commit(ctx, state)
}

// UpdateScheduleItem replaces a schedule item with a validated, normalized
// version of the given one. Dangling talent references are filtered out and
// blank team ids backfilled; see schedule.NormalizeItem.
func (s *Service) UpdateScheduleItem(ctx context.Context, item model.ScheduleItem) (model.ScheduleItem, error) {
	state := s.store.Load(ctx)
	normalized, err := schedule.NormalizeItem(item, state.Talent)
	if err != nil {
		return model.ScheduleItem{}, err
	}

	existing := findItem(state.Schedule.Items, normalized.ID)
	if existing == nil {
		return model.ScheduleItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, normalized.ID)
	}
	*existing = normalized
	repointNextRun(&state)

	if err := s.store.Commit(ctx, state); err != nil {
		return model.ScheduleItem{}, err
	}
	return normalized, nil
}

// UpdateTalentItems applies manual roster edits and commits the result.
func (s *Service) UpdateTalentItems(ctx context.Context, updates []model.TalentItem) error {
	state := s.store.Load(ctx)
	merged, err := talent.ApplyTalentUpdates(state.Talent, updates)
	if err != nil {
		return err
	}
	state.Talent = merged
	return s.store.Commit(ctx, state)
}

// refreshRunPointers activates the first speedrun when nothing is active yet
// and keeps the next-run pointer consistent with the item list.
func refreshRunPointers(state *model.State) {
	if state.ActiveRunID == "" || findItem(state.Schedule.Items, state.ActiveRunID) == nil {
		state.ActiveRunID = ""
		for _, item := range state.Schedule.Items {
			if item.IsSpeedrun() {
				state.ActiveRunID = item.ID
				break
			}
		}
	}
	repointNextRun(state)
}

func repointNextRun(state *model.State) {
	next := schedule.FindItemAfter(state.Schedule.Items, state.ActiveRunID, model.ItemTypeSpeedrun)
	if next == nil {
		state.NextRunID = ""
		return
	}
	state.NextRunID = next.ID
}

func findItem(items []model.ScheduleItem, id string) *model.ScheduleItem {
	if id == "" {
		return nil
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
