package schedule

import (
	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// FindActiveItem resolves which schedule item the broadcast should currently
// sit on, given the id of the active run. If any incomplete interstitials
// precede the active run in the contiguous block since the last speedrun, the
// earliest of them is the effectively active item: the broadcast must not skip
// a still-pending interstitial. Returns nil when activeID is blank or not in
// the list.
func FindActiveItem(items []model.ScheduleItem, activeID string) *model.ScheduleItem {
	if activeID == "" {
		return nil
	}
	for _, interstitial := range InterstitialsBefore(items, activeID) {
		if !interstitial.IsCompleted() {
			item := interstitial.Clone()
			return &item
		}
	}
	return findByID(items, activeID)
}

// InterstitialsBefore returns the interstitials immediately preceding the
// given item, in list order. The scan walks backwards and stops at the first
// speedrun: interstitials only count as "before" within the contiguous block
// since the last run.
func InterstitialsBefore(items []model.ScheduleItem, id string) []model.ScheduleItem {
	idx := indexOfItem(items, id)
	if idx == -1 {
		return nil
	}
	var reversed []model.ScheduleItem
	for i := idx - 1; i >= 0; i-- {
		if items[i].IsSpeedrun() {
			break
		}
		reversed = append(reversed, items[i].Clone())
	}
	result := make([]model.ScheduleItem, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		result = append(result, reversed[i])
	}
	return result
}

// FindItemAfter returns the first item after the given one matching itemType,
// or any item when itemType is empty. Returns nil when the id is not found or
// nothing qualifies.
func FindItemAfter(items []model.ScheduleItem, id string, itemType model.ScheduleItemType) *model.ScheduleItem {
	idx := indexOfItem(items, id)
	if idx == -1 {
		return nil
	}
	for i := idx + 1; i < len(items); i++ {
		if itemType == "" || items[i].Type == itemType {
			item := items[i].Clone()
			return &item
		}
	}
	return nil
}

// FindItemBefore returns the first item before the given one matching
// itemType, or any item when itemType is empty. Returns nil when the id is
// not found or nothing qualifies.
func FindItemBefore(items []model.ScheduleItem, id string, itemType model.ScheduleItemType) *model.ScheduleItem {
	idx := indexOfItem(items, id)
	if idx <= 0 {
		return nil
	}
	for i := idx - 1; i >= 0; i-- {
		if itemType == "" || items[i].Type == itemType {
			item := items[i].Clone()
			return &item
		}
	}
	return nil
}

func findByID(items []model.ScheduleItem, id string) *model.ScheduleItem {
	idx := indexOfItem(items, id)
	if idx == -1 {
		return nil
	}
	item := items[idx].Clone()
	return &item
}

func indexOfItem(items []model.ScheduleItem, id string) int {
	if id == "" {
		return -1
	}
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
