package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/adapters/mq/queue"
	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/internal/domain/schedule"
	"github.com/SumOfBesties/besties-layout/internal/domain/talent"
	"github.com/SumOfBesties/besties-layout/pkg/logger"
	"github.com/SumOfBesties/besties-layout/pkg/metrics"
)

// RunImport executes one schedule import end to end: fetch the raw payload,
// merge the talent roster, resolve schedule talent references, reconcile the
// schedule, fill in missing category lookups and commit the whole result in
// one transaction. Invoked by the queue runner, never concurrently.
func (s *Service) RunImport(ctx context.Context, req queue.ImportRequest) error {
	if s.source == nil {
		return ErrNoSource
	}
	start := time.Now()

	payload, err := s.source.FetchScheduleAndTalent(ctx, req.Slug)
	if err != nil {
		metrics.RecordImportFailed()
		return fmt.Errorf("fetching schedule %q: %w", req.Slug, err)
	}

	state := s.store.Load(ctx)

	mergedTalent, talentStats := talent.MergeNewTalentList(state.Talent, payload.Talent)
	metrics.RecordTalentMerge(talentStats.New, talentStats.Updated, talentStats.Unmodified)
	s.logger.Info(ctx, "merged new talent list",
		logger.Int("new", talentStats.New),
		logger.Int("updated", talentStats.Updated),
		logger.Int("unmodified", talentStats.Unmodified),
		logger.Int("total", len(mergedTalent)),
	)

	resolved, err := talent.ResolveScheduleRefs(payload.Schedule.Items, mergedTalent)
	if err != nil {
		metrics.RecordImportFailed()
		return fmt.Errorf("resolving talent references: %w", err)
	}
	if len(resolved.Dangling) > 0 {
		metrics.RecordDanglingRefs(len(resolved.Dangling))
		for _, externalID := range resolved.Dangling {
			s.logger.Warn(ctx, "schedule references talent missing from talent list",
				logger.String("externalId", externalID),
			)
		}
	}

	var items []model.ScheduleItem
	var scheduleStats schedule.Stats
	if state.Schedule.ID == req.Slug && !req.ForceNew {
		items, scheduleStats = schedule.MergeItems(state.Schedule.Items, resolved.Items)
	} else {
		items = schedule.GenerateIDs(resolved.Items)
		scheduleStats = schedule.Stats{New: len(items)}
	}
	metrics.RecordScheduleMerge(scheduleStats.New, scheduleStats.Updated)
	s.logger.Info(ctx, "merged new schedule",
		logger.String("slug", req.Slug),
		logger.Int("new", scheduleStats.New),
		logger.Int("updated", scheduleStats.Updated),
		logger.Int("total", len(items)),
	)

	s.fillCategories(ctx, items)

	source := payload.Schedule.Source
	if source == "" {
		source = model.SourceOengus
	}
	state.Talent = mergedTalent
	state.Schedule = model.Schedule{ID: req.Slug, Source: source, Items: items}
	refreshRunPointers(&state)

	if err := s.store.Commit(ctx, state); err != nil {
		metrics.RecordImportFailed()
		return fmt.Errorf("committing merged state: %w", err)
	}

	metrics.RecordImportCompleted(float64(time.Since(start).Milliseconds()))
	return nil
}

// fillCategories looks up streaming categories for speedruns whose cached
// lookup was cleared (or never set). Lookups for distinct titles fan out
// concurrently; failures are logged per title and never abort the import.
func (s *Service) fillCategories(ctx context.Context, items []model.ScheduleItem) {
	if s.categories == nil {
		return
	}

	type lookupKey struct {
		title  string
		system string
	}
	type lookupResult struct {
		category    *model.TwitchCategory
		releaseYear string
	}

	pending := make(map[lookupKey]struct{})
	for _, item := range items {
		if item.IsSpeedrun() && item.TwitchCategory == nil && item.Title != "" {
			pending[lookupKey{item.Title, item.System}] = struct{}{}
		}
	}
	if len(pending) == 0 {
		return
	}

	var (
		resultsMu sync.Mutex
		results   = make(map[lookupKey]lookupResult)
		wg        sync.WaitGroup
		sem       = make(chan struct{}, s.categoryConcurrency)
	)
	for key := range pending {
		wg.Add(1)
		sem <- struct{}{}
		go func(key lookupKey) {
			defer wg.Done()
			defer func() { <-sem }()

			metrics.RecordCategoryLookup()
			category, releaseYear, err := s.categories.Resolve(ctx, key.title, key.system)
			if err != nil {
				metrics.RecordCategoryLookupError()
				s.logger.Warn(ctx, "could not find streaming category for game",
					logger.String("title", key.title),
					logger.Error(err),
				)
				return
			}
			if category == nil {
				return
			}
			resultsMu.Lock()
			results[key] = lookupResult{category: category, releaseYear: releaseYear}
			resultsMu.Unlock()
		}(key)
	}
	wg.Wait()

	for i := range items {
		if !items[i].IsSpeedrun() || items[i].TwitchCategory != nil {
			continue
		}
		if result, ok := results[lookupKey{items[i].Title, items[i].System}]; ok {
			category := *result.category
			items[i].TwitchCategory = &category
			if items[i].VideoGameReleaseYear == "" {
				items[i].VideoGameReleaseYear = result.releaseYear
			}
		}
	}
}
