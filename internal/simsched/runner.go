package simsched

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
	"github.com/SumOfBesties/besties-layout/pkg/logger"
)

// File permission constants.
const (
	payloadFilePermission = 0600
	importPollInterval    = 200 * time.Millisecond
	importPollTimeout     = 10 * time.Second
)

// Run drives the simulation: write a synthetic payload, trigger an import,
// wait for the service to pick it up, verify identity stability, mutate the
// payload and repeat.
func Run(ctx context.Context, config *Config) error {
	log := logger.Get().Named("simsched")
	stats := &Stats{StartTime: time.Now()}
	client := newHTTPClient(config.BaseURL, config.Timeout)

	payload := GeneratePayload(config)
	stats.TalentGenerated = len(payload.Talent)

	// externalId -> local id, captured on the first round
	identities := make(map[string]string)

	for round := 1; round <= config.Rounds; round++ {
		if round > 1 {
			payload = MutatePayload(payload)
		}
		stats.ItemsGenerated += len(payload.Schedule.Items)

		if err := writePayload(config.PayloadFile, payload); err != nil {
			return err
		}

		accepted, err := client.TriggerImport(ctx, config.Slug, false)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		if !accepted {
			stats.ImportsRejected++
			log.Warn(ctx, "import rejected, skipping round", logger.Int("round", round))
			continue
		}
		stats.ImportsAccepted++

		schedule, err := waitForImport(ctx, client, len(payload.Schedule.Items))
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		verifyIdentities(ctx, log, schedule, identities, stats)
		stats.RoundsCompleted++
		log.Info(ctx, "round completed",
			logger.Int("round", round),
			logger.Int("items", len(schedule.Items)),
		)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	report(ctx, log, config, stats)

	if stats.BrokenIdentities > 0 {
		return fmt.Errorf("%d schedule items changed local id across imports", stats.BrokenIdentities)
	}
	return nil
}

// writePayload stores the payload where the service's file source reads it.
func writePayload(path string, payload model.RawPayload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	if err := os.WriteFile(path, data, payloadFilePermission); err != nil {
		return fmt.Errorf("failed to write payload file: %w", err)
	}
	return nil
}

// waitForImport polls the schedule until the imported item count shows up.
func waitForImport(ctx context.Context, client *HTTPClient, wantItems int) (model.Schedule, error) {
	deadline := time.Now().Add(importPollTimeout)
	for {
		schedule, err := client.FetchSchedule(ctx)
		if err == nil && len(schedule.Items) == wantItems {
			return schedule, nil
		}
		if time.Now().After(deadline) {
			if err != nil {
				return model.Schedule{}, fmt.Errorf("import did not land: %w", err)
			}
			return model.Schedule{}, fmt.Errorf("import did not land: have %d items, want %d", len(schedule.Items), wantItems)
		}
		select {
		case <-ctx.Done():
			return model.Schedule{}, fmt.Errorf("context cancelled while waiting for import: %w", ctx.Err())
		case <-time.After(importPollInterval):
		}
	}
}

// verifyIdentities checks that items keep their local id across imports.
func verifyIdentities(ctx context.Context, log logger.Logger, schedule model.Schedule, identities map[string]string, stats *Stats) {
	for _, item := range schedule.Items {
		if item.ExternalID == "" {
			continue
		}
		known, seen := identities[item.ExternalID]
		if !seen {
			identities[item.ExternalID] = item.ID
			continue
		}
		if known == item.ID {
			stats.StableIdentities++
			continue
		}
		stats.BrokenIdentities++
		log.Error(ctx, "schedule item changed local id",
			logger.String("externalId", item.ExternalID),
			logger.String("was", known),
			logger.String("now", item.ID),
		)
	}
}

func report(ctx context.Context, log logger.Logger, config *Config, stats *Stats) {
	log.Info(ctx, "simulation finished",
		logger.String("slug", config.Slug),
		logger.Int("rounds", stats.RoundsCompleted),
		logger.Int("importsAccepted", stats.ImportsAccepted),
		logger.Int("importsRejected", stats.ImportsRejected),
		logger.Int("stableIdentities", stats.StableIdentities),
		logger.Int("brokenIdentities", stats.BrokenIdentities),
		logger.String("duration", stats.Duration.String()),
	)
}
