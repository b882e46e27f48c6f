package simsched

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// Pools the generator draws from.
var (
	firstNames = []string{"Alex", "Sam", "Jordan", "Robin", "Casey", "Quinn", "Morgan", "Riley", "Avery", "Taylor"}
	gameTitles = []string{
		"Crystal Caverns", "Hyper Drift", "Moon Temple", "Pixel Quest", "Star Salvage",
		"Turbo Gardens", "Void Runner", "Clockwork Keep", "Neon Abyss", "Frost Peak",
	}
	systems   = []string{"PC", "SNES", "N64", "PS2", "GBA", "Switch"}
	estimates = []string{"PT20M", "PT25M", "PT30M", "PT45M", "PT1H", "PT1H30M"}
	pronouns  = []string{"she/her", "he/him", "they/them", ""}
)

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func pick(pool []string) string {
	return pool[randomInt(len(pool))]
}

// GeneratePayload builds a synthetic raw payload: a talent pool plus an
// alternating schedule of speedruns and interstitials. All talent references
// carry external ids only, matching what a real upstream export provides.
func GeneratePayload(config *Config) model.RawPayload {
	talent := make([]model.TalentItem, config.TalentCount)
	for i := range talent {
		talent[i] = model.TalentItem{
			ExternalID:  fmt.Sprintf("ext-talent-%d", i),
			Name:        fmt.Sprintf("%s%d", pick(firstNames), i),
			Pronouns:    pick(pronouns),
			CountryCode: pick([]string{"us", "de", "jp", "se", "br"}),
		}
	}

	start := time.Now().UTC().Truncate(time.Hour)
	items := make([]model.ScheduleItem, 0, config.Speedruns+config.Interstitials)
	for i := 0; i < config.Speedruns; i++ {
		items = append(items, model.ScheduleItem{
			ExternalID:         fmt.Sprintf("ext-run-%d", i),
			Type:               model.ItemTypeSpeedrun,
			Title:              pick(gameTitles),
			Estimate:           pick(estimates),
			SetupTime:          "PT10M",
			ScheduledStartTime: start.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			System:             pick(systems),
			Teams:              randomTeams(config, i),
		})
		if i < config.Interstitials {
			items = append(items, model.ScheduleItem{
				ExternalID: fmt.Sprintf("ext-break-%d", i),
				Type:       model.ItemTypeOther,
				Title:      "Intermission",
				Estimate:   "PT15M",
				TalentIDs:  []model.TalentRef{{ExternalID: fmt.Sprintf("ext-talent-%d", randomInt(config.TalentCount))}},
			})
		}
	}

	return model.RawPayload{
		Schedule: model.Schedule{ID: config.Slug, Source: model.SourceOengus, Items: items},
		Talent:   talent,
	}
}

// randomTeams partitions a couple of players into one or two teams.
func randomTeams(config *Config, run int) []model.Team {
	players := []model.TalentRef{
		{ExternalID: fmt.Sprintf("ext-talent-%d", (run*2)%config.TalentCount)},
		{ExternalID: fmt.Sprintf("ext-talent-%d", (run*2+1)%config.TalentCount)},
	}
	if randomInt(2) == 0 {
		return []model.Team{{PlayerIDs: players}}
	}
	return []model.Team{
		{Name: "Team A", PlayerIDs: players[:1]},
		{Name: "Team B", PlayerIDs: players[1:]},
	}
}

// MutatePayload produces the next round's payload from the previous one:
// some titles change, team groupings get re-partitioned and estimates drift.
// External ids stay stable so the service must reconcile, not recreate.
func MutatePayload(payload model.RawPayload) model.RawPayload {
	next := payload
	next.Schedule.Items = make([]model.ScheduleItem, len(payload.Schedule.Items))
	copy(next.Schedule.Items, payload.Schedule.Items)

	for i := range next.Schedule.Items {
		item := &next.Schedule.Items[i]
		if !item.IsSpeedrun() {
			continue
		}
		switch randomInt(4) {
		case 0:
			item.Title = pick(gameTitles) + " Remastered"
		case 1:
			item.Estimate = pick(estimates)
		case 2:
			item.Teams = repartitionTeams(item.Teams)
		}
	}
	return next
}

// repartitionTeams flattens all players and regroups them, either into one
// team or a team per player.
func repartitionTeams(teams []model.Team) []model.Team {
	var players []model.TalentRef
	for _, team := range teams {
		players = append(players, team.PlayerIDs...)
	}
	if len(players) == 0 {
		return teams
	}
	if randomInt(2) == 0 {
		return []model.Team{{PlayerIDs: players}}
	}
	out := make([]model.Team, 0, len(players))
	for _, player := range players {
		out = append(out, model.Team{PlayerIDs: []model.TalentRef{player}})
	}
	return out
}
