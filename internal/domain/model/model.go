// Package model contains the schedule and talent types passed between layers.
//
// Two identifier spaces exist side by side: local ids are generated by this
// bundle and are the only handles the rest of the system may reference;
// external ids come from the upstream schedule source and are used purely as
// correlation keys during imports.
package model

// ScheduleItemType discriminates the closed set of schedule item variants.
type ScheduleItemType string

// Schedule item variants.
const (
	ItemTypeSpeedrun ScheduleItemType = "SPEEDRUN"
	ItemTypeOther    ScheduleItemType = "OTHER"
	ItemTypeSetup    ScheduleItemType = "SETUP"
)

// ScheduleSource identifies where a schedule was imported from.
type ScheduleSource string

// Known schedule sources.
const (
	SourceOengus  ScheduleSource = "OENGUS"
	SourceUnknown ScheduleSource = "UNKNOWN"
)

// TalentRef references a talent item from a schedule item. A ref with a
// non-empty ID is resolved; a ref carrying only an ExternalID must be resolved
// against the talent list before any later consumer may trust it.
type TalentRef struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId,omitempty"`
}

// Socials holds a talent item's social media handles.
type Socials struct {
	Twitch      string `json:"twitch,omitempty"`
	YouTube     string `json:"youtube,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	Speedruncom string `json:"speedruncom,omitempty"`
}

// TalentItem represents one person on the talent roster.
// Entries are never auto-deleted; absence from a new import keeps them around.
type TalentItem struct {
	ID          string  `json:"id"`
	ExternalID  string  `json:"externalId,omitempty"`
	Name        string  `json:"name"`
	Pronouns    string  `json:"pronouns,omitempty"`
	CountryCode string  `json:"countryCode,omitempty"`
	Socials     Socials `json:"socials"`
}

// Team groups players for a speedrun. The upstream source has no stable team
// identity; Team.ID and a manually assigned Name survive re-imports through
// player-overlap reconciliation.
type Team struct {
	ID        string      `json:"id"`
	Name      string      `json:"name,omitempty"`
	PlayerIDs []TalentRef `json:"playerIds"`
}

// TwitchCategory is a cached streaming-platform category lookup, derived from
// a speedrun's title.
type TwitchCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScheduleItem is one row of the broadcast schedule.
//
// A single struct covers all variants; Type tells them apart. Teams,
// CommentatorIDs and the cached lookup fields are meaningful for SPEEDRUN
// items only, TalentIDs and Completed for the rest.
type ScheduleItem struct {
	ID                 string           `json:"id"`
	ExternalID         string           `json:"externalId,omitempty"`
	Type               ScheduleItemType `json:"type"`
	Title              string           `json:"title"`
	Estimate           string           `json:"estimate"`
	SetupTime          string           `json:"setupTime"`
	ScheduledStartTime string           `json:"scheduledStartTime,omitempty"`

	// Speedrun fields.
	Category             string          `json:"category,omitempty"`
	System               string          `json:"system,omitempty"`
	Relay                bool            `json:"relay,omitempty"`
	Emulated             bool            `json:"emulated,omitempty"`
	Teams                []Team          `json:"teams,omitempty"`
	CommentatorIDs       []TalentRef     `json:"commentatorIds,omitempty"`
	TwitchCategory       *TwitchCategory `json:"twitchCategory,omitempty"`
	VideoGameReleaseYear string          `json:"videoGameReleaseYear,omitempty"`

	// Interstitial fields.
	TalentIDs []TalentRef `json:"talentIds,omitempty"`
	Completed *bool       `json:"completed,omitempty"`
}

// Schedule is the ordered broadcast schedule for one event.
// Items is order-significant: it is the run order on air.
type Schedule struct {
	ID     string         `json:"id"`
	Source ScheduleSource `json:"source"`
	Items  []ScheduleItem `json:"items"`
}

// RawPayload is the shape returned by a schedule source: talent references
// inside Items carry only external ids and every local id is empty.
type RawPayload struct {
	Schedule Schedule     `json:"schedule"`
	Talent   []TalentItem `json:"talent"`
}

// State is the replicated bundle state held by the store.
type State struct {
	Schedule    Schedule     `json:"schedule"`
	Talent      []TalentItem `json:"talent"`
	ActiveRunID string       `json:"activeRunId,omitempty"`
	NextRunID   string       `json:"nextRunId,omitempty"`
}

// IsSpeedrun reports whether the item is a speedrun.
func (s ScheduleItem) IsSpeedrun() bool {
	return s.Type == ItemTypeSpeedrun
}

// IsInterstitial reports whether the item is a non-speedrun item.
func (s ScheduleItem) IsInterstitial() bool {
	return s.Type != ItemTypeSpeedrun
}

// IsCompleted reports whether an interstitial has been marked complete.
func (s ScheduleItem) IsCompleted() bool {
	return s.Completed != nil && *s.Completed
}
