package simsched

import "time"

// Config holds configuration for the schedule simulation
type Config struct {
	BaseURL       string        // Base URL of the service
	Slug          string        // Event slug to import under
	PayloadFile   string        // Payload file read by the service's file source
	Rounds        int           // Number of import rounds
	Speedruns     int           // Speedruns per generated schedule
	Interstitials int           // Interstitials per generated schedule
	TalentCount   int           // Talent pool size
	Timeout       time.Duration // HTTP request timeout
	LogFile       string        // Log file for simulation output
	Verbose       bool          // Enable verbose logging
}

// Stats holds simulation statistics
type Stats struct {
	RoundsCompleted  int
	ItemsGenerated   int
	TalentGenerated  int
	ImportsAccepted  int
	ImportsRejected  int
	StableIdentities int
	BrokenIdentities int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
