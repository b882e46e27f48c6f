package simsched

import (
	"fmt"
	"os"

	"github.com/SumOfBesties/besties-layout/pkg/logger"
)

// SetupLogging initializes the shared logger for the simulation tool.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the schedule simulation tool.
func ShowHelp() {
	os.Stdout.WriteString(`Schedule Simulation Tool
========================

Generates synthetic marathon schedules and drives repeated imports against a
running service, verifying that schedule items keep their local ids while
titles, estimates and team groupings change between rounds.

Usage:
  go run cmd/schedule-sim/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -slug string
        Event slug to import under (default "simulated-marathon")
  -payload string
        Payload file the service's file source reads (default "schedule_payload.json")
  -rounds int
        Number of import rounds (default 5)
  -speedruns int
        Speedruns per generated schedule (default 20)
  -interstitials int
        Interstitials per generated schedule (default 10)
  -talent int
        Talent pool size (default 40)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Simulate with default settings
  go run cmd/schedule-sim/main.go

  # Longer marathon, more churn
  go run cmd/schedule-sim/main.go -rounds 20 -speedruns 60 -talent 120
`)
}
