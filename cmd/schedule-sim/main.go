package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/simsched"
)

// Default configuration constants.
const (
	defaultRounds        = 5
	defaultSpeedruns     = 20
	defaultInterstitials = 10
	defaultTalentCount   = 40
	defaultTimeout       = 30 * time.Second
	defaultSimTimeout    = 10 * time.Minute
)

func main() {
	var (
		baseURL       = flag.String("url", "http://localhost:9080", "Base URL of the service")
		slug          = flag.String("slug", "simulated-marathon", "Event slug to import under")
		payloadFile   = flag.String("payload", "schedule_payload.json", "Payload file the service's file source reads")
		rounds        = flag.Int("rounds", defaultRounds, "Number of import rounds")
		speedruns     = flag.Int("speedruns", defaultSpeedruns, "Speedruns per generated schedule")
		interstitials = flag.Int("interstitials", defaultInterstitials, "Interstitials per generated schedule")
		talentCount   = flag.Int("talent", defaultTalentCount, "Talent pool size")
		timeout       = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose       = flag.Bool("verbose", false, "Enable verbose logging")
		help          = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		simsched.ShowHelp()
		return
	}

	if err := simsched.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultSimTimeout)
	defer cancel()

	config := &simsched.Config{
		BaseURL:       *baseURL,
		Slug:          *slug,
		PayloadFile:   *payloadFile,
		Rounds:        *rounds,
		Speedruns:     *speedruns,
		Interstitials: *interstitials,
		TalentCount:   *talentCount,
		Timeout:       *timeout,
		Verbose:       *verbose,
	}

	if err := simsched.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Simulation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
