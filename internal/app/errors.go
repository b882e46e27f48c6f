package app

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted      = errors.New("service not started")
	ErrNoSource        = errors.New("no schedule source configured")
	ErrItemNotFound    = errors.New("schedule item not found")
	ErrNotSpeedrun     = errors.New("schedule item is not a speedrun")
	ErrNotInterstitial = errors.New("schedule item is not an interstitial")
	ErrNoNextRun       = errors.New("cannot determine next run")
	ErrNoPreviousRun   = errors.New("cannot determine previous run")
)
