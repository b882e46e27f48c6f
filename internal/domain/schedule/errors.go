package schedule

import "errors"

// Sentinel kinds for schedule errors.
var (
	ErrMissingItemID = errors.New("schedule item id must not be blank")
	ErrNoPlayers     = errors.New("schedule item has no players")
)
