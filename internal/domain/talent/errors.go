package talent

import "errors"

// Sentinel kinds for talent errors.
var (
	// ErrRefMissingIDs marks a talent reference with neither a local nor an
	// external id. That only happens when a caller builds a broken payload,
	// so it is surfaced instead of being passed through.
	ErrRefMissingIDs = errors.New("talent reference has no ids")

	// ErrMissingID marks a manual talent update without a local id.
	ErrMissingID = errors.New("talent item id must not be blank")
)
