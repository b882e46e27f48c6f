package model

import (
	"fmt"
	"time"

	"github.com/sosodev/duration"
)

// Accepted layouts for scheduled start times. The upstream source emits full
// ISO 8601 timestamps, with or without sub-second precision.
var dateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ValidateDuration checks that s is a valid ISO 8601 duration (e.g. "PT25M").
// An empty string is allowed; estimates and setup times may be absent.
func ValidateDuration(s string) error {
	if s == "" {
		return nil
	}
	if _, err := duration.Parse(s); err != nil {
		return fmt.Errorf("%q is not a valid ISO 8601 duration: %w", s, err)
	}
	return nil
}

// ParseDuration converts an ISO 8601 duration string into a time.Duration.
// An empty string parses to zero.
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := duration.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid ISO 8601 duration: %w", s, err)
	}
	return d.ToTimeDuration(), nil
}

// ValidateDate checks that s is a valid ISO 8601 date. An empty string is
// allowed; scheduled start times are optional.
func ValidateDate(s string) error {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid ISO 8601 date", s)
}
