// SPDX-License-Identifier: LGPL-3.0-or-later

// Package domain holds the types shared across the Grid, Compute, and
// Coordination agents: jobs, carbon/price forecast points, placement
// decisions, and the flex offers derived from them.
package domain

import "time"

// SlotDuration is the atomic scheduling unit the whole engine is quantized to.
const SlotDuration = 30 * time.Minute

// SlotHours is SlotDuration expressed in hours, used throughout energy math.
const SlotHours = 0.5

// EnsureUTC returns t normalized to the UTC location.
func EnsureUTC(t time.Time) time.Time {
	return t.UTC()
}

// ISOFormat renders t as UTC ISO-8601 with a trailing "Z", never a numeric
// offset, matching the wire format every agent command uses.
func ISOFormat(t time.Time) string {
	return EnsureUTC(t).Format("2006-01-02T15:04:05Z")
}

// ParseTime accepts ISO-8601 with either a "Z" suffix or an explicit
// "+00:00"/numeric offset and returns the UTC equivalent.
func ParseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05.999999999Z07:00", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// HourFloor truncates t down to the start of its hour, in UTC.
func HourFloor(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), 0, 0, 0, time.UTC)
}
