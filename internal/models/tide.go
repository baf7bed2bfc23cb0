package models

import "time"

// TideType represents whether a tide extremum is high or low
type TideType string

const (
	TideHigh TideType = "high"
	TideLow  TideType = "low"
)

// TideExtreme represents a single high or low tide occurrence
type TideExtreme struct {
	SpotID       int64
	TimestampUTC time.Time
	Type         TideType
	Height       float64 // meters relative to MSL
}

// ExtremesForDay filters extremes to those falling on the given UTC date.
// Source data is not guaranteed to alternate low/high; callers must tolerate
// malformed runs.
func ExtremesForDay(extremes []TideExtreme, date time.Time) []TideExtreme {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.Add(24 * time.Hour)

	var out []TideExtreme
	for _, e := range extremes {
		if !e.TimestampUTC.Before(startOfDay) && e.TimestampUTC.Before(endOfDay) {
			out = append(out, e)
		}
	}
	return out
}
