package models

import "time"

// TidePhase labels where in the tidal cycle a point in time falls
type TidePhase string

const (
	PhaseLow     TidePhase = "low"
	PhaseHigh    TidePhase = "high"
	PhaseRising  TidePhase = "rising"
	PhaseFalling TidePhase = "falling"
	PhaseMid     TidePhase = "mid"
	PhaseUnknown TidePhase = "unknown"
)

// ForecastSample is one hourly forecast row for a spot. All quantities are
// optional except that scoring is meaningless without WaveHeight; pointers
// distinguish "absent" from zero.
type ForecastSample struct {
	SpotID       int64
	TimestampUTC time.Time // hourly resolution, always UTC

	WaveHeight    *float64 // meters
	WaveDirection *float64 // degrees true
	WavePeriod    *float64 // seconds

	SwellHeight    *float64
	SwellDirection *float64
	SwellPeriod    *float64

	SecondarySwellHeight    *float64
	SecondarySwellDirection *float64
	SecondarySwellPeriod    *float64

	WindSpeed     *float64 // m/s
	WindDirection *float64

	WaterTemperature *float64 // celsius
	AirTemperature   *float64

	CurrentSpeed     *float64
	CurrentDirection *float64

	SeaLevel *float64 // meters relative to MSL

	// TidePhase is derived from the day's tide extremes, not ingested.
	TidePhase TidePhase
}

// Float64 returns a pointer to v. Convenience for building samples and
// preferences with literal values.
func Float64(v float64) *float64 {
	return &v
}
