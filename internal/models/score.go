package models

import "time"

// Criterion names the individual signals that make up a suitability score.
type Criterion string

const (
	CriterionWaveHeight              Criterion = "wave_height"
	CriterionWavePeriod              Criterion = "wave_period"
	CriterionWaveDirection           Criterion = "wave_direction"
	CriterionSwellHeight             Criterion = "swell_height"
	CriterionSwellPeriod             Criterion = "swell_period"
	CriterionSwellDirection          Criterion = "swell_direction"
	CriterionSecondarySwellHeight    Criterion = "secondary_swell_height"
	CriterionSecondarySwellPeriod    Criterion = "secondary_swell_period"
	CriterionSecondarySwellDirection Criterion = "secondary_swell_direction"
	CriterionWind                    Criterion = "wind"
	CriterionTide                    Criterion = "tide"
	CriterionWaterTemperature        Criterion = "water_temperature"
	CriterionAirTemperature          Criterion = "air_temperature"
	CriterionCurrentSpeed            Criterion = "current_speed"
	CriterionCurrentDirection        Criterion = "current_direction"
	CriterionSwellInterference       Criterion = "swell_interference"
)

// SuitabilityScore is the engine's output for one (sample, preference) pair:
// an overall 0-100 rating plus the per-criterion breakdown that produced it.
// Breakdown values are 0-100 for absolute criteria; the swell_interference
// entry is a signed adjustment in [-100,100].
type SuitabilityScore struct {
	Overall   float64
	Breakdown map[Criterion]float64
	TidePhase TidePhase
}

// Recommendation pairs a scored forecast hour with its spot for display.
type Recommendation struct {
	SpotID       int64
	SpotName     string
	TimestampUTC time.Time
	Score        SuitabilityScore

	// Headline conditions for list rendering; copied from the sample so the
	// presentation layer does not need to re-query it.
	WaveHeight    *float64
	SwellHeight   *float64
	WindSpeed     *float64
	WindDirection *float64
	SeaLevel      *float64
}
