package models

import "github.com/jmotta/surfcast/internal/compass"

// RangeIdeal is a preference expressed as an acceptable [Min,Max] band around
// a most-desired Ideal value. Any bound may be nil.
type RangeIdeal struct {
	Min   *float64
	Ideal *float64
	Max   *float64
}

// SpotPreference bundles the per-criterion preferences for one (spot, surfer)
// or (spot, surf level) pair. Every field is optional: an absent preference
// means the criterion contributes no weight to the final score, never a
// penalty.
type SpotPreference struct {
	SpotID    int64
	UserID    *int64    // nil for level defaults
	SurfLevel SurfLevel // level the preference applies to when UserID is nil

	WaveHeight RangeIdeal
	WavePeriod RangeIdeal

	SwellHeight RangeIdeal
	SwellPeriod RangeIdeal

	IdealSecondarySwellHeight *float64
	IdealSecondarySwellPeriod *float64

	WindSpeed RangeIdeal

	SeaLevel RangeIdeal

	IdealWaterTemperature *float64
	IdealAirTemperature   *float64
	IdealCurrentSpeed     *float64

	PreferredWaveDirections           []compass.Sector
	PreferredSwellDirections          []compass.Sector
	PreferredSecondarySwellDirections []compass.Sector
	PreferredWindDirections           []compass.Sector
	PreferredCurrentDirections        []compass.Sector

	PreferredTidePhases []TidePhase
}

// IsZero reports whether no preference field is set at all.
func (p SpotPreference) IsZero() bool {
	ranges := []RangeIdeal{p.WaveHeight, p.WavePeriod, p.SwellHeight, p.SwellPeriod, p.WindSpeed, p.SeaLevel}
	for _, r := range ranges {
		if r.Min != nil || r.Ideal != nil || r.Max != nil {
			return false
		}
	}
	singles := []*float64{
		p.IdealSecondarySwellHeight, p.IdealSecondarySwellPeriod,
		p.IdealWaterTemperature, p.IdealAirTemperature, p.IdealCurrentSpeed,
	}
	for _, s := range singles {
		if s != nil {
			return false
		}
	}
	return len(p.PreferredWaveDirections) == 0 &&
		len(p.PreferredSwellDirections) == 0 &&
		len(p.PreferredSecondarySwellDirections) == 0 &&
		len(p.PreferredWindDirections) == 0 &&
		len(p.PreferredCurrentDirections) == 0 &&
		len(p.PreferredTidePhases) == 0
}
