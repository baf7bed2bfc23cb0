package scoring

import (
	"github.com/jmotta/surfcast/internal/models"
	"github.com/jmotta/surfcast/internal/tide"
)

// interferenceBlendFactor is how much of the secondary-swell interference
// signal is blended into the primary wave/swell criterion scores. Secondary
// swell nudges the primary assessment, it never dominates it.
const interferenceBlendFactor = 0.10

// Engine aggregates criterion scores into one suitability score using a
// fixed weights table. It is stateless beyond the table and safe for
// concurrent use.
type Engine struct {
	weights Weights
}

// NewEngine creates an engine with the given weights table.
func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// Score rates one forecast sample against one preference profile. The result
// is a deterministic, pure function of its inputs: criteria without both a
// forecast value and a matching preference are excluded from the weighted
// mean rather than zeroed in, so an unconfigured preference never penalizes
// a spot. A sample without wave height cannot be assessed and scores 0.
func (e *Engine) Score(sample models.ForecastSample, extremes []models.TideExtreme, pref models.SpotPreference) models.SuitabilityScore {
	phase := sample.TidePhase
	if phase == "" {
		phase = tide.ResolvePhase(extremes, sample.TimestampUTC, sample.SeaLevel)
	}

	result := models.SuitabilityScore{
		Breakdown: make(map[models.Criterion]float64),
		TidePhase: phase,
	}

	if sample.WaveHeight == nil {
		return result
	}

	var weightedSum, weightUsed float64
	raw := make(map[models.Criterion]float64)

	record := func(c models.Criterion, score float64) {
		w := e.weights.For(c)
		if w <= 0 {
			return
		}
		raw[c] = score
		weightedSum += score * w
		weightUsed += w
	}

	scoreRange := func(c models.Criterion, value *float64, r models.RangeIdeal) {
		if value == nil {
			return
		}
		if s, ok := rangeIdeal(*value, r); ok {
			record(c, s)
		}
	}

	scoreSingle := func(c models.Criterion, value, ideal *float64) {
		if value == nil || ideal == nil {
			return
		}
		record(c, SingleIdealScore(*value, *ideal))
	}

	scoreRange(models.CriterionWaveHeight, sample.WaveHeight, pref.WaveHeight)
	scoreRange(models.CriterionWavePeriod, sample.WavePeriod, pref.WavePeriod)
	if s, ok := DirectionScore(sample.WaveDirection, pref.PreferredWaveDirections); ok {
		record(models.CriterionWaveDirection, s)
	}

	scoreRange(models.CriterionSwellHeight, sample.SwellHeight, pref.SwellHeight)
	scoreRange(models.CriterionSwellPeriod, sample.SwellPeriod, pref.SwellPeriod)
	if s, ok := DirectionScore(sample.SwellDirection, pref.PreferredSwellDirections); ok {
		record(models.CriterionSwellDirection, s)
	}

	scoreSingle(models.CriterionSecondarySwellHeight, sample.SecondarySwellHeight, pref.IdealSecondarySwellHeight)
	scoreSingle(models.CriterionSecondarySwellPeriod, sample.SecondarySwellPeriod, pref.IdealSecondarySwellPeriod)
	if s, ok := DirectionScore(sample.SecondarySwellDirection, pref.PreferredSecondarySwellDirections); ok {
		record(models.CriterionSecondarySwellDirection, s)
	}

	if sample.WindSpeed != nil && windPreferenceSet(pref) {
		record(models.CriterionWind, WindScore(
			*sample.WindSpeed, sample.WindDirection,
			pref.WindSpeed.Ideal, pref.WindSpeed.Max,
			pref.PreferredWindDirections,
		))
	}

	if s, ok := TideScore(sample.SeaLevel, phase, pref); ok {
		record(models.CriterionTide, s)
	}

	scoreSingle(models.CriterionWaterTemperature, sample.WaterTemperature, pref.IdealWaterTemperature)
	scoreSingle(models.CriterionAirTemperature, sample.AirTemperature, pref.IdealAirTemperature)
	scoreSingle(models.CriterionCurrentSpeed, sample.CurrentSpeed, pref.IdealCurrentSpeed)
	if s, ok := DirectionScore(sample.CurrentDirection, pref.PreferredCurrentDirections); ok {
		record(models.CriterionCurrentDirection, s)
	}

	// Secondary-swell interference modifies the primary wave/swell criteria
	// before the final mean; it carries no weight of its own. A secondary
	// train of zero height has zero signal and leaves the primaries alone.
	if signal, ok := SwellInterference(sample); ok {
		result.Breakdown[models.CriterionSwellInterference] = signal
		if *sample.SecondarySwellHeight > 0 {
			for _, c := range []models.Criterion{
				models.CriterionWaveHeight,
				models.CriterionSwellDirection,
				models.CriterionSwellPeriod,
			} {
				base, present := raw[c]
				if !present {
					continue
				}
				adjusted := clamp(base*(1-interferenceBlendFactor)+signal*interferenceBlendFactor, 0, maxScore)
				weightedSum += (adjusted - base) * e.weights.For(c)
				raw[c] = adjusted
			}
		}
	}

	for c, v := range raw {
		result.Breakdown[c] = round2(v)
	}

	if weightUsed > 0 {
		result.Overall = round2(clamp(weightedSum/weightUsed, 0, maxScore))
	}
	return result
}

// rangeIdeal applies the range-ideal curve using whatever bounds the
// preference defines. A missing ideal is taken as the band midpoint when both
// bounds exist; with no ideal derivable the criterion is not ratable. A
// missing min or max collapses onto the ideal, which the curve treats as a
// degenerate gap with default steepness.
func rangeIdeal(value float64, r models.RangeIdeal) (float64, bool) {
	ideal := r.Ideal
	if ideal == nil && r.Min != nil && r.Max != nil {
		mid := (*r.Min + *r.Max) / 2
		ideal = &mid
	}
	if ideal == nil {
		return 0, false
	}

	min, max := *ideal, *ideal
	if r.Min != nil {
		min = *r.Min
	}
	if r.Max != nil {
		max = *r.Max
	}
	return RangeIdealScore(value, min, *ideal, max), true
}

func windPreferenceSet(pref models.SpotPreference) bool {
	return pref.WindSpeed.Min != nil || pref.WindSpeed.Ideal != nil || pref.WindSpeed.Max != nil ||
		len(pref.PreferredWindDirections) > 0
}
