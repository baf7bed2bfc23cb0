package scoring

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmotta/surfcast/internal/models"
)

// Weights defines the relative importance of each criterion in the final
// score. A zero weight removes the criterion from aggregation entirely.
type Weights struct {
	WaveHeight              float64 `json:"wave_height"`
	WavePeriod              float64 `json:"wave_period"`
	WaveDirection           float64 `json:"wave_direction"`
	SwellHeight             float64 `json:"swell_height"`
	SwellPeriod             float64 `json:"swell_period"`
	SwellDirection          float64 `json:"swell_direction"`
	SecondarySwellHeight    float64 `json:"secondary_swell_height"`
	SecondarySwellPeriod    float64 `json:"secondary_swell_period"`
	SecondarySwellDirection float64 `json:"secondary_swell_direction"`
	Wind                    float64 `json:"wind"`
	Tide                    float64 `json:"tide"`
	WaterTemperature        float64 `json:"water_temperature"`
	AirTemperature          float64 `json:"air_temperature"`
	CurrentSpeed            float64 `json:"current_speed"`
	CurrentDirection        float64 `json:"current_direction"`
}

// DefaultWeights returns the baseline weighting: primary wave and swell
// dominate, wind matters, tide shapes the session, and comfort factors nudge.
func DefaultWeights() Weights {
	return Weights{
		WaveHeight:              3.0,
		WavePeriod:              1.0,
		WaveDirection:           1.0,
		SwellHeight:             2.5,
		SwellPeriod:             1.5,
		SwellDirection:          2.5,
		SecondarySwellHeight:    0.3,
		SecondarySwellPeriod:    0.3,
		SecondarySwellDirection: 0.3,
		Wind:                    2.0,
		Tide:                    1.0,
		WaterTemperature:        0.5,
		AirTemperature:          0.5,
		CurrentSpeed:            0.5,
		CurrentDirection:        0.3,
	}
}

// LoadWeightsFromFile loads weight overrides from a JSON file. Fields absent
// from the file keep their default values.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}

// For returns the weight configured for a criterion; zero for criteria the
// table does not know (including the interference modifier, which is never
// weighted on its own).
func (w Weights) For(c models.Criterion) float64 {
	switch c {
	case models.CriterionWaveHeight:
		return w.WaveHeight
	case models.CriterionWavePeriod:
		return w.WavePeriod
	case models.CriterionWaveDirection:
		return w.WaveDirection
	case models.CriterionSwellHeight:
		return w.SwellHeight
	case models.CriterionSwellPeriod:
		return w.SwellPeriod
	case models.CriterionSwellDirection:
		return w.SwellDirection
	case models.CriterionSecondarySwellHeight:
		return w.SecondarySwellHeight
	case models.CriterionSecondarySwellPeriod:
		return w.SecondarySwellPeriod
	case models.CriterionSecondarySwellDirection:
		return w.SecondarySwellDirection
	case models.CriterionWind:
		return w.Wind
	case models.CriterionTide:
		return w.Tide
	case models.CriterionWaterTemperature:
		return w.WaterTemperature
	case models.CriterionAirTemperature:
		return w.AirTemperature
	case models.CriterionCurrentSpeed:
		return w.CurrentSpeed
	case models.CriterionCurrentDirection:
		return w.CurrentDirection
	default:
		return 0
	}
}
