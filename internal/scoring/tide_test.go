package scoring

import (
	"testing"

	"github.com/jmotta/surfcast/internal/models"
)

func seaLevelPref() models.SpotPreference {
	return models.SpotPreference{
		SeaLevel: models.RangeIdeal{
			Min:   models.Float64(0.2),
			Ideal: models.Float64(0.8),
			Max:   models.Float64(1.5),
		},
	}
}

func TestTideScore_SeaLevelCurve(t *testing.T) {
	pref := seaLevelPref()

	got, ok := TideScore(models.Float64(0.8), models.PhaseUnknown, pref)
	if !ok {
		t.Fatal("TideScore() not ratable with sea level present")
	}
	if got != 100 {
		t.Errorf("TideScore(ideal sea level) = %v, want 100", got)
	}

	far, _ := TideScore(models.Float64(1.5), models.PhaseUnknown, pref)
	if far >= got {
		t.Errorf("TideScore(max sea level) = %v, should be below ideal %v", far, got)
	}
}

func TestTideScore_PhaseBonus(t *testing.T) {
	pref := seaLevelPref()
	pref.PreferredTidePhases = []models.TidePhase{models.PhaseRising}

	base, _ := TideScore(models.Float64(0.5), models.PhaseFalling, pref)
	bonus, _ := TideScore(models.Float64(0.5), models.PhaseRising, pref)

	if bonus <= base {
		t.Errorf("preferred phase %v should beat non-preferred %v", bonus, base)
	}
	if bonus-base > tidePhaseBonus {
		t.Errorf("phase bonus %v exceeds %v", bonus-base, tidePhaseBonus)
	}
	if bonus > 100 {
		t.Errorf("TideScore = %v, above 100", bonus)
	}
}

func TestTideScore_PhaseOnly(t *testing.T) {
	pref := models.SpotPreference{
		PreferredTidePhases: []models.TidePhase{models.PhaseLow, models.PhaseRising},
	}

	match, ok := TideScore(nil, models.PhaseRising, pref)
	if !ok || match != directionMatchScore {
		t.Errorf("TideScore(phase match) = %v, %v; want %v, true", match, ok, directionMatchScore)
	}

	miss, ok := TideScore(nil, models.PhaseHigh, pref)
	if !ok || miss != directionMismatchScore {
		t.Errorf("TideScore(phase miss) = %v, %v; want %v, true", miss, ok, directionMismatchScore)
	}
}

func TestTideScore_NotRatable(t *testing.T) {
	tests := []struct {
		name     string
		seaLevel *float64
		phase    models.TidePhase
		pref     models.SpotPreference
	}{
		{"no preference at all", models.Float64(0.5), models.PhaseRising, models.SpotPreference{}},
		{"phase preference but unknown phase", nil, models.PhaseUnknown, models.SpotPreference{
			PreferredTidePhases: []models.TidePhase{models.PhaseLow},
		}},
		{"sea level preference but no observation", nil, models.PhaseUnknown, seaLevelPref()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := TideScore(tt.seaLevel, tt.phase, tt.pref); ok {
				t.Error("TideScore() ratable, want excluded")
			}
		})
	}
}
