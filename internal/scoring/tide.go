package scoring

import (
	"github.com/jmotta/surfcast/internal/models"
)

// tidePhaseBonus is added on top of the sea-level curve when the resolved
// phase is one the surfer asked for.
const tidePhaseBonus = 20.0

// TideScore rates the tide state from the observed sea level and the resolved
// phase label. The sea-level band gives the base curve; a preferred phase adds
// a bonus on top. With only a phase preference configured the criterion
// becomes a discrete match. The second return is false when neither signal is
// ratable, in which case the criterion must be excluded from weighting.
func TideScore(seaLevel *float64, phase models.TidePhase, pref models.SpotPreference) (float64, bool) {
	levelScore, levelOK := 0.0, false
	if seaLevel != nil {
		levelScore, levelOK = rangeIdeal(*seaLevel, pref.SeaLevel)
	}

	phaseKnown := phase != models.PhaseUnknown && phase != ""
	phaseWanted := len(pref.PreferredTidePhases) > 0
	phaseMatch := false
	if phaseKnown && phaseWanted {
		for _, p := range pref.PreferredTidePhases {
			if p == phase {
				phaseMatch = true
				break
			}
		}
	}

	switch {
	case levelOK && phaseKnown && phaseWanted:
		if phaseMatch {
			return clamp(levelScore+tidePhaseBonus, 0, maxScore), true
		}
		return levelScore, true
	case levelOK:
		return levelScore, true
	case phaseKnown && phaseWanted:
		if phaseMatch {
			return directionMatchScore, true
		}
		return directionMismatchScore, true
	default:
		return 0, false
	}
}
