package scoring

import (
	"math"

	"github.com/jmotta/surfcast/internal/compass"
)

const (
	// Discrete directional scoring: landing in a preferred sector is a full
	// match, anywhere else is a low-but-nonzero floor.
	directionMatchScore    = 100.0
	directionMismatchScore = 25.0
)

// DirectionScore rates an observed bearing against a set of acceptable
// sectors. The second return is false when there is no directional signal to
// rate: nil bearing, empty preference, or an unmappable sector. Callers must
// then exclude the criterion rather than score it.
func DirectionScore(observed *float64, preferred []compass.Sector) (float64, bool) {
	if observed == nil || len(preferred) == 0 {
		return 0, false
	}
	sec := compass.FromDegrees(observed)
	if sec == compass.SectorUnknown {
		return 0, false
	}
	for _, p := range preferred {
		if p == sec {
			return directionMatchScore, true
		}
	}
	return directionMismatchScore, true
}

// alignment returns cos of the smallest angular distance between the observed
// bearing and any preferred sector's center bearing, in [-1,1]. Used where
// graduated alignment matters more than discrete sector membership (wind).
func alignment(observed float64, preferred []compass.Sector) float64 {
	best := 180.0
	for _, p := range preferred {
		center := p.Degrees()
		if center < 0 {
			continue
		}
		if d := compass.AngularDistance(observed, center); d < best {
			best = d
		}
	}
	return math.Cos(best * math.Pi / 180)
}
