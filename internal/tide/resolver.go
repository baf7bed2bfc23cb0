// Package tide classifies a point in time against a day's tide extremes.
//
// The resolver is total over arbitrary, possibly malformed extreme lists:
// provider data occasionally repeats an extreme type back to back, and the
// answer then degrades to mid/unknown rather than failing.
package tide

import (
	"sort"
	"time"

	"github.com/jmotta/surfcast/internal/models"
)

// HeightTolerance is the absolute sea-level band (meters) within which a
// query point is still considered to be sitting at an extreme rather than
// rising or falling away from it.
const HeightTolerance = 0.1

// ResolvePhase returns the tide phase at t given the surrounding extremes.
// seaLevel, when available, refines rising/falling into low/high near the
// bracketing extremes. Extrapolation past either end of the event window is
// not attempted; those queries return PhaseUnknown.
func ResolvePhase(extremes []models.TideExtreme, t time.Time, seaLevel *float64) models.TidePhase {
	if len(extremes) == 0 {
		return models.PhaseUnknown
	}

	sorted := make([]models.TideExtreme, len(extremes))
	copy(sorted, extremes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimestampUTC.Before(sorted[j].TimestampUTC)
	})

	var prev, next *models.TideExtreme
	for i := range sorted {
		if !sorted[i].TimestampUTC.After(t) {
			prev = &sorted[i]
		} else {
			next = &sorted[i]
			break
		}
	}

	// Exactly at an extreme.
	if prev != nil && prev.TimestampUTC.Equal(t) {
		return phaseOf(prev.Type)
	}

	// Before the first or after the last known extreme: refusing to guess
	// beats silently mislabeling the day boundary.
	if prev == nil || next == nil {
		return models.PhaseUnknown
	}

	if prev.Type != next.Type {
		// Alternating extremes, the well-formed case.
		if seaLevel != nil {
			if nearHeight(*seaLevel, prev.Height) {
				return phaseOf(prev.Type)
			}
			if nearHeight(*seaLevel, next.Height) {
				return phaseOf(next.Type)
			}
		}
		if prev.Type == models.TideLow {
			return models.PhaseRising
		}
		return models.PhaseFalling
	}

	// Two consecutive extremes of the same type: malformed input. The only
	// trustworthy signal left is proximity to the previous extreme's height.
	if seaLevel != nil && nearHeight(*seaLevel, prev.Height) {
		return phaseOf(prev.Type)
	}
	return models.PhaseMid
}

func nearHeight(seaLevel, height float64) bool {
	d := seaLevel - height
	if d < 0 {
		d = -d
	}
	return d <= HeightTolerance
}

func phaseOf(t models.TideType) models.TidePhase {
	if t == models.TideHigh {
		return models.PhaseHigh
	}
	return models.PhaseLow
}
