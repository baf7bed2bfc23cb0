// Package scoring converts raw forecast quantities and preference profiles
// into 0-100 criterion scores and aggregates them into one suitability score.
//
// Every scorer is a pure function and total over its input domain: missing or
// out-of-range inputs degrade to a neutral contribution, never to a panic.
package scoring

import "math"

const (
	// maxScore is the value every curve reaches at its ideal point.
	maxScore = 100.0

	// rightFloor is the score the range-ideal curve is solved to hit exactly
	// at the preference's max bound.
	rightFloor = 0.1

	// defaultSteepness substitutes for a degenerate (zero-width) min/ideal or
	// ideal/max gap so the curves never divide by zero.
	defaultSteepness = 1.0
)

// RangeIdealScore rates value against a {min, ideal, max} preference band.
// The curve is continuous, equals 100 at value == ideal, and is monotonically
// non-increasing as value moves away from ideal on either side.
//
// Below the ideal the falloff is a quadratic exponential whose steepness
// grows as the min/ideal gap shrinks: a narrow tolerance band punishes
// deviation fast. Above the ideal the exponent is 6 when the ideal/max gap is
// at least one unit and 3 otherwise, so wide bands stay flat near the ideal
// and collapse only near max, where the score bottoms out at 10.
func RangeIdealScore(value, min, ideal, max float64) float64 {
	if value <= ideal {
		gap := ideal - min
		k1 := defaultSteepness
		if gap > 0 {
			k1 = 2.0 / gap
		}
		return maxScore * math.Exp(-k1*(ideal-value)*(ideal-value))
	}

	gap := max - ideal
	p := 3.0
	if gap >= 1.0 {
		p = 6.0
	}
	k2 := defaultSteepness
	if gap > 0 {
		k2 = -math.Log(rightFloor) / math.Pow(gap, p)
	}
	return maxScore * math.Exp(-k2*math.Pow(value-ideal, p))
}

// SingleIdealScore rates value against a lone ideal with symmetric quadratic
// decay. The decay width scales with the ideal itself, so a 1-degree miss on
// a 25-degree water temperature matters far less than on a 2-second swell
// period. An ideal of zero (or below) falls back to unit width.
func SingleIdealScore(value, ideal float64) float64 {
	width := ideal
	if width <= 0 {
		width = 1.0
	}
	d := value - ideal
	return maxScore * math.Exp(-d*d/width)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
