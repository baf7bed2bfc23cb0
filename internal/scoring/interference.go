package scoring

import (
	"math"

	"github.com/jmotta/surfcast/internal/compass"
	"github.com/jmotta/surfcast/internal/models"
)

const (
	// Relative importance of direction alignment vs period fit in the raw
	// interference signal.
	interferenceDirectionWeight = 2.0
	interferencePeriodWeight    = 3.0

	// Asymmetric period gains: a secondary train with a shorter period than
	// the primary chops the face up and is punished harder than a longer
	// period is rewarded.
	shortPeriodGain = 2.5
	longPeriodGain  = 0.8

	// minReferencePeriod floors the primary period used in the mismatch
	// ratio so degenerate sub-second periods cannot blow it up.
	minReferencePeriod = 1.0
)

// SwellInterference models how the secondary swell train interacts with the
// primary one, returning a signed adjustment in [-100,100]. Positive values
// mean the trains reinforce (aligned direction, similar-or-longer period);
// negative values mean crossed, choppy interference.
//
// The raw direction/period signal is scaled by the secondary swell height
// before the tanh squash, so a small secondary train has near-zero impact no
// matter how badly it is aligned. The second return is false when the sample
// lacks the data to evaluate interference at all; callers must then leave the
// primary criterion scores untouched.
func SwellInterference(sample models.ForecastSample) (float64, bool) {
	secHeight := sample.SecondarySwellHeight
	secDir := sample.SecondarySwellDirection
	secPeriod := sample.SecondarySwellPeriod

	// The primary train is the swell when present, the wind-wave field
	// otherwise.
	priDir := sample.SwellDirection
	if priDir == nil {
		priDir = sample.WaveDirection
	}
	priPeriod := sample.SwellPeriod
	if priPeriod == nil {
		priPeriod = sample.WavePeriod
	}

	if secHeight == nil || secDir == nil || secPeriod == nil || priDir == nil || priPeriod == nil {
		return 0, false
	}

	delta := compass.AngularDistance(*secDir, *priDir)
	align := math.Cos(delta * math.Pi / 180)

	ref := math.Max(*priPeriod, minReferencePeriod)
	ratio := (*secPeriod - ref) / ref
	periodTerm := longPeriodGain * ratio
	if ratio < 0 {
		periodTerm = shortPeriodGain * ratio
	}

	raw := interferenceDirectionWeight*align + interferencePeriodWeight*periodTerm
	return round2(maxScore * math.Tanh(raw**secHeight)), true
}
