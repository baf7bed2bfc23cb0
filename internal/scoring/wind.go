package scoring

import (
	"math"

	"github.com/jmotta/surfcast/internal/compass"
)

const (
	// windFalloff controls how fast the baseline decays as speed approaches
	// the configured maximum.
	windFalloff = 3.0

	// windDirectionBonusWeight caps how much perfect directional alignment
	// can add on top of the speed baseline.
	windDirectionBonusWeight = 0.4

	// Fallbacks when the preference leaves speed bounds unset (m/s).
	defaultIdealWindSpeed = 6.0
	defaultMaxWindSpeed   = 20.0
)

// WindScore rates wind jointly on speed and direction. The baseline is a
// bounded tanh decay of speed toward maxSpeed; at or beyond maxSpeed the wind
// is destructive and the score is a hard zero regardless of direction. A
// favorable direction adds a cosine alignment bonus, scaled down when the
// speed is already far past ideal so a perfect offshore at destructive
// strength cannot rate as great. Result is always within [0,100].
func WindScore(speed float64, direction *float64, idealSpeed, maxSpeed *float64, preferred []compass.Sector) float64 {
	ideal := defaultIdealWindSpeed
	if idealSpeed != nil && *idealSpeed > 0 {
		ideal = *idealSpeed
	}
	max := defaultMaxWindSpeed
	if maxSpeed != nil && *maxSpeed > 0 {
		max = *maxSpeed
	}

	if speed >= max {
		return 0
	}

	score := clamp(1-math.Tanh(windFalloff*speed/max), 0, 1)

	if direction != nil && len(preferred) > 0 {
		align := clamp(alignment(*direction, preferred), 0, 1)
		speedRatio := math.Min(speed/ideal, 1.0)
		bonus := align * math.Tanh(windFalloff*speedRatio) * windDirectionBonusWeight
		score = clamp(score+bonus, 0, 1)
	}

	return maxScore * score
}
