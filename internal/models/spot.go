package models

import "time"

// Spot represents a registered surf break
type Spot struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	Timezone  string // IANA name, e.g. "America/Sao_Paulo"
	CreatedAt time.Time
}

// SurfLevel buckets surfers for level-default preferences
type SurfLevel string

const (
	LevelBeginner     SurfLevel = "beginner"
	LevelIntermediate SurfLevel = "intermediate"
	LevelAdvanced     SurfLevel = "advanced"
)
