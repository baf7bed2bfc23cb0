package tide

import (
	"testing"
	"time"

	"github.com/jmotta/surfcast/internal/models"
)

func mustTime(t *testing.T, hhmm string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2025-06-14T"+hhmm+":00Z")
	if err != nil {
		t.Fatalf("bad test time %q: %v", hhmm, err)
	}
	return ts
}

func extreme(t *testing.T, hhmm string, typ models.TideType, height float64) models.TideExtreme {
	t.Helper()
	return models.TideExtreme{TimestampUTC: mustTime(t, hhmm), Type: typ, Height: height}
}

func TestResolvePhase(t *testing.T) {
	day := func(t *testing.T) []models.TideExtreme {
		return []models.TideExtreme{
			extreme(t, "06:00", models.TideLow, 0.2),
			extreme(t, "12:00", models.TideHigh, 1.4),
			extreme(t, "18:00", models.TideLow, 0.3),
		}
	}

	tests := []struct {
		name     string
		extremes func(t *testing.T) []models.TideExtreme
		at       string
		seaLevel *float64
		want     models.TidePhase
	}{
		{
			name:     "between low and high is rising",
			extremes: day,
			at:       "09:00",
			want:     models.PhaseRising,
		},
		{
			name:     "between high and low is falling",
			extremes: day,
			at:       "15:00",
			want:     models.PhaseFalling,
		},
		{
			name:     "exactly at an extreme returns its type",
			extremes: day,
			at:       "12:00",
			seaLevel: models.Float64(0.9),
			want:     models.PhaseHigh,
		},
		{
			name:     "sea level near previous low snaps to low",
			extremes: day,
			at:       "06:05",
			seaLevel: models.Float64(0.25),
			want:     models.PhaseLow,
		},
		{
			name:     "sea level near next high snaps to high",
			extremes: day,
			at:       "11:30",
			seaLevel: models.Float64(1.35),
			want:     models.PhaseHigh,
		},
		{
			name:     "before first extreme is unknown",
			extremes: day,
			at:       "03:00",
			want:     models.PhaseUnknown,
		},
		{
			name:     "after last extreme is unknown",
			extremes: day,
			at:       "22:00",
			seaLevel: models.Float64(0.8),
			want:     models.PhaseUnknown,
		},
		{
			name: "single event before query is unknown",
			extremes: func(t *testing.T) []models.TideExtreme {
				return []models.TideExtreme{extreme(t, "06:00", models.TideLow, 0.2)}
			},
			at:   "09:00",
			want: models.PhaseUnknown,
		},
		{
			name: "single event after query is unknown",
			extremes: func(t *testing.T) []models.TideExtreme {
				return []models.TideExtreme{extreme(t, "12:00", models.TideHigh, 1.4)}
			},
			at:   "09:00",
			want: models.PhaseUnknown,
		},
		{
			name: "non-alternating falls back to mid",
			extremes: func(t *testing.T) []models.TideExtreme {
				return []models.TideExtreme{
					extreme(t, "06:00", models.TideLow, 0.2),
					extreme(t, "12:00", models.TideLow, 0.4),
				}
			},
			at:       "09:00",
			seaLevel: models.Float64(0.9),
			want:     models.PhaseMid,
		},
		{
			name: "non-alternating with sea level near prev snaps",
			extremes: func(t *testing.T) []models.TideExtreme {
				return []models.TideExtreme{
					extreme(t, "06:00", models.TideLow, 0.2),
					extreme(t, "12:00", models.TideLow, 0.4),
				}
			},
			at:       "07:00",
			seaLevel: models.Float64(0.28),
			want:     models.PhaseLow,
		},
		{
			name: "unsorted input is sorted before scanning",
			extremes: func(t *testing.T) []models.TideExtreme {
				return []models.TideExtreme{
					extreme(t, "18:00", models.TideLow, 0.3),
					extreme(t, "06:00", models.TideLow, 0.2),
					extreme(t, "12:00", models.TideHigh, 1.4),
				}
			},
			at:   "09:00",
			want: models.PhaseRising,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePhase(tt.extremes(t), mustTime(t, tt.at), tt.seaLevel)
			if got != tt.want {
				t.Errorf("ResolvePhase() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolvePhase_EmptyEvents(t *testing.T) {
	got := ResolvePhase(nil, mustTime(t, "09:00"), models.Float64(0.5))
	if got != models.PhaseUnknown {
		t.Errorf("ResolvePhase(nil events) = %v, want unknown", got)
	}
}

func TestResolvePhase_DoesNotMutateInput(t *testing.T) {
	extremes := []models.TideExtreme{
		extreme(t, "18:00", models.TideLow, 0.3),
		extreme(t, "06:00", models.TideLow, 0.2),
	}

	ResolvePhase(extremes, mustTime(t, "09:00"), nil)

	if !extremes[0].TimestampUTC.Equal(mustTime(t, "18:00")) {
		t.Error("ResolvePhase reordered the caller's slice")
	}
}
