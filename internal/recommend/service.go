// Package recommend turns stored forecasts and preferences into ranked
// surf session recommendations.
package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jmotta/surfcast/internal/forecast"
	"github.com/jmotta/surfcast/internal/models"
	"github.com/jmotta/surfcast/internal/scoring"
	"github.com/jmotta/surfcast/internal/spots"
)

// Request selects which spots to rank and the session window to rank them
// over. DayOffset counts UTC days from today; StartTime/EndTime are "HH:MM"
// clock times within that day.
type Request struct {
	SpotIDs   []int64
	UserID    *int64
	SurfLevel models.SurfLevel
	DayOffset int
	StartTime string
	EndTime   string

	// Now anchors DayOffset. Zero means the current time.
	Now time.Time
}

// Service orchestrates recommendation generation
type Service struct {
	spots     *spots.Repository
	forecasts *forecast.Repository
	engine    *scoring.Engine
}

// NewService creates a recommendation service against the shared database.
func NewService(engine *scoring.Engine) *Service {
	return &Service{
		spots:     spots.NewRepository(),
		forecasts: forecast.NewRepository(),
		engine:    engine,
	}
}

// NewServiceAt creates a recommendation service against a specific database
// file.
func NewServiceAt(dbPath string, engine *scoring.Engine) *Service {
	return &Service{
		spots:     spots.NewRepositoryAt(dbPath),
		forecasts: forecast.NewRepositoryAt(dbPath),
		engine:    engine,
	}
}

// Recommend scores every stored forecast hour in the request window for each
// requested spot and returns the results ordered best-first. Spots with no
// stored forecast contribute nothing rather than failing the whole request.
func (s *Service) Recommend(req Request) ([]models.Recommendation, error) {
	start, end, err := req.window()
	if err != nil {
		return nil, err
	}

	// Tide extremes are loaded for the whole day so the phase of an early
	// hour can still see the previous extreme.
	dayStart := start.Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	var out []models.Recommendation
	for _, spotID := range req.SpotIDs {
		spot, err := s.spots.GetSpot(spotID)
		if err != nil {
			return nil, fmt.Errorf("loading spot %d: %w", spotID, err)
		}
		if spot == nil {
			continue
		}

		pref, err := s.spots.GetPreference(spotID, req.UserID, req.SurfLevel)
		if err != nil {
			return nil, fmt.Errorf("loading preferences for %s: %w", spot.Name, err)
		}

		samples, err := s.forecasts.SamplesForSpot(spotID, start, end)
		if err != nil {
			return nil, fmt.Errorf("loading forecast for %s: %w", spot.Name, err)
		}
		if len(samples) == 0 {
			continue
		}

		extremes, err := s.forecasts.TideExtremesForSpot(spotID, dayStart, dayEnd)
		if err != nil {
			return nil, fmt.Errorf("loading tide extremes for %s: %w", spot.Name, err)
		}

		for _, sample := range samples {
			score := s.engine.Score(sample, extremes, pref)
			out = append(out, models.Recommendation{
				SpotID:        spotID,
				SpotName:      spot.Name,
				TimestampUTC:  sample.TimestampUTC,
				Score:         score,
				WaveHeight:    sample.WaveHeight,
				SwellHeight:   sample.SwellHeight,
				WindSpeed:     sample.WindSpeed,
				WindDirection: sample.WindDirection,
				SeaLevel:      sample.SeaLevel,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score.Overall != out[j].Score.Overall {
			return out[i].Score.Overall > out[j].Score.Overall
		}
		return out[i].TimestampUTC.Before(out[j].TimestampUTC)
	})
	return out, nil
}

// window resolves the request into concrete UTC bounds.
func (r Request) window() (time.Time, time.Time, error) {
	now := r.Now
	if now.IsZero() {
		now = time.Now()
	}
	day := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, r.DayOffset)

	startH, startM, err := parseClock(r.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time: %w", err)
	}
	endH, endM, err := parseClock(r.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time: %w", err)
	}

	start := day.Add(time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute)
	end := day.Add(time.Duration(endH)*time.Hour + time.Duration(endM)*time.Minute)
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end time %s before start time %s", r.EndTime, r.StartTime)
	}
	return start, end, nil
}

// parseClock parses an "HH:MM" clock time.
func parseClock(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q is not HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("bad hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("bad minute in %q", s)
	}
	return h, m, nil
}
