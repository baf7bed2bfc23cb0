package recommend

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmotta/surfcast/internal/compass"
	"github.com/jmotta/surfcast/internal/forecast"
	"github.com/jmotta/surfcast/internal/models"
	"github.com/jmotta/surfcast/internal/scoring"
	"github.com/jmotta/surfcast/internal/spots"
)

// fixedNow anchors day offsets in tests: 2025-06-14 08:30 UTC.
var fixedNow = time.Date(2025, 6, 14, 8, 30, 0, 0, time.UTC)

func seedService(t *testing.T) (*Service, int64) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	spotRepo := spots.NewRepositoryAt(dbPath)
	spot := &models.Spot{Name: "Maresias", Latitude: -23.79, Longitude: -45.56}
	if err := spotRepo.SaveSpot(spot); err != nil {
		t.Fatalf("SaveSpot() error = %v", err)
	}

	pref := models.SpotPreference{
		SpotID:    spot.ID,
		SurfLevel: models.LevelIntermediate,
		WaveHeight: models.RangeIdeal{
			Min:   models.Float64(0.8),
			Ideal: models.Float64(1.5),
			Max:   models.Float64(2.5),
		},
		PreferredSwellDirections: []compass.Sector{compass.SectorS},
	}
	if err := spotRepo.SavePreference(pref); err != nil {
		t.Fatalf("SavePreference() error = %v", err)
	}

	fcRepo := forecast.NewRepositoryAt(dbPath)
	hour := func(h int) time.Time {
		return time.Date(2025, 6, 14, h, 0, 0, 0, time.UTC)
	}
	samples := []models.ForecastSample{
		{
			// On-ideal conditions.
			SpotID:         spot.ID,
			TimestampUTC:   hour(9),
			WaveHeight:     models.Float64(1.5),
			SwellDirection: models.Float64(180),
		},
		{
			// Too big and from the wrong quadrant.
			SpotID:         spot.ID,
			TimestampUTC:   hour(10),
			WaveHeight:     models.Float64(3.2),
			SwellDirection: models.Float64(20),
		},
		{
			// Outside the requested window.
			SpotID:       spot.ID,
			TimestampUTC: hour(15),
			WaveHeight:   models.Float64(1.5),
		},
	}
	if err := fcRepo.UpsertSamples(samples); err != nil {
		t.Fatalf("UpsertSamples() error = %v", err)
	}

	extremes := []models.TideExtreme{
		{SpotID: spot.ID, TimestampUTC: hour(6), Type: models.TideLow, Height: 0.2},
		{SpotID: spot.ID, TimestampUTC: hour(12), Type: models.TideHigh, Height: 1.4},
	}
	if err := fcRepo.UpsertTideExtremes(extremes); err != nil {
		t.Fatalf("UpsertTideExtremes() error = %v", err)
	}

	engine := scoring.NewEngine(scoring.DefaultWeights())
	return NewServiceAt(dbPath, engine), spot.ID
}

func TestService_Recommend_RanksBestFirst(t *testing.T) {
	svc, spotID := seedService(t)

	recs, err := svc.Recommend(Request{
		SpotIDs:   []int64{spotID},
		SurfLevel: models.LevelIntermediate,
		DayOffset: 0,
		StartTime: "06:00",
		EndTime:   "12:00",
		Now:       fixedNow,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Recommend() returned %d entries, want 2 inside the window", len(recs))
	}

	if recs[0].TimestampUTC.Hour() != 9 {
		t.Errorf("best hour = %d:00, want 09:00", recs[0].TimestampUTC.Hour())
	}
	if recs[0].Score.Overall <= recs[1].Score.Overall {
		t.Errorf("ranking not descending: %v then %v", recs[0].Score.Overall, recs[1].Score.Overall)
	}
	if recs[0].SpotName != "Maresias" {
		t.Errorf("SpotName = %s, want Maresias", recs[0].SpotName)
	}
	if recs[0].WaveHeight == nil || *recs[0].WaveHeight != 1.5 {
		t.Errorf("headline WaveHeight = %v, want 1.5", recs[0].WaveHeight)
	}
	if recs[0].Score.TidePhase == models.PhaseUnknown {
		t.Error("tide phase not resolved from stored extremes")
	}
}

func TestService_Recommend_TiesBreakOnTime(t *testing.T) {
	svc, spotID := seedService(t)

	recs, err := svc.Recommend(Request{
		SpotIDs:   []int64{spotID},
		SurfLevel: models.LevelIntermediate,
		DayOffset: 0,
		StartTime: "00:00",
		EndTime:   "23:59",
		Now:       fixedNow,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("Recommend() returned %d entries, want all 3 hours", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Score.Overall == recs[i].Score.Overall &&
			recs[i-1].TimestampUTC.After(recs[i].TimestampUTC) {
			t.Errorf("equal scores out of time order at %d", i)
		}
	}
}

func TestService_Recommend_UnknownSpotSkipped(t *testing.T) {
	svc, spotID := seedService(t)

	recs, err := svc.Recommend(Request{
		SpotIDs:   []int64{999, spotID},
		SurfLevel: models.LevelIntermediate,
		StartTime: "06:00",
		EndTime:   "12:00",
		Now:       fixedNow,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, r := range recs {
		if r.SpotID != spotID {
			t.Errorf("unexpected spot %d in results", r.SpotID)
		}
	}
}

func TestService_Recommend_InvalidWindow(t *testing.T) {
	svc, spotID := seedService(t)

	cases := []struct {
		name       string
		start, end string
	}{
		{"bad format", "morning", "12:00"},
		{"end before start", "12:00", "06:00"},
		{"hour out of range", "25:00", "26:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Recommend(Request{
				SpotIDs:   []int64{spotID},
				StartTime: tc.start,
				EndTime:   tc.end,
				Now:       fixedNow,
			})
			if err == nil {
				t.Error("Recommend() expected error")
			}
		})
	}
}

func TestRequest_Window_DayOffset(t *testing.T) {
	req := Request{DayOffset: 1, StartTime: "06:00", EndTime: "10:30", Now: fixedNow}
	start, end, err := req.window()
	if err != nil {
		t.Fatalf("window() error = %v", err)
	}
	wantStart := time.Date(2025, 6, 15, 6, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}
