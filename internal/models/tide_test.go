package models

import (
	"testing"
	"time"
)

func TestExtremesForDay(t *testing.T) {
	extremes := []TideExtreme{
		{TimestampUTC: time.Date(2025, 6, 13, 23, 50, 0, 0, time.UTC), Type: TideHigh, Height: 1.3},
		{TimestampUTC: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), Type: TideLow, Height: 0.2},
		{TimestampUTC: time.Date(2025, 6, 14, 12, 31, 0, 0, time.UTC), Type: TideHigh, Height: 1.4},
		{TimestampUTC: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), Type: TideLow, Height: 0.3},
	}

	got := ExtremesForDay(extremes, time.Date(2025, 6, 14, 9, 15, 0, 0, time.UTC))
	if len(got) != 2 {
		t.Fatalf("ExtremesForDay() returned %d events, want 2", len(got))
	}
	// Midnight belongs to the day it starts; the next midnight does not.
	if !got[0].TimestampUTC.Equal(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first event = %v, want midnight inclusive", got[0].TimestampUTC)
	}
	if got[1].Type != TideHigh {
		t.Errorf("second event type = %v, want high", got[1].Type)
	}
}

func TestExtremesForDay_Empty(t *testing.T) {
	if got := ExtremesForDay(nil, time.Now()); len(got) != 0 {
		t.Errorf("ExtremesForDay(nil) = %v, want empty", got)
	}
}

func TestSpotPreference_IsZero(t *testing.T) {
	var empty SpotPreference
	empty.SpotID = 3
	empty.SurfLevel = LevelAdvanced
	if !empty.IsZero() {
		t.Error("preference with only identity fields should be zero")
	}

	withRange := SpotPreference{WaveHeight: RangeIdeal{Ideal: Float64(1.5)}}
	if withRange.IsZero() {
		t.Error("preference with a range bound should not be zero")
	}

	withPhases := SpotPreference{PreferredTidePhases: []TidePhase{PhaseRising}}
	if withPhases.IsZero() {
		t.Error("preference with tide phases should not be zero")
	}
}
