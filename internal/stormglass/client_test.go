package stormglass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jmotta/surfcast/internal/models"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-key")

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.baseURL != "https://api.stormglass.io/v2" {
		t.Errorf("baseURL = %s, unexpected value", client.baseURL)
	}
	if client.apiKey != "test-key" {
		t.Errorf("apiKey = %s, want test-key", client.apiKey)
	}
	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}
}

func TestClient_GetPointForecast(t *testing.T) {
	start := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/weather/point") {
			t.Errorf("path = %s, want /weather/point", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("Authorization header = %s, want test-key", r.Header.Get("Authorization"))
		}

		query := r.URL.Query()
		if query.Get("lat") != "-23.79" {
			t.Errorf("lat param = %s, want -23.79", query.Get("lat"))
		}
		if query.Get("lng") != "-45.56" {
			t.Errorf("lng param = %s, want -45.56", query.Get("lng"))
		}
		if query.Get("start") != strconv.FormatInt(start.Unix(), 10) {
			t.Errorf("start param = %s, want %d", query.Get("start"), start.Unix())
		}
		if query.Get("end") != strconv.FormatInt(end.Unix(), 10) {
			t.Errorf("end param = %s, want %d", query.Get("end"), end.Unix())
		}
		requested := query.Get("params")
		for _, p := range []string{"waveHeight", "secondarySwellPeriod", "seaLevel"} {
			if !strings.Contains(requested, p) {
				t.Errorf("params %q missing %s", requested, p)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		data, _ := os.ReadFile("testdata/weather_point.json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	samples, err := client.GetPointForecast(context.Background(), -23.79, -45.56, start, end)
	if err != nil {
		t.Fatalf("GetPointForecast() error = %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("GetPointForecast() returned %d samples, want 2", len(samples))
	}

	first := samples[0]
	if !first.TimestampUTC.Equal(time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("first timestamp = %v, want 09:00 UTC", first.TimestampUTC)
	}
	if first.WaveHeight == nil || *first.WaveHeight != 1.2 {
		t.Errorf("WaveHeight = %v, want the sg value 1.2", first.WaveHeight)
	}
	if first.SeaLevel == nil || *first.SeaLevel != 0.62 {
		t.Errorf("SeaLevel = %v, want 0.62", first.SeaLevel)
	}
	if first.SecondarySwellDirection == nil || *first.SecondarySwellDirection != 95.0 {
		t.Errorf("SecondarySwellDirection = %v, want 95", first.SecondarySwellDirection)
	}

	second := samples[1]
	if second.WaveHeight == nil || *second.WaveHeight != 1.5 {
		t.Errorf("WaveHeight = %v, want noaa fallback 1.5", second.WaveHeight)
	}
	if second.SwellHeight != nil {
		t.Errorf("SwellHeight = %v, want nil for missing quantity", second.SwellHeight)
	}
	if second.SpotID != 0 {
		t.Errorf("SpotID = %d, want 0 before the caller attaches it", second.SpotID)
	}
}

func TestClient_GetTideExtremes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/tide/extremes/point") {
			t.Errorf("path = %s, want /tide/extremes/point", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Error("Authorization header missing")
		}
		w.Header().Set("Content-Type", "application/json")
		data, _ := os.ReadFile("testdata/tide_extremes.json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	start := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	extremes, err := client.GetTideExtremes(context.Background(), -23.79, -45.56, start, end)
	if err != nil {
		t.Fatalf("GetTideExtremes() error = %v", err)
	}
	if len(extremes) != 3 {
		t.Fatalf("GetTideExtremes() returned %d extremes, want 3", len(extremes))
	}

	if extremes[0].Type != models.TideLow || extremes[0].Height != 0.21 {
		t.Errorf("first extreme = %+v, want low at 0.21", extremes[0])
	}
	if extremes[1].Type != models.TideHigh {
		t.Errorf("second extreme type = %v, want high", extremes[1].Type)
	}
	if !extremes[1].TimestampUTC.Equal(time.Date(2025, 6, 14, 12, 31, 0, 0, time.UTC)) {
		t.Errorf("second extreme time = %v, want 12:31 UTC", extremes[1].TimestampUTC)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":{"key":"API quota exceeded"}}`, http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	start := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	_, err := client.GetPointForecast(context.Background(), -23.79, -45.56, start, start.Add(24*time.Hour))
	if err == nil {
		t.Fatal("GetPointForecast() expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "402") {
		t.Errorf("error = %v, want status code in message", err)
	}
}

func TestSourceValues_Pick(t *testing.T) {
	tests := []struct {
		name string
		sv   sourceValues
		want *float64
	}{
		{"nil map", nil, nil},
		{"prefers sg", sourceValues{"sg": 1.2, "noaa": 1.5}, models.Float64(1.2)},
		{"falls back to any source", sourceValues{"noaa": 1.5}, models.Float64(1.5)},
		{"empty map", sourceValues{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sv.pick()
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("pick() = %v, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("pick() = nil, want %v", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("pick() = %v, want %v", *got, *tt.want)
			}
		})
	}
}
