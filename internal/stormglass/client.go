// Package stormglass fetches marine forecast data from the StormGlass API.
package stormglass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jmotta/surfcast/internal/models"
)

// hourlyParams are the quantities requested per forecast hour. seaLevel rides
// along so the tide-phase resolver can refine rising/falling labels.
var hourlyParams = []string{
	"waveHeight", "waveDirection", "wavePeriod",
	"swellHeight", "swellDirection", "swellPeriod",
	"secondarySwellHeight", "secondarySwellDirection", "secondarySwellPeriod",
	"windSpeed", "windDirection",
	"waterTemperature", "airTemperature",
	"currentSpeed", "currentDirection",
	"seaLevel",
}

// preferredSource is the provider model whose values we keep when several
// sources report the same quantity.
const preferredSource = "sg"

// Client talks to the StormGlass point APIs
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a StormGlass client authenticated with apiKey
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: "https://api.stormglass.io/v2",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// sourceValues is one quantity as reported by multiple provider models,
// keyed by source name.
type sourceValues map[string]float64

// pick returns the preferred source's value, falling back to any available
// source, or nil when no source reported the quantity.
func (sv sourceValues) pick() *float64 {
	if sv == nil {
		return nil
	}
	if v, ok := sv[preferredSource]; ok {
		return &v
	}
	for _, v := range sv {
		return &v
	}
	return nil
}

type pointHour struct {
	Time                    string       `json:"time"`
	WaveHeight              sourceValues `json:"waveHeight"`
	WaveDirection           sourceValues `json:"waveDirection"`
	WavePeriod              sourceValues `json:"wavePeriod"`
	SwellHeight             sourceValues `json:"swellHeight"`
	SwellDirection          sourceValues `json:"swellDirection"`
	SwellPeriod             sourceValues `json:"swellPeriod"`
	SecondarySwellHeight    sourceValues `json:"secondarySwellHeight"`
	SecondarySwellDirection sourceValues `json:"secondarySwellDirection"`
	SecondarySwellPeriod    sourceValues `json:"secondarySwellPeriod"`
	WindSpeed               sourceValues `json:"windSpeed"`
	WindDirection           sourceValues `json:"windDirection"`
	WaterTemperature        sourceValues `json:"waterTemperature"`
	AirTemperature          sourceValues `json:"airTemperature"`
	CurrentSpeed            sourceValues `json:"currentSpeed"`
	CurrentDirection        sourceValues `json:"currentDirection"`
	SeaLevel                sourceValues `json:"seaLevel"`
}

type pointResponse struct {
	Hours []pointHour `json:"hours"`
}

// GetPointForecast retrieves hourly forecast samples for a coordinate within
// [start, end]. SpotID is left zero; the caller attaches it before storing.
func (c *Client) GetPointForecast(ctx context.Context, lat, lng float64, start, end time.Time) ([]models.ForecastSample, error) {
	params := url.Values{}
	params.Add("lat", formatCoord(lat))
	params.Add("lng", formatCoord(lng))
	params.Add("params", strings.Join(hourlyParams, ","))
	params.Add("start", strconv.FormatInt(start.Unix(), 10))
	params.Add("end", strconv.FormatInt(end.Unix(), 10))

	var decoded pointResponse
	if err := c.get(ctx, "/weather/point", params, &decoded); err != nil {
		return nil, err
	}

	samples := make([]models.ForecastSample, 0, len(decoded.Hours))
	for _, h := range decoded.Hours {
		ts, err := time.Parse(time.RFC3339, h.Time)
		if err != nil {
			continue // Skip hours with invalid timestamps
		}
		samples = append(samples, models.ForecastSample{
			TimestampUTC:            ts.UTC(),
			WaveHeight:              h.WaveHeight.pick(),
			WaveDirection:           h.WaveDirection.pick(),
			WavePeriod:              h.WavePeriod.pick(),
			SwellHeight:             h.SwellHeight.pick(),
			SwellDirection:          h.SwellDirection.pick(),
			SwellPeriod:             h.SwellPeriod.pick(),
			SecondarySwellHeight:    h.SecondarySwellHeight.pick(),
			SecondarySwellDirection: h.SecondarySwellDirection.pick(),
			SecondarySwellPeriod:    h.SecondarySwellPeriod.pick(),
			WindSpeed:               h.WindSpeed.pick(),
			WindDirection:           h.WindDirection.pick(),
			WaterTemperature:        h.WaterTemperature.pick(),
			AirTemperature:          h.AirTemperature.pick(),
			CurrentSpeed:            h.CurrentSpeed.pick(),
			CurrentDirection:        h.CurrentDirection.pick(),
			SeaLevel:                h.SeaLevel.pick(),
		})
	}
	return samples, nil
}

type tideEntry struct {
	Time   string  `json:"time"`
	Type   string  `json:"type"`
	Height float64 `json:"height"`
}

type tideResponse struct {
	Data []tideEntry `json:"data"`
}

// GetTideExtremes retrieves the predicted high/low tide events for a
// coordinate within [start, end].
func (c *Client) GetTideExtremes(ctx context.Context, lat, lng float64, start, end time.Time) ([]models.TideExtreme, error) {
	params := url.Values{}
	params.Add("lat", formatCoord(lat))
	params.Add("lng", formatCoord(lng))
	params.Add("start", strconv.FormatInt(start.Unix(), 10))
	params.Add("end", strconv.FormatInt(end.Unix(), 10))

	var decoded tideResponse
	if err := c.get(ctx, "/tide/extremes/point", params, &decoded); err != nil {
		return nil, err
	}

	extremes := make([]models.TideExtreme, 0, len(decoded.Data))
	for _, e := range decoded.Data {
		ts, err := time.Parse(time.RFC3339, e.Time)
		if err != nil {
			continue
		}
		var typ models.TideType
		switch strings.ToLower(e.Type) {
		case "high":
			typ = models.TideHigh
		case "low":
			typ = models.TideLow
		default:
			continue // Unknown extreme types are dropped, not guessed at
		}
		extremes = append(extremes, models.TideExtreme{
			TimestampUTC: ts.UTC(),
			Type:         typ,
			Height:       e.Height,
		})
	}
	return extremes, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
