package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jmotta/surfcast/internal/forecast"
	"github.com/jmotta/surfcast/internal/spots"
	"github.com/jmotta/surfcast/internal/stormglass"
)

func main() {
	days := flag.Int("days", 3, "Number of days of forecast to fetch, starting today")
	spotName := flag.String("spot", "", "Fetch a single spot by name (default: all saved spots)")
	flag.Parse()

	// A missing .env is fine; the key may come from the environment directly.
	_ = godotenv.Load()

	apiKey := os.Getenv("STORMGLASS_API_KEY")
	if apiKey == "" {
		fmt.Println("Error: STORMGLASS_API_KEY is not set (set it in the environment or a .env file)")
		os.Exit(1)
	}

	spotRepo := spots.NewRepository()
	fcRepo := forecast.NewRepository()
	client := stormglass.NewClient(apiKey)

	saved, err := spotRepo.ListSpots()
	if err != nil {
		fmt.Printf("Error listing spots: %v\n", err)
		os.Exit(1)
	}
	if *spotName != "" {
		kept := saved[:0]
		for _, s := range saved {
			if s.Name == *spotName {
				kept = append(kept, s)
			}
		}
		saved = kept
	}
	if len(saved) == 0 {
		fmt.Println("No spots to fetch. Register one with the addspot command first.")
		os.Exit(1)
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, *days)

	ctx := context.Background()
	var failures int
	for _, spot := range saved {
		fmt.Printf("Fetching %s (%.4f, %.4f)...\n", spot.Name, spot.Latitude, spot.Longitude)

		samples, err := client.GetPointForecast(ctx, spot.Latitude, spot.Longitude, start, end)
		if err != nil {
			fmt.Printf("  forecast fetch failed: %v\n", err)
			failures++
			continue
		}
		for i := range samples {
			samples[i].SpotID = spot.ID
		}
		if err := fcRepo.UpsertSamples(samples); err != nil {
			fmt.Printf("  saving forecast failed: %v\n", err)
			failures++
			continue
		}

		extremes, err := client.GetTideExtremes(ctx, spot.Latitude, spot.Longitude, start, end)
		if err != nil {
			fmt.Printf("  tide fetch failed: %v\n", err)
			failures++
			continue
		}
		for i := range extremes {
			extremes[i].SpotID = spot.ID
		}
		if err := fcRepo.UpsertTideExtremes(extremes); err != nil {
			fmt.Printf("  saving tides failed: %v\n", err)
			failures++
			continue
		}

		fmt.Printf("  stored %d hours and %d tide events\n", len(samples), len(extremes))
	}

	if failures > 0 {
		os.Exit(1)
	}
}
