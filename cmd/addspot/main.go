package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jmotta/surfcast/internal/compass"
	"github.com/jmotta/surfcast/internal/models"
	"github.com/jmotta/surfcast/internal/spots"
)

func main() {
	name := flag.String("name", "", "Spot name (required)")
	lat := flag.Float64("lat", 0, "Spot latitude (required unless -delete)")
	lng := flag.Float64("lng", 0, "Spot longitude (required unless -delete)")
	tz := flag.String("tz", "", "IANA timezone for display (e.g. America/Sao_Paulo)")
	del := flag.Bool("delete", false, "Remove the named spot instead of saving it")

	level := flag.String("level", "", "Attach a preference profile for this surf level (beginner, intermediate, advanced)")
	minWave := flag.Float64("min-wave", 0, "Minimum rideable wave height in meters")
	idealWave := flag.Float64("ideal-wave", 0, "Ideal wave height in meters")
	maxWave := flag.Float64("max-wave", 0, "Maximum rideable wave height in meters")
	idealWind := flag.Float64("ideal-wind", 0, "Ideal wind speed in m/s")
	maxWind := flag.Float64("max-wind", 0, "Wind speed in m/s that makes the spot unsurfable")
	swellDirs := flag.String("swell-dirs", "", "Preferred swell directions, comma separated (e.g. S,SSW)")
	windDirs := flag.String("wind-dirs", "", "Preferred wind directions, comma separated (offshore quadrant)")
	tidePhases := flag.String("tides", "", "Preferred tide phases, comma separated (low, high, rising, falling, mid)")
	flag.Parse()

	if *name == "" {
		fmt.Println("Error: -name is required")
		flag.Usage()
		os.Exit(1)
	}

	repo := spots.NewRepository()

	if *del {
		if err := repo.DeleteSpot(*name); err != nil {
			fmt.Printf("Error deleting spot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted spot %s\n", *name)
		return
	}

	if *lat == 0 || *lng == 0 {
		fmt.Println("Error: -lat and -lng are required")
		flag.Usage()
		os.Exit(1)
	}

	spot := &models.Spot{
		Name:      *name,
		Latitude:  *lat,
		Longitude: *lng,
		Timezone:  *tz,
	}
	if err := repo.SaveSpot(spot); err != nil {
		fmt.Printf("Error saving spot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved spot %s (id %d)\n", spot.Name, spot.ID)

	if *level == "" {
		return
	}

	surfLevel := models.SurfLevel(*level)
	switch surfLevel {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
	default:
		fmt.Printf("Error: unknown surf level %q\n", *level)
		os.Exit(1)
	}

	pref := models.SpotPreference{
		SpotID:    spot.ID,
		SurfLevel: surfLevel,
		WaveHeight: models.RangeIdeal{
			Min:   flagValue(minWave),
			Ideal: flagValue(idealWave),
			Max:   flagValue(maxWave),
		},
		WindSpeed: models.RangeIdeal{
			Ideal: flagValue(idealWind),
			Max:   flagValue(maxWind),
		},
	}

	var err error
	if pref.PreferredSwellDirections, err = parseSectors(*swellDirs); err != nil {
		fmt.Printf("Error in -swell-dirs: %v\n", err)
		os.Exit(1)
	}
	if pref.PreferredWindDirections, err = parseSectors(*windDirs); err != nil {
		fmt.Printf("Error in -wind-dirs: %v\n", err)
		os.Exit(1)
	}
	if pref.PreferredTidePhases, err = parsePhases(*tidePhases); err != nil {
		fmt.Printf("Error in -tides: %v\n", err)
		os.Exit(1)
	}

	if err := repo.SavePreference(pref); err != nil {
		fmt.Printf("Error saving preference: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s preference profile for %s\n", surfLevel, spot.Name)
}

// flagValue treats an unset (zero) flag as "no preference".
func flagValue(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

func parseSectors(s string) ([]compass.Sector, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []compass.Sector
	for _, part := range strings.Split(s, ",") {
		sec := compass.ParseSector(part)
		if sec == compass.SectorUnknown {
			return nil, fmt.Errorf("unknown compass sector %q", part)
		}
		out = append(out, sec)
	}
	return out, nil
}

func parsePhases(s string) ([]models.TidePhase, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []models.TidePhase
	for _, part := range strings.Split(s, ",") {
		phase := models.TidePhase(strings.ToLower(strings.TrimSpace(part)))
		switch phase {
		case models.PhaseLow, models.PhaseHigh, models.PhaseRising, models.PhaseFalling, models.PhaseMid:
			out = append(out, phase)
		default:
			return nil, fmt.Errorf("unknown tide phase %q", part)
		}
	}
	return out, nil
}
