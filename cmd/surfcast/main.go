package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmotta/surfcast/internal/models"
	"github.com/jmotta/surfcast/internal/scoring"
	"github.com/jmotta/surfcast/internal/ui"
)

func main() {
	level := flag.String("level", "intermediate", "Surf level profile to score with (beginner, intermediate, advanced)")
	weightsPath := flag.String("weights", "", "Path to a JSON file overriding the default criterion weights")
	flag.Parse()

	surfLevel := models.SurfLevel(*level)
	switch surfLevel {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
	default:
		fmt.Printf("Error: unknown surf level %q (use beginner, intermediate, or advanced)\n", *level)
		os.Exit(1)
	}

	weights := scoring.DefaultWeights()
	if *weightsPath != "" {
		var err error
		if weights, err = scoring.LoadWeightsFromFile(*weightsPath); err != nil {
			fmt.Printf("Error loading weights from %s: %v\n", *weightsPath, err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(ui.NewModel(surfLevel, weights), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
