package ui

import (
	"fmt"
	"strings"

	"github.com/jmotta/surfcast/internal/compass"
	"github.com/jmotta/surfcast/internal/models"
)

// renderResultsPane renders the ranked forecast hours for the selected day
func (m Model) renderResultsPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Best Hours"))
	content.WriteString("\n\n")

	if len(m.recommendations) == 0 {
		content.WriteString(mutedStyle.Render("No forecast stored for this day.\nRun fetchforecast to pull the latest window."))
		return paneStyle.Width(width).Render(content.String())
	}

	for i, rec := range m.recommendations {
		timeStr := rec.TimestampUTC.Format("15:04")
		score := rec.Score.Overall

		line := fmt.Sprintf("%s  %s  %s",
			timeStr,
			scoreStyle(score).Render(fmt.Sprintf("%5.1f", score)),
			mutedStyle.Render(summarizeConditions(rec)),
		)
		if i == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	return paneStyle.Width(width).Render(content.String())
}

// summarizeConditions builds the one-line condition summary shown per hour
func summarizeConditions(rec models.Recommendation) string {
	var parts []string
	if rec.WaveHeight != nil {
		parts = append(parts, fmt.Sprintf("%.1fm", *rec.WaveHeight))
	}
	if rec.WindSpeed != nil {
		wind := fmt.Sprintf("%.0f m/s", *rec.WindSpeed)
		if sector := compass.FromDegrees(rec.WindDirection); sector != compass.SectorUnknown {
			wind += fmt.Sprintf(" %s", sector)
		}
		parts = append(parts, wind)
	}
	if rec.Score.TidePhase != "" && rec.Score.TidePhase != models.PhaseUnknown {
		parts = append(parts, string(rec.Score.TidePhase))
	}
	return strings.Join(parts, " • ")
}
