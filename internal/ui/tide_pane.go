package ui

import (
	"fmt"
	"strings"

	"github.com/jmotta/surfcast/internal/models"
)

// renderTidePane renders the day's tide extremes
func (m Model) renderTidePane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Tides"))
	content.WriteString("\n\n")

	if len(m.extremes) == 0 {
		content.WriteString(mutedStyle.Render("No tide data available"))
		return paneStyle.Width(width).Render(content.String())
	}

	for _, event := range m.extremes {
		timeStr := event.TimestampUTC.Format("15:04")
		typeStr := "Low"
		if event.Type == models.TideHigh {
			typeStr = "High"
		}

		line := fmt.Sprintf("%s  %s  %.2f m\n",
			valueStyle.Render(timeStr),
			labelStyle.Width(4).Render(typeStr),
			event.Height)
		content.WriteString(line)
	}

	return paneStyle.Width(width).Render(content.String())
}
