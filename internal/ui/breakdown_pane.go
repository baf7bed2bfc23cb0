package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmotta/surfcast/internal/models"
)

const breakdownBarWidth = 10

// renderBreakdownPane renders the per-criterion scores for the highlighted
// hour, best criteria first.
func (m Model) renderBreakdownPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Breakdown"))
	content.WriteString("\n\n")

	if m.cursor >= len(m.recommendations) {
		content.WriteString(mutedStyle.Render("No hour selected"))
		return paneStyle.Width(width).Render(content.String())
	}

	breakdown := m.recommendations[m.cursor].Score.Breakdown
	if len(breakdown) == 0 {
		content.WriteString(mutedStyle.Render("Not ratable: no wave height data"))
		return paneStyle.Width(width).Render(content.String())
	}

	criteria := make([]models.Criterion, 0, len(breakdown))
	for c := range breakdown {
		criteria = append(criteria, c)
	}
	sort.Slice(criteria, func(i, j int) bool {
		if breakdown[criteria[i]] != breakdown[criteria[j]] {
			return breakdown[criteria[i]] > breakdown[criteria[j]]
		}
		return criteria[i] < criteria[j]
	})

	for _, c := range criteria {
		score := breakdown[c]
		label := strings.ReplaceAll(string(c), "_", " ")

		// Interference is a signed modifier, not a 0-100 rating.
		if c == models.CriterionSwellInterference {
			content.WriteString(fmt.Sprintf("%s %s\n",
				labelStyle.Width(22).Render(label),
				valueStyle.Render(fmt.Sprintf("%+.1f", score))))
			continue
		}

		content.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Width(22).Render(label),
			scoreBar(score),
			scoreStyle(score).Render(fmt.Sprintf("%5.1f", score))))
	}

	return paneStyle.Width(width).Render(content.String())
}

// scoreBar renders a 0-100 score as a fixed-width bar
func scoreBar(score float64) string {
	filled := int(score/100*breakdownBarWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > breakdownBarWidth {
		filled = breakdownBarWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", breakdownBarWidth-filled)
	return scoreStyle(score).Render(bar)
}
