package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmotta/surfcast/internal/forecast"
	"github.com/jmotta/surfcast/internal/models"
	"github.com/jmotta/surfcast/internal/recommend"
	"github.com/jmotta/surfcast/internal/spots"
)

// loadSpots reads the saved spots from the database
func loadSpots(repo *spots.Repository) tea.Cmd {
	return func() tea.Msg {
		list, err := repo.ListSpots()
		return spotsLoadedMsg{spots: list, err: err}
	}
}

// fetchRecommendations scores the selected spot's forecast window and loads
// the day's tide extremes for display.
func fetchRecommendations(svc *recommend.Service, fcRepo *forecast.Repository, spot models.Spot, level models.SurfLevel, dayOffset int) tea.Cmd {
	return func() tea.Msg {
		recs, err := svc.Recommend(recommend.Request{
			SpotIDs:   []int64{spot.ID},
			SurfLevel: level,
			DayOffset: dayOffset,
			StartTime: "00:00",
			EndTime:   "23:59",
		})
		if err != nil {
			return recommendationsMsg{err: err}
		}

		// Pull the surrounding days too so paging stays warm, then narrow
		// the pane to the selected date.
		day := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, dayOffset)
		extremes, err := fcRepo.TideExtremesForSpot(spot.ID, day.AddDate(0, 0, -1), day.AddDate(0, 0, 2))
		if err != nil {
			return recommendationsMsg{err: err}
		}

		return recommendationsMsg{recommendations: recs, extremes: models.ExtremesForDay(extremes, day)}
	}
}
