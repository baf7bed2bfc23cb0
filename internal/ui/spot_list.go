package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/jmotta/surfcast/internal/models"
)

// spotItem wraps a Spot for use in a list
type spotItem struct {
	spot models.Spot
}

// FilterValue implements list.Item
func (s spotItem) FilterValue() string {
	return s.spot.Name
}

// Title implements list.DefaultItem
func (s spotItem) Title() string {
	return s.spot.Name
}

// Description implements list.DefaultItem
func (s spotItem) Description() string {
	desc := fmt.Sprintf("%.4f, %.4f", s.spot.Latitude, s.spot.Longitude)
	if s.spot.Timezone != "" {
		desc += fmt.Sprintf(" • %s", s.spot.Timezone)
	}
	return desc
}

// createSpotList creates a list.Model from saved spots
func createSpotList(spotsList []models.Spot, width, height int) list.Model {
	items := make([]list.Item, len(spotsList))
	for i, spot := range spotsList {
		items[i] = spotItem{spot: spot}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Surf Spot"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}
