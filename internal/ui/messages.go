package ui

import (
	"github.com/jmotta/surfcast/internal/models"
)

// Message types for async operations

// spotsLoadedMsg is sent when the saved spots have been read from the database
type spotsLoadedMsg struct {
	spots []models.Spot
	err   error
}

// recommendationsMsg is sent when a spot's window has been scored
type recommendationsMsg struct {
	recommendations []models.Recommendation
	extremes        []models.TideExtreme
	err             error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}
