package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmotta/surfcast/internal/forecast"
	"github.com/jmotta/surfcast/internal/models"
	"github.com/jmotta/surfcast/internal/recommend"
	"github.com/jmotta/surfcast/internal/scoring"
	"github.com/jmotta/surfcast/internal/spots"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSpotList AppState = iota // Pick a saved surf spot
	StateLoading                  // Loading spots or scoring a forecast window
	StateResults                  // Ranked hours with breakdown and tides
	StateError                    // Error state
)

// maxDayOffset bounds how far ahead the day keys can page; provider
// forecasts rarely extend past a week.
const maxDayOffset = 6

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Session parameters
	level     models.SurfLevel
	dayOffset int

	// Spot selection
	spots        []models.Spot
	spotList     list.Model
	selectedSpot *models.Spot

	// Services
	spotRepo *spots.Repository
	fcRepo   *forecast.Repository
	svc      *recommend.Service

	// Results
	recommendations []models.Recommendation
	extremes        []models.TideExtreme
	cursor          int

	spinner spinner.Model
}

// NewModel creates a new application model. The level selects which stored
// preference profile scores the forecast; weights tune the aggregator.
func NewModel(level models.SurfLevel, weights scoring.Weights) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	engine := scoring.NewEngine(weights)

	return Model{
		state:    StateLoading,
		level:    level,
		spotRepo: spots.NewRepository(),
		fcRepo:   forecast.NewRepository(),
		svc:      recommend.NewService(engine),
		spinner:  s,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadSpots(m.spotRepo))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateSpotList {
			m.spotList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case spotsLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("loading spots: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		if len(msg.spots) == 0 {
			m.err = fmt.Errorf("no spots saved yet; add one with the addspot command")
			m.state = StateError
			return m, nil
		}
		m.spots = msg.spots
		m.spotList = createSpotList(msg.spots, m.width-4, m.height-10)
		m.state = StateSpotList
		return m, nil

	case recommendationsMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("scoring forecast: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.recommendations = msg.recommendations
		m.extremes = msg.extremes
		m.cursor = 0
		m.state = StateResults
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" || keyMsg.String() == "q" {
			return m, tea.Quit
		}

		switch m.state {
		case StateSpotList:
			return m.handleSpotList(msg)

		case StateResults:
			return m.handleResults(keyMsg)

		case StateError:
			// Any key returns to the spot list (except quit keys)
			m.err = nil
			m.state = StateLoading
			return m, tea.Batch(m.spinner.Tick, loadSpots(m.spotRepo))
		}
	}

	// Update appropriate component based on state
	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateSpotList:
		m.spotList, cmd = m.spotList.Update(msg)
	}

	return m, cmd
}

// handleSpotList handles input while picking a spot
func (m Model) handleSpotList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEnter {
			if item, ok := m.spotList.SelectedItem().(spotItem); ok {
				spot := item.spot
				m.selectedSpot = &spot
				m.dayOffset = 0
				m.state = StateLoading
				return m, tea.Batch(
					m.spinner.Tick,
					fetchRecommendations(m.svc, m.fcRepo, spot, m.level, m.dayOffset),
				)
			}
		}
	}

	m.spotList, cmd = m.spotList.Update(msg)
	return m, cmd
}

// handleResults handles input on the ranked results screen
func (m Model) handleResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.recommendations)-1 {
			m.cursor++
		}
	case "left", "h":
		if m.dayOffset > 0 {
			m.dayOffset--
			return m.refetch()
		}
	case "right", "l":
		if m.dayOffset < maxDayOffset {
			m.dayOffset++
			return m.refetch()
		}
	case "r":
		return m.refetch()
	case "s", "esc":
		m.state = StateSpotList
		m.selectedSpot = nil
		m.recommendations = nil
		m.extremes = nil
		m.cursor = 0
	}
	return m, nil
}

func (m Model) refetch() (tea.Model, tea.Cmd) {
	if m.selectedSpot == nil {
		return m, nil
	}
	m.state = StateLoading
	return m, tea.Batch(
		m.spinner.Tick,
		fetchRecommendations(m.svc, m.fcRepo, *m.selectedSpot, m.level, m.dayOffset),
	)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateSpotList:
		return m.viewSpotList()
	case StateResults:
		return m.viewResults()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	label := "Loading spots"
	if m.selectedSpot != nil {
		label = fmt.Sprintf("Scoring forecast for %s", m.selectedSpot.Name)
	}
	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		titleStyle.Render("🌊 Surfcast"),
		"",
		fmt.Sprintf("%s %s...", m.spinner.View(), label),
	)
}

// viewSpotList renders the spot selection list
func (m Model) viewSpotList() string {
	title := titleStyle.Render("🌊 Surfcast")
	subtitle := mutedStyle.Render(fmt.Sprintf("%d saved spots • scoring as %s", len(m.spots), m.level))

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • Q: Quit")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, subtitle)
	sections = append(sections, "")
	sections = append(sections, m.spotList.View())
	sections = append(sections, "")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var msg string
	if m.err != nil {
		msg = m.err.Error()
	} else {
		msg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return to the spot list • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", msg, "", help)
}

// viewResults renders the ranked results with breakdown and tide panes
func (m Model) viewResults() string {
	if m.selectedSpot == nil {
		return "No spot selected"
	}

	header := titleStyle.Render(fmt.Sprintf("🌊 %s", m.selectedSpot.Name))
	dayLabel := "Today"
	switch m.dayOffset {
	case 1:
		dayLabel = "Tomorrow"
	default:
		if m.dayOffset > 1 {
			dayLabel = fmt.Sprintf("+%d days", m.dayOffset)
		}
	}
	subtitle := mutedStyle.Render(fmt.Sprintf("%s • %s level", dayLabel, m.level))

	leftWidth := m.width/2 - 2
	rightWidth := m.width - leftWidth - 4
	if leftWidth < 30 {
		leftWidth = 30
	}
	if rightWidth < 24 {
		rightWidth = 24
	}

	left := m.renderResultsPane(leftWidth)
	right := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderBreakdownPane(rightWidth),
		m.renderTidePane(rightWidth),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	help := helpStyle.Render("↑/↓: Hour • ←/→: Day • S/Esc: Spots • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "", body, help)
}
