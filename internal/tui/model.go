// Package tui is the terminal front-end of the dashboard. All state changes
// happen inside Update, which bubbletea runs on a single goroutine; feed
// requests run as commands and report back as messages.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/quake-watch/internal/dashboard"
	"github.com/couchcryptid/quake-watch/internal/domain"
)

type quakesLoadedMsg struct {
	events []domain.SeismicEvent
	err    error
}

type weatherLoadedMsg struct {
	result dashboard.WeatherResult
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx    context.Context
	dash   *dashboard.Dashboard
	loader *dashboard.Loader

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	cursor int
	width  int
}

// New creates the terminal model. ctx bounds every feed request the model
// issues.
func New(ctx context.Context, dash *dashboard.Dashboard, loader *dashboard.Loader) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6"))

	return Model{
		ctx:     ctx,
		dash:    dash,
		loader:  loader,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		width:   80,
	}
}

// Init starts the one-shot event list load.
func (m Model) Init() tea.Cmd {
	m.loader.Begin()
	return tea.Batch(m.spinner.Tick, m.fetchQuakes())
}

func (m Model) fetchQuakes() tea.Cmd {
	return func() tea.Msg {
		events, err := m.loader.Fetch(m.ctx)
		return quakesLoadedMsg{events: events, err: err}
	}
}

func (m Model) fetchWeather(req dashboard.WeatherRequest) tea.Cmd {
	return func() tea.Msg {
		return weatherLoadedMsg{result: m.dash.FetchWeather(m.ctx, req)}
	}
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case quakesLoadedMsg:
		m.loader.Apply(msg.events, msg.err)
		m.cursor = 0
		return m, nil

	case weatherLoadedMsg:
		m.dash.ApplyWeather(msg.result)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.dash.List().Items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Lower):
		m.stepThreshold(-1)

	case key.Matches(msg, m.keys.Raise):
		m.stepThreshold(1)

	case key.Matches(msg, m.keys.Open):
		items := m.dash.List().Items
		if m.cursor >= len(items) {
			return m, nil
		}
		req, ok := m.dash.Select(items[m.cursor].ID)
		if !ok {
			return m, nil
		}
		return m, m.fetchWeather(req)

	case key.Matches(msg, m.keys.Close):
		m.dash.Close()
	}

	return m, nil
}

// stepThreshold changes the filter and keeps the cursor on the same event
// when it is still listed.
func (m *Model) stepThreshold(n int) {
	var current string
	if items := m.dash.List().Items; m.cursor < len(items) {
		current = items[m.cursor].ID
	}

	m.dash.StepThreshold(n)

	items := m.dash.List().Items
	m.cursor = 0
	for i, it := range items {
		if it.ID == current {
			m.cursor = i
			return
		}
	}
}
