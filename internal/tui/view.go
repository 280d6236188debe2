package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/quake-watch/internal/dashboard"
)

// View renders the list, the detail panel when one is open, and the key help.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recent Earthquakes"))
	b.WriteString("\n\n")

	list := m.dash.List()
	body := m.renderList(list)
	if detail, open := m.dash.Detail(); open {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderDetail(detail))
	}
	b.WriteString(body)

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderList(v dashboard.ListView) string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Minimum magnitude: " + v.Threshold))
	b.WriteString("\n\n")

	switch v.Status {
	case dashboard.ListLoading:
		b.WriteString(m.spinner.View() + " " + v.Message)
		return b.String()
	case dashboard.ListFailed:
		b.WriteString(errorStyle.Render(v.Message))
		return b.String()
	case dashboard.ListEmpty:
		b.WriteString(dimStyle.Render(v.Message))
		return b.String()
	}

	for i, it := range v.Items {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		mag := severityStyle(it.Severity).Render(fmt.Sprintf("M %4s", it.Magnitude))
		fmt.Fprintf(&b, "%s%s  %s\n", marker, mag, it.Place)
		fmt.Fprintf(&b, "         %s\n", dimStyle.Render(it.Time))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderDetail(v dashboard.DetailView) string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(v.Place))
	b.WriteString("\n")
	if v.Title != "" {
		b.WriteString(dimStyle.Render(v.Title) + "\n")
	}
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("Magnitude", severityStyle(v.Severity).Render(v.Magnitude))
	row("Depth", v.Depth)
	row("Time", v.Time)
	row("Coordinates", v.Coordinates)

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Weather"))
	b.WriteString("\n")
	switch v.Weather.Status {
	case dashboard.WeatherLoading:
		b.WriteString(m.spinner.View() + " " + v.Weather.Message + "\n")
	case dashboard.WeatherFailed:
		b.WriteString(errorStyle.Render(v.Weather.Message) + "\n")
	default:
		row("Condition", v.Weather.Condition)
		row("Temperature", v.Weather.Temperature)
		row("Wind Speed", v.Weather.WindSpeed)
	}

	if v.DetailURL != "" {
		b.WriteString("\n" + dimStyle.Render(v.DetailURL) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("esc: Close"))

	return detailBoxStyle.Render(b.String())
}
