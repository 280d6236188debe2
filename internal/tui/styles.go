package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/quake-watch/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6")).
			Background(lipgloss.Color("#282A36")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(14)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F1FA8C"))

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(0, 2).
			MarginLeft(2)

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555")),
		domain.SeverityMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB86C")),
		domain.SeverityLow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50FA7B")),
	}
)

func severityStyle(s domain.Severity) lipgloss.Style {
	if st, ok := severityStyles[s]; ok {
		return st
	}
	return lipgloss.NewStyle()
}
