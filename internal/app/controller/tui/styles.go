package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5b21b6", Dark: "#a78bfa"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	colorError  = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
	colorOK     = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle   = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorMuted)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	busyStyle     = lipgloss.NewStyle().Faint(true)
	formStyle     = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(colorAccent)
	labelStyle    = lipgloss.NewStyle().Width(14).Foreground(colorMuted)
	invalidStyle  = lipgloss.NewStyle().Foreground(colorError)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)
