package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorText     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F0F6FC"}
	ColorMuted    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#8B949E"}
	ColorPrimary  = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}
	ColorSelected = lipgloss.AdaptiveColor{Light: "#D4EDDA", Dark: "#238636"}
	ColorBorder   = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#30363D"}
	ColorAccent   = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#58A6FF"}
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	subtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	headlineStyle = lipgloss.NewStyle().Italic(true).Foreground(ColorAccent)

	stageStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
	selectedStageStyle = stageStyle.
				Background(ColorSelected).
				Bold(true).
				BorderForeground(ColorPrimary)

	panelStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	copiedStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	helpStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	overlayStyle = panelStyle.BorderForeground(ColorAccent)
	tagStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(ColorText).Background(ColorBorder)
	arrowStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	activeMode   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ColorPrimary)
	inactiveMode = lipgloss.NewStyle().Foreground(ColorMuted)
)
