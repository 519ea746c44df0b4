package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors that adjust to light and dark terminal themes.
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#0e7a0d", Dark: "#4ec94b"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6b6b6b", Dark: "#8a8a8a"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#0550ae", Dark: "#79b8ff"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)
