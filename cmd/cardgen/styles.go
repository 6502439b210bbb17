package main

import "github.com/charmbracelet/lipgloss"

var (
	// BrandColor matches the card header red
	BrandColor   = lipgloss.Color("#c8102e")
	SuccessColor = lipgloss.Color("#2e7d32")
	WarningColor = lipgloss.Color("#f9a825")
	SubtleColor  = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BrandColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BrandColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle frames the pricing warning list
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BrandColor).
			Padding(0, 1)
)
