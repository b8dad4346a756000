package main

import "github.com/charmbracelet/lipgloss"

// UI styles for the TUI interface
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DCFFF"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))

	// header cells: the active sort column is green, the rest yellow
	activeHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#9ECE6A"))

	inactiveHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#E0AF68"))

	selectedStyle = lipgloss.NewStyle().
			Reverse(true).
			Foreground(lipgloss.Color("#7DCFFF"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c0c0"))

	cpuHighStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	cpuMediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE08A"))

	cpuLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ECE6A"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9a9a9a"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true)
)
