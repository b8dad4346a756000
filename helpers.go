package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncate cuts s to width terminal cells, padding with spaces if shorter
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// formatMemory renders a byte count as whole megabytes, switching to
// gigabytes with one decimal above 1024 MB.
func formatMemory(bytes uint64) string {
	mb := bytes / 1024 / 1024
	if mb > 1024 {
		return fmt.Sprintf("%.1f GB", float64(mb)/1024)
	}
	return fmt.Sprintf("%d MB", mb)
}

// formatCPU renders a CPU percentage with one decimal.
func formatCPU(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// cpuStyle picks the colour for a CPU cell.
func cpuStyle(percent float64) lipgloss.Style {
	switch {
	case percent > 50:
		return cpuHighStyle
	case percent > 10:
		return cpuMediumStyle
	default:
		return cpuLowStyle
	}
}
