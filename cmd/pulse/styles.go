package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#333"))

	valueDealStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	volatileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	moderateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))
)
