package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for CLI output.
var (
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
)
