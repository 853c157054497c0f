package main

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("33")
	colorMuted  = lipgloss.Color("245")
	colorGood   = lipgloss.Color("40")
	colorBad    = lipgloss.Color("160")
	colorWarn   = lipgloss.Color("214")
	colorLight  = lipgloss.Color("255")
)

var (
	bold = lipgloss.NewStyle().Bold(true)

	titleStyle  = bold.Foreground(colorAccent)
	infoStyle   = lipgloss.NewStyle().Foreground(colorMuted).MarginLeft(2)
	headerStyle = bold.Foreground(colorLight).Background(colorAccent)
	rowStyle    = lipgloss.NewStyle()

	checkStyle = lipgloss.NewStyle().Foreground(colorGood)
	errorStyle = bold.Foreground(colorBad)

	// Matrix cells.
	passedStyle  = lipgloss.NewStyle().Foreground(colorGood)
	failedStyle  = lipgloss.NewStyle().Foreground(colorBad)
	skippedStyle = lipgloss.NewStyle().Foreground(colorWarn)
)
