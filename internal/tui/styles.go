package tui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

const (
	brand        = "LUXE VISION"
	brandTagline = "AI-powered premium fashion search"
)

var errNoService = errors.New("no service configured")

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	navItemStyle   = lipgloss.NewStyle().PaddingRight(2)
	navActiveStyle = lipgloss.NewStyle().PaddingRight(2).Bold(true).Underline(true)

	cursorStyle = lipgloss.NewStyle().Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	sectionGap = lipgloss.NewStyle().MarginTop(1)
)
