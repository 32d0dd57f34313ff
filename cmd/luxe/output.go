package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/luxe/internal/theme"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// heading styles s only when w is a terminal, so piped output stays plain.
func heading(w io.Writer, s string) string {
	if !isTerminal(w) {
		return s
	}
	return headingStyle.Render(s)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// sanitizeCell strips escape sequences and control characters from remote text.
func sanitizeCell(s string) string {
	return theme.Sanitize(s)
}
