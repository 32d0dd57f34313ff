package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luxe/internal/theme"
)

// AlertVariant selects the alert icon and border colour.
type AlertVariant int

const (
	AlertInfo AlertVariant = iota
	AlertWarning
	AlertError
)

var (
	warningColor = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6AD55"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#C53030", Dark: "#FC8181"}
)

// Alert displays a transient notification.
type Alert struct {
	message string
	title   string
	variant AlertVariant
}

func NewAlert(message string) *Alert {
	return &Alert{message: message}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(v AlertVariant) *Alert {
	a.variant = v
	return a
}

// WithTitle adds a bold first line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

func (a *Alert) Message() string {
	return a.message
}

func (a *Alert) ViewWithContext(ctx RenderContext) string {
	icon := "ℹ"
	style := ctx.Styles.Border
	switch a.variant {
	case AlertWarning:
		icon = "⚠"
		style = style.BorderForeground(warningColor)
	case AlertError:
		icon = "✗"
		style = style.BorderForeground(errorColor)
	}

	body := icon + " " + theme.Sanitize(a.message)
	if a.title != "" {
		body = ctx.Styles.Title.Render(theme.Sanitize(a.title)) + "\n" + body
	}
	if ctx.Width > 4 {
		style = style.MaxWidth(ctx.Width)
	}
	return style.Render(body)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertError)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertWarning)
}
