package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luxe/internal/theme"
)

// Button is a visual call to action. Key bindings live in the caller.
type Button struct {
	label    string
	hint     string
	disabled bool
	primary  bool
}

func NewButton(label string) *Button {
	return &Button{label: label, primary: true}
}

// WithHint shows the key that triggers the button.
func (b *Button) WithHint(key string) *Button {
	b.hint = key
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Secondary renders the button outlined instead of filled.
func (b *Button) Secondary() *Button {
	b.primary = false
	return b
}

func (b *Button) Disabled() bool {
	return b.disabled
}

func (b *Button) Label() string {
	return b.label
}

func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := theme.Sanitize(b.label)
	if b.hint != "" {
		label = "[" + b.hint + "] " + label
	}

	var style lipgloss.Style
	switch {
	case b.disabled:
		style = ctx.Styles.Muted.Padding(0, 2).Faint(true)
	case b.primary:
		style = ctx.Styles.Inverse
	default:
		style = ctx.Styles.Title.UnsetBold().Padding(0, 2).Border(lipgloss.NormalBorder(), false, false, true, false)
	}
	return style.Render(label)
}
