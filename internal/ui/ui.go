// Package ui provides small themed building blocks for the terminal screens.
// Components are built fluently and rendered against a RenderContext, so the
// same component renders differently as the theme changes.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luxe/internal/theme"
)

// Renderable is anything that can render itself into a context.
type Renderable interface {
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the active styles and available width.
type RenderContext struct {
	Styles theme.StyleSet
	Width  int
}

// NewContext derives a render context from a theme.
func NewContext(cfg theme.Config, width int) RenderContext {
	return RenderContext{Styles: theme.Styles(cfg), Width: width}
}

// WithWidth returns a copy with a different width.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// Text is plain, sanitized text.
type Text string

func (t Text) ViewWithContext(RenderContext) string {
	return theme.Sanitize(string(t))
}

// VStack renders children top to bottom, aligned left.
func VStack(ctx RenderContext, children ...Renderable) string {
	return lipgloss.JoinVertical(lipgloss.Left, render(ctx, children)...)
}

// HStack renders children side by side separated by gap spaces.
func HStack(ctx RenderContext, gap int, children ...Renderable) string {
	parts := render(ctx, children)
	if gap <= 0 || len(parts) < 2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	spaced := make([]string, 0, len(parts)*2-1)
	pad := lipgloss.NewStyle().Width(gap).Render("")
	for i, p := range parts {
		if i > 0 {
			spaced = append(spaced, pad)
		}
		spaced = append(spaced, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// Grid lays children out in rows that fit ctx.Width.
func Grid(ctx RenderContext, gap int, children ...Renderable) string {
	if len(children) == 0 {
		return ""
	}
	perRow := 1
	if cw := ctx.Styles.CardWidth; cw > 0 && ctx.Width > 0 {
		perRow = max(1, (ctx.Width+gap)/(cw+gap+2))
	}
	var rows []string
	for start := 0; start < len(children); start += perRow {
		end := min(start+perRow, len(children))
		rows = append(rows, HStack(ctx, gap, children[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func render(ctx RenderContext, children []Renderable) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		out = append(out, c.ViewWithContext(ctx))
	}
	return out
}
