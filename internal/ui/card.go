package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luxe/internal/theme"
)

// Card is a bordered block with an optional title, body lines and footer.
type Card struct {
	title  string
	lines  []string
	footer Renderable
	badge  *Badge
	width  int
}

func NewCard(title string, lines ...string) *Card {
	return &Card{title: title, lines: lines}
}

// WithBadge pins a badge to the top line.
func (c *Card) WithBadge(b *Badge) *Card {
	c.badge = b
	return c
}

// WithFooter adds a footer below the body.
func (c *Card) WithFooter(footer Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth overrides the theme's card width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

func (c *Card) ViewWithContext(ctx RenderContext) string {
	width := c.width
	if width <= 0 {
		width = ctx.Styles.CardWidth
	}

	var b strings.Builder
	if c.badge != nil {
		b.WriteString(c.badge.ViewWithContext(ctx))
		b.WriteString("\n")
	}
	if c.title != "" {
		b.WriteString(ctx.Styles.Title.Render(theme.Sanitize(c.title)))
	}
	for _, line := range c.lines {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Sanitize(line))
	}
	if c.footer != nil {
		b.WriteString("\n")
		b.WriteString(c.footer.ViewWithContext(ctx))
	}

	return ctx.Styles.Border.Width(width).Render(lipgloss.NewStyle().MaxWidth(width).Render(b.String()))
}
