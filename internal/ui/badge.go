package ui

import "github.com/alexisbeaulieu97/luxe/internal/theme"

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgeAccent
	BadgeMuted
)

// Badge is a small inline label such as a match score.
type Badge struct {
	text    string
	variant BadgeVariant
}

func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(v BadgeVariant) *Badge {
	b.variant = v
	return b
}

func (b *Badge) Text() string {
	return b.text
}

func (b *Badge) ViewWithContext(ctx RenderContext) string {
	text := " " + theme.Sanitize(b.text) + " "
	switch b.variant {
	case BadgeAccent:
		return ctx.Styles.Accent.Reverse(true).Render(text)
	case BadgeMuted:
		return ctx.Styles.Muted.Render(text)
	default:
		return ctx.Styles.Inverse.UnsetPadding().Render(text)
	}
}

// AccentBadge creates an accent badge.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeAccent)
}
