package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var mutedColor = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9A9A9A"}

// StyleSet is the lipgloss rendition of a Config.
type StyleSet struct {
	Page      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Accent    lipgloss.Style
	Inverse   lipgloss.Style
	Muted     lipgloss.Style
	Border    lipgloss.Style
	LogoAlign lipgloss.Position
	CardWidth int
}

// Styles derives the render styles for cfg. Empty colour tokens fall back to
// the terminal defaults.
func Styles(cfg Config) StyleSet {
	text := colorOf(cfg.Text)
	bg := colorOf(cfg.Background)
	accent := colorOf(cfg.Accent)

	title := lipgloss.NewStyle().Foreground(text).Bold(true)
	switch fontEmphasis(cfg.Font) {
	case emphasisItalic:
		title = title.Italic(true)
	case emphasisWide:
		title = title.Underline(true)
	}

	return StyleSet{
		Page:      lipgloss.NewStyle().Foreground(text).Background(bg),
		Title:     title,
		Subtitle:  lipgloss.NewStyle().Foreground(mutedColor),
		Accent:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Inverse:   lipgloss.NewStyle().Foreground(bg).Background(text).Bold(true).Padding(0, 2),
		Muted:     lipgloss.NewStyle().Foreground(mutedColor),
		Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(text).Padding(0, 1),
		LogoAlign: logoAlign(cfg.LogoPosition),
		CardWidth: cardWidth(cfg.CardSize),
	}
}

func colorOf(token string) lipgloss.TerminalColor {
	if strings.TrimSpace(token) == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(token)
}

func logoAlign(p LogoPosition) lipgloss.Position {
	switch p {
	case LogoCenter:
		return lipgloss.Center
	case LogoRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func cardWidth(size CardSize) int {
	switch size {
	case CardSmall:
		return 22
	case CardLarge:
		return 40
	default:
		return 30
	}
}

type emphasis int

const (
	emphasisNone emphasis = iota
	emphasisItalic
	emphasisWide
)

func fontEmphasis(font string) emphasis {
	switch strings.ToLower(strings.TrimSpace(font)) {
	case "playfair display", "cormorant":
		return emphasisItalic
	case "montserrat":
		return emphasisWide
	default:
		return emphasisNone
	}
}
