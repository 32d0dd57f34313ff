package theme

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize removes escape sequences and control characters from user-supplied
// text so it renders as plain content. Newlines and tabs collapse to spaces.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}

// Sanitized returns a copy with every free-text field passed through Sanitize.
func (c Config) Sanitized() Config {
	c.Font = Sanitize(c.Font)
	c.HeroTitle = Sanitize(c.HeroTitle)
	c.HeroSubtitle = Sanitize(c.HeroSubtitle)
	c.SearchButtonLabel = Sanitize(c.SearchButtonLabel)
	c.TryonButtonLabel = Sanitize(c.TryonButtonLabel)
	return c
}
