package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/luxe/internal/upload"
	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, LogoLeft, cfg.LogoPosition)
	assert.Equal(t, CardMedium, cfg.CardSize)
	assert.Nil(t, cfg.CustomLogo)
	assert.Nil(t, cfg.HeroBanner)
	assert.NotEmpty(t, cfg.HeroTitle)
}

func TestSettersChangeExactlyOneField(t *testing.T) {
	base := Default()
	logo := &upload.Image{DataURL: "data:image/png;base64,AA==", MIMEType: "image/png", Name: "logo.png"}

	tests := []struct {
		name  string
		apply func(Config) Config
		check func(t *testing.T, got Config)
		reset func(Config) Config
	}{
		{
			name:  "background",
			apply: func(c Config) Config { return c.WithBackground("#000000") },
			check: func(t *testing.T, got Config) { assert.Equal(t, "#000000", got.Background) },
			reset: func(c Config) Config { c.Background = base.Background; return c },
		},
		{
			name:  "text",
			apply: func(c Config) Config { return c.WithText("#FFFFFF") },
			check: func(t *testing.T, got Config) { assert.Equal(t, "#FFFFFF", got.Text) },
			reset: func(c Config) Config { c.Text = base.Text; return c },
		},
		{
			name:  "accent",
			apply: func(c Config) Config { return c.WithAccent("#3A86FF") },
			check: func(t *testing.T, got Config) { assert.Equal(t, "#3A86FF", got.Accent) },
			reset: func(c Config) Config { c.Accent = base.Accent; return c },
		},
		{
			name:  "font",
			apply: func(c Config) Config { return c.WithFont("Inter") },
			check: func(t *testing.T, got Config) { assert.Equal(t, "Inter", got.Font) },
			reset: func(c Config) Config { c.Font = base.Font; return c },
		},
		{
			name:  "logo position",
			apply: func(c Config) Config { return c.WithLogoPosition(LogoRight) },
			check: func(t *testing.T, got Config) { assert.Equal(t, LogoRight, got.LogoPosition) },
			reset: func(c Config) Config { c.LogoPosition = base.LogoPosition; return c },
		},
		{
			name:  "card size",
			apply: func(c Config) Config { return c.WithCardSize(CardLarge) },
			check: func(t *testing.T, got Config) { assert.Equal(t, CardLarge, got.CardSize) },
			reset: func(c Config) Config { c.CardSize = base.CardSize; return c },
		},
		{
			name:  "custom logo",
			apply: func(c Config) Config { return c.WithCustomLogo(logo) },
			check: func(t *testing.T, got Config) {
				require.NotNil(t, got.CustomLogo)
				assert.Equal(t, "logo.png", got.CustomLogo.Name)
			},
			reset: func(c Config) Config { c.CustomLogo = nil; return c },
		},
		{
			name:  "hero banner",
			apply: func(c Config) Config { return c.WithHeroBanner(logo) },
			check: func(t *testing.T, got Config) { require.NotNil(t, got.HeroBanner) },
			reset: func(c Config) Config { c.HeroBanner = nil; return c },
		},
		{
			name:  "hero title",
			apply: func(c Config) Config { return c.WithHeroTitle("New season") },
			check: func(t *testing.T, got Config) { assert.Equal(t, "New season", got.HeroTitle) },
			reset: func(c Config) Config { c.HeroTitle = base.HeroTitle; return c },
		},
		{
			name:  "hero subtitle",
			apply: func(c Config) Config { return c.WithHeroSubtitle("Fresh picks") },
			check: func(t *testing.T, got Config) { assert.Equal(t, "Fresh picks", got.HeroSubtitle) },
			reset: func(c Config) Config { c.HeroSubtitle = base.HeroSubtitle; return c },
		},
		{
			name:  "search label",
			apply: func(c Config) Config { return c.WithSearchButtonLabel("Find") },
			check: func(t *testing.T, got Config) { assert.Equal(t, "Find", got.SearchButtonLabel) },
			reset: func(c Config) Config { c.SearchButtonLabel = base.SearchButtonLabel; return c },
		},
		{
			name:  "tryon label",
			apply: func(c Config) Config { return c.WithTryonButtonLabel("Fit") },
			check: func(t *testing.T, got Config) { assert.Equal(t, "Fit", got.TryonButtonLabel) },
			reset: func(c Config) Config { c.TryonButtonLabel = base.TryonButtonLabel; return c },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.apply(base)
			tt.check(t, got)
			assert.Equal(t, base, tt.reset(got), "other fields must be unchanged")
			assert.Equal(t, Default(), base, "receiver must not be mutated")
		})
	}
}

func TestWithCustomLogoNilRemoves(t *testing.T) {
	img := &upload.Image{DataURL: "data:image/png;base64,AA==", Name: "logo.png"}
	withLogo := Default().WithCustomLogo(img)
	require.NotNil(t, withLogo.CustomLogo)

	removed := withLogo.WithCustomLogo(nil)
	assert.Nil(t, removed.CustomLogo)
	assert.NotNil(t, withLogo.CustomLogo)

	img.Name = "changed.png"
	assert.Equal(t, "logo.png", withLogo.CustomLogo.Name)
}

func TestParseEnums(t *testing.T) {
	pos, err := ParseLogoPosition(" Center ")
	require.NoError(t, err)
	assert.Equal(t, LogoCenter, pos)

	_, err = ParseLogoPosition("top")
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "logo_position", vErr.Field)

	size, err := ParseCardSize("large")
	require.NoError(t, err)
	assert.Equal(t, CardLarge, size)

	_, err = ParseCardSize("huge")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "card_size", vErr.Field)
}

func TestValidateRejectsUnknownEnums(t *testing.T) {
	cfg := Default()
	cfg.CardSize = "huge"

	err := cfg.Validate()
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "card_size", vErr.Field)
	assert.Contains(t, vErr.Message, "huge")

	cfg = Default()
	cfg.LogoPosition = "top"
	require.ErrorAs(t, cfg.Validate(), &vErr)
	assert.Equal(t, "logo_position", vErr.Field)
}

func TestWithDefaultsKeepsSetFields(t *testing.T) {
	cfg := Config{Accent: "#3A86FF", CardSize: CardSmall}.WithDefaults()
	assert.Equal(t, "#3A86FF", cfg.Accent)
	assert.Equal(t, CardSmall, cfg.CardSize)
	assert.Equal(t, Default().Background, cfg.Background)
	assert.Equal(t, Default().HeroTitle, cfg.HeroTitle)
	require.NoError(t, cfg.Validate())
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "\x1b[31mred\x1b[0m", want: "red"},
		{in: "two\nlines", want: "two lines"},
		{in: "bell\a", want: "bell"},
		{in: "Найдите вещь", want: "Найдите вещь"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in))
	}

	cfg := Default().WithHeroTitle("\x1b[1mBold\x1b[0m").Sanitized()
	assert.Equal(t, "Bold", cfg.HeroTitle)
}

func TestStyles(t *testing.T) {
	set := Styles(Default().WithLogoPosition(LogoCenter).WithCardSize(CardLarge))
	assert.Equal(t, lipgloss.Center, set.LogoAlign)
	assert.Equal(t, 40, set.CardWidth)

	small := Styles(Default().WithCardSize(CardSmall).WithLogoPosition(LogoRight))
	assert.Equal(t, lipgloss.Right, small.LogoAlign)
	assert.Less(t, small.CardWidth, set.CardWidth)

	assert.True(t, Styles(Default().WithFont("Cormorant")).Title.GetItalic())
	assert.False(t, Styles(Default().WithFont("Inter")).Title.GetItalic())
	assert.NotPanics(t, func() { Styles(Config{}) })
}
