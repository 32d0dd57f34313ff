// Package theme holds the customizer state applied to every screen. Config
// is a value type: every setter returns a modified copy and leaves the
// receiver untouched.
package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/luxe/internal/upload"
	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

// LogoPosition controls the horizontal placement of the brand mark.
type LogoPosition string

const (
	LogoLeft   LogoPosition = "left"
	LogoCenter LogoPosition = "center"
	LogoRight  LogoPosition = "right"
)

// LogoPositions lists the accepted positions in cycling order.
var LogoPositions = []LogoPosition{LogoLeft, LogoCenter, LogoRight}

// ParseLogoPosition validates a logo position choice.
func ParseLogoPosition(s string) (LogoPosition, error) {
	for _, p := range LogoPositions {
		if string(p) == strings.ToLower(strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", apperrors.NewValidationError("logo_position", fmt.Sprintf("%q is not one of left, center, right", s), nil)
}

// CardSize controls the width of result and feature cards.
type CardSize string

const (
	CardSmall  CardSize = "small"
	CardMedium CardSize = "medium"
	CardLarge  CardSize = "large"
)

// CardSizes lists the accepted sizes in cycling order.
var CardSizes = []CardSize{CardSmall, CardMedium, CardLarge}

// ParseCardSize validates a card size choice.
func ParseCardSize(s string) (CardSize, error) {
	for _, size := range CardSizes {
		if string(size) == strings.ToLower(strings.TrimSpace(s)) {
			return size, nil
		}
	}
	return "", apperrors.NewValidationError("card_size", fmt.Sprintf("%q is not one of small, medium, large", s), nil)
}

// Swatches are the colour tokens offered by the customizer.
var Swatches = []string{"#FFFFFF", "#000000", "#F5F0E8", "#1A1A1A", "#C9A96E", "#C9184A", "#2D6A4F", "#3A86FF"}

// Fonts are the font choices offered by the customizer.
var Fonts = []string{"Inter", "Playfair Display", "Cormorant", "Montserrat", "JetBrains Mono"}

// Config is the session-wide look of the page.
type Config struct {
	Background   string       `yaml:"background" json:"background"`
	Text         string       `yaml:"text" json:"text"`
	Accent       string       `yaml:"accent" json:"accent"`
	Font         string       `yaml:"font" json:"font"`
	LogoPosition LogoPosition `yaml:"logo_position" json:"logo_position" validate:"oneof=left center right"`
	CardSize     CardSize     `yaml:"card_size" json:"card_size" validate:"oneof=small medium large"`

	CustomLogo *upload.Image `yaml:"custom_logo,omitempty" json:"custom_logo,omitempty"`
	HeroBanner *upload.Image `yaml:"hero_banner,omitempty" json:"hero_banner,omitempty"`

	HeroTitle         string `yaml:"hero_title" json:"hero_title"`
	HeroSubtitle      string `yaml:"hero_subtitle" json:"hero_subtitle"`
	SearchButtonLabel string `yaml:"search_button_label" json:"search_button_label"`
	TryonButtonLabel  string `yaml:"tryon_button_label" json:"tryon_button_label"`
}

// Default returns the stock LUXE VISION theme.
func Default() Config {
	return Config{
		Background:        "#FFFFFF",
		Text:              "#000000",
		Accent:            "#C9A96E",
		Font:              "Cormorant",
		LogoPosition:      LogoLeft,
		CardSize:          CardMedium,
		HeroTitle:         "Find the perfect piece",
		HeroSubtitle:      "AI-powered search by photo and virtual try-on. Premium quality. Instant results.",
		SearchButtonLabel: "Start search",
		TryonButtonLabel:  "Try on",
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks the enumerated fields. Colours, font and copy are free-form.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.NewValidationError(fieldName(fe.Field()), fmt.Sprintf("%q must be one of %s", fe.Value(), fe.Param()), err)
		}
		return apperrors.NewValidationError("theme", err.Error(), err)
	}
	return nil
}

// WithDefaults fills empty fields from Default, keeping everything set.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.Background == "" {
		c.Background = d.Background
	}
	if c.Text == "" {
		c.Text = d.Text
	}
	if c.Accent == "" {
		c.Accent = d.Accent
	}
	if c.Font == "" {
		c.Font = d.Font
	}
	if c.LogoPosition == "" {
		c.LogoPosition = d.LogoPosition
	}
	if c.CardSize == "" {
		c.CardSize = d.CardSize
	}
	if c.HeroTitle == "" {
		c.HeroTitle = d.HeroTitle
	}
	if c.HeroSubtitle == "" {
		c.HeroSubtitle = d.HeroSubtitle
	}
	if c.SearchButtonLabel == "" {
		c.SearchButtonLabel = d.SearchButtonLabel
	}
	if c.TryonButtonLabel == "" {
		c.TryonButtonLabel = d.TryonButtonLabel
	}
	return c
}

func (c Config) WithBackground(token string) Config {
	c.Background = token
	return c
}

func (c Config) WithText(token string) Config {
	c.Text = token
	return c
}

func (c Config) WithAccent(token string) Config {
	c.Accent = token
	return c
}

func (c Config) WithFont(font string) Config {
	c.Font = font
	return c
}

func (c Config) WithLogoPosition(p LogoPosition) Config {
	c.LogoPosition = p
	return c
}

func (c Config) WithCardSize(size CardSize) Config {
	c.CardSize = size
	return c
}

// WithCustomLogo sets the logo; nil removes it.
func (c Config) WithCustomLogo(img *upload.Image) Config {
	c.CustomLogo = cloneImage(img)
	return c
}

// WithHeroBanner sets the banner; nil removes it.
func (c Config) WithHeroBanner(img *upload.Image) Config {
	c.HeroBanner = cloneImage(img)
	return c
}

func (c Config) WithHeroTitle(s string) Config {
	c.HeroTitle = s
	return c
}

func (c Config) WithHeroSubtitle(s string) Config {
	c.HeroSubtitle = s
	return c
}

func (c Config) WithSearchButtonLabel(s string) Config {
	c.SearchButtonLabel = s
	return c
}

func (c Config) WithTryonButtonLabel(s string) Config {
	c.TryonButtonLabel = s
	return c
}

func cloneImage(img *upload.Image) *upload.Image {
	if img == nil {
		return nil
	}
	cp := *img
	return &cp
}

func fieldName(goName string) string {
	switch goName {
	case "LogoPosition":
		return "logo_position"
	case "CardSize":
		return "card_size"
	default:
		return strings.ToLower(goName)
	}
}
