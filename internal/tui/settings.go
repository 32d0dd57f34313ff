package tui

import (
	"strings"

	"github.com/alexisbeaulieu97/luxe/internal/theme"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

// settingField is one row of the customizer.
type settingField int

const (
	fieldBackground settingField = iota
	fieldText
	fieldAccent
	fieldFont
	fieldLogoPosition
	fieldCardSize
	fieldLogo
	fieldBanner
	fieldHeroTitle
	fieldHeroSubtitle
	fieldSearchLabel
	fieldTryonLabel
)

var settingFields = []settingField{
	fieldBackground, fieldText, fieldAccent, fieldFont, fieldLogoPosition, fieldCardSize,
	fieldLogo, fieldBanner, fieldHeroTitle, fieldHeroSubtitle, fieldSearchLabel, fieldTryonLabel,
}

func (f settingField) label() string {
	switch f {
	case fieldBackground:
		return "Background"
	case fieldText:
		return "Text colour"
	case fieldAccent:
		return "Accent"
	case fieldFont:
		return "Font"
	case fieldLogoPosition:
		return "Logo position"
	case fieldCardSize:
		return "Card size"
	case fieldLogo:
		return "Custom logo"
	case fieldBanner:
		return "Hero banner"
	case fieldHeroTitle:
		return "Hero title"
	case fieldHeroSubtitle:
		return "Hero subtitle"
	case fieldSearchLabel:
		return "Search button"
	case fieldTryonLabel:
		return "Try-on button"
	default:
		return "?"
	}
}

func (f settingField) value(cfg theme.Config) string {
	switch f {
	case fieldBackground:
		return cfg.Background
	case fieldText:
		return cfg.Text
	case fieldAccent:
		return cfg.Accent
	case fieldFont:
		return cfg.Font
	case fieldLogoPosition:
		return string(cfg.LogoPosition)
	case fieldCardSize:
		return string(cfg.CardSize)
	case fieldLogo:
		return imageValue(cfg.CustomLogo)
	case fieldBanner:
		return imageValue(cfg.HeroBanner)
	case fieldHeroTitle:
		return cfg.HeroTitle
	case fieldHeroSubtitle:
		return cfg.HeroSubtitle
	case fieldSearchLabel:
		return cfg.SearchButtonLabel
	case fieldTryonLabel:
		return cfg.TryonButtonLabel
	default:
		return ""
	}
}

// slot is the upload slot behind an image field.
func (f settingField) slot() (upload.Slot, bool) {
	switch f {
	case fieldLogo:
		return upload.SlotLogo, true
	case fieldBanner:
		return upload.SlotBanner, true
	default:
		return "", false
	}
}

// cyclable fields step through a fixed list with left and right.
func (f settingField) cyclable() bool {
	switch f {
	case fieldBackground, fieldText, fieldAccent, fieldFont, fieldLogoPosition, fieldCardSize:
		return true
	default:
		return false
	}
}

func imageValue(img *upload.Image) string {
	if img == nil {
		return "none"
	}
	return img.Name
}

// cycleSetting moves a cyclable field dir steps through its choices.
func cycleSetting(cfg theme.Config, f settingField, dir int) theme.Config {
	switch f {
	case fieldBackground:
		return cfg.WithBackground(step(theme.Swatches, cfg.Background, dir))
	case fieldText:
		return cfg.WithText(step(theme.Swatches, cfg.Text, dir))
	case fieldAccent:
		return cfg.WithAccent(step(theme.Swatches, cfg.Accent, dir))
	case fieldFont:
		return cfg.WithFont(step(theme.Fonts, cfg.Font, dir))
	case fieldLogoPosition:
		return cfg.WithLogoPosition(step(theme.LogoPositions, cfg.LogoPosition, dir))
	case fieldCardSize:
		return cfg.WithCardSize(step(theme.CardSizes, cfg.CardSize, dir))
	default:
		return cfg
	}
}

// applySetting stores typed text into a field. Enumerated fields are validated.
func applySetting(cfg theme.Config, f settingField, value string) (theme.Config, error) {
	value = strings.TrimSpace(value)
	switch f {
	case fieldBackground:
		return cfg.WithBackground(value), nil
	case fieldText:
		return cfg.WithText(value), nil
	case fieldAccent:
		return cfg.WithAccent(value), nil
	case fieldFont:
		return cfg.WithFont(value), nil
	case fieldLogoPosition:
		pos, err := theme.ParseLogoPosition(value)
		if err != nil {
			return cfg, err
		}
		return cfg.WithLogoPosition(pos), nil
	case fieldCardSize:
		size, err := theme.ParseCardSize(value)
		if err != nil {
			return cfg, err
		}
		return cfg.WithCardSize(size), nil
	case fieldHeroTitle:
		return cfg.WithHeroTitle(value), nil
	case fieldHeroSubtitle:
		return cfg.WithHeroSubtitle(value), nil
	case fieldSearchLabel:
		return cfg.WithSearchButtonLabel(value), nil
	case fieldTryonLabel:
		return cfg.WithTryonButtonLabel(value), nil
	default:
		return cfg, nil
	}
}

func step[T comparable](choices []T, current T, dir int) T {
	if len(choices) == 0 {
		return current
	}
	idx := -1
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if dir < 0 {
			return choices[len(choices)-1]
		}
		return choices[0]
	}
	n := len(choices)
	return choices[((idx+dir)%n+n)%n]
}
