package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"

	"github.com/alexisbeaulieu97/luxe/internal/theme"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

// Preview shows an uploaded image as a pre-rendered thumbnail above its
// description. Rendering never decodes; thumbnails come from Thumbnail.
type Preview struct {
	img    upload.Image
	blocks string
}

func NewPreview(img upload.Image) *Preview {
	return &Preview{img: img}
}

// WithThumbnail sets the half-block rendering shown above the caption.
func (p *Preview) WithThumbnail(blocks string) *Preview {
	p.blocks = blocks
	return p
}

func (p *Preview) ViewWithContext(ctx RenderContext) string {
	if p.img.IsZero() {
		return ctx.Styles.Muted.Render("no image")
	}
	caption := ctx.Styles.Muted.Render(theme.Sanitize(p.img.Describe()))
	if p.blocks == "" {
		return caption
	}
	return p.blocks + "\n" + caption
}

// Thumbnail decodes img and renders it with half blocks, two pixel rows per
// text row. It returns "" for uploads that are not images. Decoding is
// costly, so callers render once per upload and keep the result.
func Thumbnail(img upload.Image, width, height int) string {
	if img.Width == 0 || img.Height == 0 || width <= 0 || height <= 0 {
		return ""
	}
	decoded, err := upload.Decode(img)
	if err != nil {
		return ""
	}
	return HalfBlocks(decoded, width, height)
}

// HalfBlocks renders img into at most width columns and height rows.
func HalfBlocks(img image.Image, width, height int) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}
	fitted := imaging.Fit(img, width, height*2, imaging.Box)
	bounds := fitted.Bounds()

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteString("\n")
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(fitted.At(x, y)))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(fitted.At(x, y+1)))
			}
			b.WriteString(style.Render("▀"))
		}
	}
	return b.String()
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, bl, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, bl>>8))
}
