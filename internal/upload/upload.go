// Package upload turns local image files into base64 data URLs that can be
// previewed in the terminal and posted to the remote endpoints.
package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

// Slot identifies where an encoded image is assigned.
type Slot string

const (
	SlotSearch  Slot = "search"
	SlotClothes Slot = "clothes"
	SlotPerson  Slot = "person"
	SlotLogo    Slot = "logo"
	SlotBanner  Slot = "banner"
)

// Slots lists every valid slot in display order.
var Slots = []Slot{SlotSearch, SlotClothes, SlotPerson, SlotLogo, SlotBanner}

// ParseSlot converts a tag into a Slot.
func ParseSlot(s string) (Slot, error) {
	for _, slot := range Slots {
		if string(slot) == strings.ToLower(strings.TrimSpace(s)) {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown upload slot %q", s)
}

// Image is an encoded upload. Values are replaced wholesale on re-upload.
type Image struct {
	DataURL  string `json:"data_url" yaml:"data_url"`
	MIMEType string `json:"mime_type" yaml:"mime_type"`
	Name     string `json:"name" yaml:"name"`
	Size     int64  `json:"size" yaml:"size"`
	Width    int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height   int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// IsZero reports whether the image carries no data.
func (i Image) IsZero() bool {
	return i.DataURL == ""
}

// Describe returns a one-line summary for display.
func (i Image) Describe() string {
	parts := []string{i.Name, i.MIMEType}
	if i.Width > 0 && i.Height > 0 {
		parts = append(parts, fmt.Sprintf("%d×%d", i.Width, i.Height))
	}
	parts = append(parts, FormatSize(i.Size))
	return strings.Join(parts, " · ")
}

// FormatSize renders a byte count using binary units.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}

// Encoder reads files from disk and encodes them as data URLs.
type Encoder struct {
	readFile func(string) ([]byte, error)
}

// NewEncoder returns an Encoder reading from the local filesystem.
func NewEncoder() *Encoder {
	return &Encoder{readFile: os.ReadFile}
}

// EncodeFile reads path and produces an Image. Size and MIME type are not
// checked; any readable file is encoded.
func (e *Encoder) EncodeFile(ctx context.Context, path string) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, apperrors.NewDecodeError(path, err)
	}

	cleaned := CleanPath(path)
	if cleaned == "" {
		return Image{}, apperrors.NewDecodeError(path, fmt.Errorf("no file selected"))
	}

	info, err := os.Stat(cleaned)
	if err != nil {
		return Image{}, apperrors.NewDecodeError(cleaned, err)
	}
	if info.IsDir() {
		return Image{}, apperrors.NewDecodeError(cleaned, fmt.Errorf("path is a directory"))
	}

	data, err := e.readFile(cleaned)
	if err != nil {
		return Image{}, apperrors.NewDecodeError(cleaned, err)
	}

	return EncodeBytes(filepath.Base(cleaned), data), nil
}

// EncodeBytes encodes in-memory content. Dimensions are filled in when the
// content decodes as an image.
func EncodeBytes(name string, data []byte) Image {
	mimeType := detectMIME(name, data)

	img := Image{
		DataURL:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		MIMEType: mimeType,
		Name:     name,
		Size:     int64(len(data)),
	}

	if decoded, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true)); err == nil {
		bounds := decoded.Bounds()
		img.Width = bounds.Dx()
		img.Height = bounds.Dy()
	}

	return img
}

// ParseDataURL splits a base64 data URL into its MIME type and payload.
func ParseDataURL(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	header, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return "", nil, fmt.Errorf("data URL has no payload")
	}
	if !strings.HasSuffix(header, ";base64") {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	mimeType := strings.TrimSuffix(header, ";base64")

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL payload: %w", err)
	}
	return mimeType, decoded, nil
}

// Decode returns the pixel data behind an encoded image.
func Decode(img Image) (image.Image, error) {
	_, payload, err := ParseDataURL(img.DataURL)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(payload), imaging.AutoOrientation(true))
}

// CleanPath normalizes a path typed or pasted into a prompt: surrounding
// quotes, escaped spaces and a leading ~ are handled.
func CleanPath(p string) string {
	p = strings.TrimSpace(p)
	if len(p) >= 2 {
		if (p[0] == '"' && p[len(p)-1] == '"') || (p[0] == '\'' && p[len(p)-1] == '\'') {
			p = p[1 : len(p)-1]
		}
	}
	p = strings.ReplaceAll(p, `\ `, " ")

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func detectMIME(name string, data []byte) string {
	detected := mimetype.Detect(data)
	mimeType, _, _ := strings.Cut(detected.String(), ";")
	mimeType = strings.TrimSpace(mimeType)

	byExt, _, _ := strings.Cut(mime.TypeByExtension(strings.ToLower(filepath.Ext(name))), ";")
	switch {
	case byExt == "":
	case mimeType == "" || mimeType == "application/octet-stream":
		mimeType = byExt
	case mimeType == "text/plain" && strings.HasPrefix(byExt, "image/"):
		// empty or truncated files sniff as text; trust an image extension
		mimeType = byExt
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return mimeType
}
