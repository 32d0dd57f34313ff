package upload

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: 100, B: uint8(y * 10), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestEncodeFileProducesPNGDataURL(t *testing.T) {
	t.Parallel()

	path := writePNG(t, t.TempDir(), "img.png", 6, 4)

	img, err := NewEncoder().EncodeFile(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.DataURL, "data:image/png;base64,"))
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, "img.png", img.Name)
	assert.Equal(t, 6, img.Width)
	assert.Equal(t, 4, img.Height)
	assert.False(t, img.IsZero())

	mimeType, payload, err := ParseDataURL(img.DataURL)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.EqualValues(t, img.Size, len(payload))
}

func TestEncodeFileAcceptsNonImageContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not really a photo"), 0o644))

	img, err := NewEncoder().EncodeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "text/plain", img.MIMEType)
	assert.True(t, strings.HasPrefix(img.DataURL, "data:text/plain;base64,"))
	assert.Zero(t, img.Width)
	assert.Zero(t, img.Height)
}

func TestEncodeBytesTrustsImageExtensionOverTextSniff(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{name: "empty png", file: "x.png", data: nil, want: "image/png"},
		{name: "truncated jpeg", file: "look.JPG", data: []byte("partial"), want: "image/jpeg"},
		{name: "text stays text", file: "notes.txt", data: []byte("hello"), want: "text/plain"},
		{name: "unknown extension", file: "blob.zzz", data: []byte("hello"), want: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := EncodeBytes(tt.file, tt.data)
			assert.Equal(t, tt.want, img.MIMEType)
			assert.True(t, strings.HasPrefix(img.DataURL, "data:"+tt.want+";base64,"), img.DataURL)
		})
	}
}

func TestEncodeFileReportsDecodeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.png")},
		{name: "directory", path: t.TempDir()},
		{name: "empty input", path: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncoder().EncodeFile(context.Background(), tt.path)
			require.Error(t, err)

			var decodeErr *apperrors.DecodeError
			require.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestEncodeFileHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEncoder().EncodeFile(ctx, "whatever.png")
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecodeReturnsPixels(t *testing.T) {
	t.Parallel()

	path := writePNG(t, t.TempDir(), "img.png", 3, 2)
	img, err := NewEncoder().EncodeFile(context.Background(), path)
	require.NoError(t, err)

	pixels, err := Decode(img)
	require.NoError(t, err)
	assert.Equal(t, 3, pixels.Bounds().Dx())
}

func TestParseDataURLRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "http://example.com/a.png", "data:image/png;base64", "data:image/png,abc", "data:image/png;base64,***"} {
		_, _, err := ParseDataURL(input)
		assert.Error(t, err, input)
	}
}

func TestCleanPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{input: "  /tmp/a.png ", expected: "/tmp/a.png"},
		{input: `"/tmp/my photo.png"`, expected: "/tmp/my photo.png"},
		{input: `'/tmp/a.png'`, expected: "/tmp/a.png"},
		{input: `/tmp/my\ photo.png`, expected: "/tmp/my photo.png"},
		{input: "~/a.png", expected: filepath.Join(home, "a.png")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CleanPath(tt.input), tt.input)
	}
}

func TestParseSlot(t *testing.T) {
	t.Parallel()

	slot, err := ParseSlot(" Clothes ")
	require.NoError(t, err)
	assert.Equal(t, SlotClothes, slot)

	_, err = ParseSlot("avatar")
	assert.Error(t, err)
}

func TestImageDescribe(t *testing.T) {
	t.Parallel()

	img := Image{Name: "img.png", MIMEType: "image/png", Width: 800, Height: 600, Size: 2048}
	assert.Equal(t, "img.png · image/png · 800×600 · 2.0 KB", img.Describe())
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.5 MB", FormatSize(1536*1024))
}
