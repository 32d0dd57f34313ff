package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

// countThumbnails replaces the renderer with a counting stub for the test.
func countThumbnails(t *testing.T) *int {
	t.Helper()
	calls := 0
	original := renderThumbnail
	renderThumbnail = func(img upload.Image, width, height int) string {
		calls++
		return "THUMB:" + img.Name
	}
	t.Cleanup(func() { renderThumbnail = original })
	return &calls
}

func TestThumbnailsRenderOncePerUpload(t *testing.T) {
	calls := countThumbnails(t)
	m := newTestModel(&fakeService{}, &fakeEncoder{})
	m, _ = send(t, m, runes("t"))

	m, _ = send(t, m, ImageEncodedMsg{Slot: upload.SlotPerson, Image: upload.EncodeBytes("me.png", []byte("person"))})
	m, _ = send(t, m, ImageEncodedMsg{Slot: upload.SlotClothes, Image: upload.EncodeBytes("coat.png", []byte("coat"))})
	require.Equal(t, 2, *calls)

	for i := 0; i < 20; i++ {
		m, _ = send(t, m, m.spinner.Tick())
		view := plainView(m)
		assert.Contains(t, view, "THUMB:me.png")
		assert.Contains(t, view, "THUMB:coat.png")
	}
	assert.Equal(t, 2, *calls, "redraws reuse the cached thumbnails")

	m, _ = send(t, m, ImageEncodedMsg{Slot: upload.SlotPerson, Image: upload.EncodeBytes("me2.png", []byte("another person"))})
	assert.Equal(t, 3, *calls)
	assert.Contains(t, plainView(m), "THUMB:me2.png")
	assert.NotContains(t, plainView(m), "THUMB:me.png")

	m, _ = send(t, m, runes("A"))
	assert.NotContains(t, plainView(m), "THUMB:me2.png")
	assert.Equal(t, 3, *calls)
}

func TestBannerThumbnailFollowsWidth(t *testing.T) {
	calls := countThumbnails(t)
	m := newTestModel(&fakeService{}, &fakeEncoder{})

	m, _ = send(t, m, ImageEncodedMsg{Slot: upload.SlotBanner, Image: upload.EncodeBytes("hero.png", []byte("banner"))})
	require.Equal(t, 1, *calls)
	assert.Contains(t, plainView(m), "THUMB:hero.png")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 1, *calls, "banner is capped at the same width")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 40})
	assert.Equal(t, 2, *calls)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 30})
	assert.Equal(t, 2, *calls)
	assert.Contains(t, plainView(m), "THUMB:hero.png")
}

func TestSpinnerOnlyRunsWhileBusy(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc, &fakeEncoder{})

	_, cmd := send(t, m, m.spinner.Tick())
	assert.NotNil(t, cmd, "history is still loading")

	m, _ = send(t, m, HistoryLoadedMsg{})
	_, cmd = send(t, m, m.spinner.Tick())
	assert.Nil(t, cmd, "idle spinner is not re-armed")

	m, _ = send(t, m, runes("s"))
	m, _ = send(t, m, ImageEncodedMsg{Slot: upload.SlotSearch, Image: upload.EncodeBytes("look.png", []byte("x"))})
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.State().Loading)

	_, cmd = send(t, m, m.spinner.Tick())
	assert.NotNil(t, cmd)
}
