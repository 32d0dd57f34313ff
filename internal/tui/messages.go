package tui

import (
	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/history"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

// Upload Messages

// ImageEncodedMsg carries a file that was read and encoded for a slot.
type ImageEncodedMsg struct {
	Slot  upload.Slot
	Image upload.Image
}

// ImageErrorMsg reports a file that could not be read.
type ImageErrorMsg struct {
	Slot  upload.Slot
	Error error
}

// Remote call Messages. Token ties a completion to the submit that started it.

type SearchCompleteMsg struct {
	Token    string
	Response *api.SearchResponse
}

type SearchErrorMsg struct {
	Token string
	Error error
}

type TryonCompleteMsg struct {
	Token    string
	Response *api.TryonResponse
}

type TryonErrorMsg struct {
	Token string
	Error error
}

// History Messages

type HistoryLoadedMsg struct {
	Entries []history.Entry
}

type HistoryErrorMsg struct {
	Error error
}
