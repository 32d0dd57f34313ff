package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/history"
	"github.com/alexisbeaulieu97/luxe/internal/session"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

// encodeCmd reads and encodes a file off the event loop
func encodeCmd(ctx context.Context, enc Encoder, slot upload.Slot, path string) tea.Cmd {
	return func() tea.Msg {
		img, err := enc.EncodeFile(ctx, path)
		if err != nil {
			return ImageErrorMsg{Slot: slot, Error: err}
		}
		return ImageEncodedMsg{Slot: slot, Image: img}
	}
}

// requestCmd performs the remote call a submit asked for
func requestCmd(ctx context.Context, svc Service, req *session.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	switch req.Kind {
	case session.RequestSearch:
		return searchCmd(ctx, svc, *req)
	case session.RequestTryon:
		return tryonCmd(ctx, svc, *req)
	default:
		return nil
	}
}

func searchCmd(ctx context.Context, svc Service, req session.Request) tea.Cmd {
	return func() tea.Msg {
		resp, err := svc.SearchFashion(ctx, req.ImageDataURL, req.ClothingHint)
		if err != nil {
			return SearchErrorMsg{Token: req.Token, Error: err}
		}
		if resp == nil {
			return SearchErrorMsg{
				Token: req.Token,
				Error: apperrors.NewRequestError(api.EndpointSearch, 0, api.SearchFallback, errors.New("search produced no response")),
			}
		}
		return SearchCompleteMsg{Token: req.Token, Response: resp}
	}
}

func tryonCmd(ctx context.Context, svc Service, req session.Request) tea.Cmd {
	return func() tea.Msg {
		resp, err := svc.VirtualTryon(ctx, req.PersonDataURL, req.ClothesDataURL)
		if err != nil {
			return TryonErrorMsg{Token: req.Token, Error: err}
		}
		if resp == nil {
			return TryonErrorMsg{
				Token: req.Token,
				Error: apperrors.NewRequestError(api.EndpointTryon, 0, api.TryonFallback, errors.New("try-on produced no response")),
			}
		}
		return TryonCompleteMsg{Token: req.Token, Response: resp}
	}
}

// loadHistoryCmd asks the provider for past operations
func loadHistoryCmd(ctx context.Context, provider history.Provider) tea.Cmd {
	return func() tea.Msg {
		entries, err := provider.List(ctx)
		if err != nil {
			return HistoryErrorMsg{Error: err}
		}
		return HistoryLoadedMsg{Entries: entries}
	}
}
