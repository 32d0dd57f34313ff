package tui

import (
	"context"

	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

// Service exposes the remote operations the screens require.
type Service interface {
	SearchFashion(ctx context.Context, imageDataURL, clothingTypeHint string) (*api.SearchResponse, error)
	VirtualTryon(ctx context.Context, personDataURL, clothesDataURL string) (*api.TryonResponse, error)
}

// Encoder turns a local path into an uploaded image.
type Encoder interface {
	EncodeFile(ctx context.Context, path string) (upload.Image, error)
}
