package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/luxe/internal/api"
)

const searchBody = `{
  "searchId": 1,
  "imageUrl": "https://cdn.example.com/query.png",
  "results": [
    {"name": "Tweed jacket", "brand": "CHANEL", "price": 89990, "currency": "RUB", "image_url": "", "product_url": "https://shop.example.com/chanel", "match_score": 98},
    {"name": "Bar jacket", "brand": "DIOR", "price": 75990, "currency": "RUB", "image_url": "", "product_url": "https://shop.example.com/dior", "match_score": 95}
  ]
}`

type captured struct {
	userID string
	body   map[string]string
}

func fakeEndpoint(t *testing.T, status int, body string, seen *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if seen != nil {
			seen.userID = r.Header.Get(api.UserIDHeader)
			_ = json.Unmarshal(raw, &seen.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchCommand_TableOutput(t *testing.T) {
	seen := &captured{}
	srv := fakeEndpoint(t, http.StatusOK, searchBody, seen)
	img := writePNG(t, t.TempDir(), "img.png")

	out, err := executeCommand(t, "search", img, "--type", "top", "--search-url", srv.URL, "--user-id", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "Found 2 items")
	assert.Contains(t, out, "98%")
	assert.Contains(t, out, "95%")
	assert.Less(t, strings.Index(out, "CHANEL"), strings.Index(out, "DIOR"))
	assert.Contains(t, out, "89 990 ₽")

	assert.Equal(t, "42", seen.userID)
	assert.Equal(t, "top", seen.body["clothingType"])
	assert.True(t, strings.HasPrefix(seen.body["image"], "data:image/png;base64,"))
}

func TestSearchCommand_JSONOutput(t *testing.T) {
	srv := fakeEndpoint(t, http.StatusOK, searchBody, nil)
	img := writePNG(t, t.TempDir(), "img.png")

	out, err := executeCommand(t, "search", img, "--json", "--search-url", srv.URL)
	require.NoError(t, err)

	var resp api.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "CHANEL", resp.Results[0].Brand)
}

func TestSearchCommand_ServerError(t *testing.T) {
	srv := fakeEndpoint(t, http.StatusBadRequest, `{"error":"bad image"}`, nil)
	img := writePNG(t, t.TempDir(), "img.png")

	_, err := executeCommand(t, "search", img, "--search-url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad image")
}

func TestSearchCommand_RejectsBadInput(t *testing.T) {
	_, err := executeCommand(t, "search", "/definitely/missing.png", "--search-url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading image")

	img := writePNG(t, t.TempDir(), "img.png")
	_, err = executeCommand(t, "search", img, "--type", "scarf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--type")

	_, err = executeCommand(t, "search", img, "--search-url", "ftp://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search_url")
}
