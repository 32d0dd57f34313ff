package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/theme"
	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `api:
  search_url: "http://localhost:8080/search"
  user_id: "42"
  timeout: 15s
log:
  level: debug
history:
  file: /tmp/history.yaml
theme:
  accent: "#3A86FF"
  card_size: large
`

	invalidYAML := `api:
  search_url: [1, 2]
log: {
`

	badLevel := `log:
  level: loud
`

	badURL := `api:
  tryon_url: "ftp://example.com"
`

	badTheme := `theme:
  logo_position: top
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration overlays defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "http://localhost:8080/search", cfg.API.SearchURL)
				assert.Equal(t, api.DefaultTryonURL, cfg.API.TryonURL)
				assert.Equal(t, "42", cfg.API.UserID)
				assert.Equal(t, 15*time.Second, cfg.API.Timeout)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "/tmp/history.yaml", cfg.History.File)
				assert.Equal(t, "#3A86FF", cfg.Theme.Accent)
				assert.Equal(t, theme.CardLarge, cfg.Theme.CardSize)
				assert.Equal(t, theme.Default().HeroTitle, cfg.Theme.HeroTitle)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Nil(t, cfg)
			},
		},
		{
			name:     "unknown log level fails validation",
			contents: badLevel,
			assert: func(t *testing.T, cfg *Config, err error) {
				var vErr *apperrors.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "log.level", vErr.Field)
			},
		},
		{
			name:     "non http endpoint fails validation",
			contents: badURL,
			assert: func(t *testing.T, cfg *Config, err error) {
				var vErr *apperrors.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "api.tryon_url", vErr.Field)
			},
		},
		{
			name:     "theme enums are validated",
			contents: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var vErr *apperrors.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "theme.logo_position", vErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := Load(path, true)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, extractLine(nil))
	var parseErr *apperrors.ParseError
	err := Parse("inline.yaml", []byte("log:\n  level: info\n  file: [\n"), Default())
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line)
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	t.Parallel()
	out, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(out), "search_url: "+api.DefaultSearchURL)

	cfg := Default()
	require.NoError(t, Parse("default.yaml", out, cfg))
	assert.Equal(t, Default(), cfg)
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".luxe", "config.yaml"), DefaultPath())
}

func TestClientOptions(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.API.Timeout = time.Second
	opts := cfg.ClientOptions()
	assert.Equal(t, api.DefaultSearchURL, opts.SearchURL)
	assert.Equal(t, api.DefaultUserID, opts.UserID)
	assert.Equal(t, time.Second, opts.Timeout)
}
