package config

import (
	"time"

	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/theme"
)

// Config represents the full client configuration document.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Log     LogConfig     `yaml:"log"`
	History HistoryConfig `yaml:"history"`
	Theme   theme.Config  `yaml:"theme"`
}

// APIConfig locates the remote endpoints and the identity sent to them.
type APIConfig struct {
	SearchURL string        `yaml:"search_url" validate:"required,endpoint_url"`
	TryonURL  string        `yaml:"tryon_url" validate:"required,endpoint_url"`
	UserID    string        `yaml:"user_id" validate:"required"`
	Timeout   time.Duration `yaml:"timeout,omitempty" validate:"gte=0"`
}

// LogConfig controls where diagnostics go. The TUI never logs to the terminal.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty"`
	Human bool   `yaml:"human,omitempty"`
}

// HistoryConfig selects the history source. An empty File uses the sample rows.
type HistoryConfig struct {
	File string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file or override is present.
func Default() *Config {
	return &Config{
		API: APIConfig{
			SearchURL: api.DefaultSearchURL,
			TryonURL:  api.DefaultTryonURL,
			UserID:    api.DefaultUserID,
		},
		Log:   LogConfig{Level: "info"},
		Theme: theme.Default(),
	}
}

// ClientOptions maps the API section onto client options.
func (c *Config) ClientOptions() api.Options {
	return api.Options{
		SearchURL: c.API.SearchURL,
		TryonURL:  c.API.TryonURL,
		UserID:    c.API.UserID,
		Timeout:   c.API.Timeout,
	}
}
