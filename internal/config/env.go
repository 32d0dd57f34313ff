package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognised on top of the file.
const (
	EnvSearchURL   = "LUXE_SEARCH_URL"
	EnvTryonURL    = "LUXE_TRYON_URL"
	EnvUserID      = "LUXE_USER_ID"
	EnvTimeout     = "LUXE_TIMEOUT"
	EnvLogLevel    = "LUXE_LOG_LEVEL"
	EnvLogFile     = "LUXE_LOG_FILE"
	EnvHistoryFile = "LUXE_HISTORY_FILE"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Variables already set win, and missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment values onto cfg. lookup is usually os.LookupEnv.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	if v, ok := get(EnvSearchURL); ok {
		cfg.API.SearchURL = v
	}
	if v, ok := get(EnvTryonURL); ok {
		cfg.API.TryonURL = v
	}
	if v, ok := get(EnvUserID); ok {
		cfg.API.UserID = v
	}
	if v, ok := get(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.API.Timeout = d
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := get(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := get(EnvHistoryFile); ok {
		cfg.History.File = v
	}
	return nil
}
