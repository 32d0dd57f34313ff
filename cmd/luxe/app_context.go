package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/config"
	"github.com/alexisbeaulieu97/luxe/internal/history"
	"github.com/alexisbeaulieu97/luxe/internal/logger"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Client  *api.Client
	Encoder *upload.Encoder
	History history.Provider

	closers []io.Closer
}

// Close releases files opened for the app.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// loadConfig resolves configuration from file, .env, environment and flags, in that order.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	if err := config.LoadDotEnv(flags.envFile); err != nil {
		return nil, newCommandError("load configuration", "reading "+flags.envFile, err, "Fix or remove the .env file.")
	}

	path, required := flags.configPath, true
	if path == "" {
		path, required = config.DefaultPath(), false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, newCommandError("load configuration", path, err, "Check the YAML syntax and allowed values.")
	}
	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, newCommandError("load configuration", "reading environment", err, "Use Go duration syntax such as 30s for LUXE_TIMEOUT.")
	}

	applyFlags(cmd, flags, cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError("load configuration", "validating settings", err, "Check the reported field.")
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("search-url") {
		cfg.API.SearchURL = flags.searchURL
	}
	if changed("tryon-url") {
		cfg.API.TryonURL = flags.tryonURL
	}
	if changed("user-id") {
		cfg.API.UserID = flags.userID
	}
	if changed("timeout") {
		cfg.API.Timeout = flags.timeout
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if changed("history-file") {
		cfg.History.File = flags.historyFile
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
}

// newAppContext wires services for a command. Interactive sessions never log
// to the terminal: without a log file they discard output.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}

	app := &AppContext{
		Config:  cfg,
		Encoder: upload.NewEncoder(),
		History: history.New(cfg.History.File),
	}

	var writer io.Writer
	switch {
	case cfg.Log.File != "":
		file, err := logger.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, newCommandError("start", "opening log file", err, "Choose a writable --log-file path.")
		}
		app.closers = append(app.closers, file)
		writer = file
	case interactive:
		writer = io.Discard
	default:
		writer = cmd.ErrOrStderr()
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.Human, Writer: writer})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	app.Logger = log

	opts := cfg.ClientOptions()
	opts.Logger = log.Component("api")
	app.Client = api.NewClient(opts)

	return app, nil
}
