package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/barista/internal/config"
	"github.com/vovakirdan/barista/internal/fortune"
	"github.com/vovakirdan/barista/internal/storage"
)

// app bundles what every command needs.
type app struct {
	cfg       config.Config
	logger    *log.Logger
	generator *fortune.Generator
	store     *storage.Store
	closers   []io.Closer
}

// setupOptions selects the optional parts of the app.
type setupOptions struct {
	logToFile bool // Default log destination is a file instead of stderr
	journal   bool // Open the pour journal
	fortunes  bool // Build the fortune generator
}

// setup loads config and credentials and wires the shared services.
func setup(ctx context.Context, opts setupOptions) (*app, error) {
	a := &app{}

	logger, closer, err := newLogger(opts.logToFile)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	if err := config.LoadDotEnv(dotEnvPaths()...); err != nil {
		a.logger.Warn("could not read .env file", "error", err)
	}

	a.cfg, err = config.Load(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}

	if opts.fortunes {
		a.generator = newGenerator(ctx, a.cfg, a.logger)
	}

	if opts.journal && flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Continue without the journal
			a.logger.Warn("could not open pour journal", "path", flagDBPath, "error", err)
		} else {
			a.store = store
			a.closers = append(a.closers, store)
		}
	}

	return a, nil
}

// Close releases the journal and the log file.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		//nolint:errcheck // Best-effort cleanup on exit
		a.closers[i].Close()
	}
	a.closers = nil
}

// newLogger builds the charmbracelet logger from the global flags.
func newLogger(toFile bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer

	path := flagLogFile
	if path == "" && toFile {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			path = filepath.Join(home, ".barista", "barista.log")
		}
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	} else if toFile {
		// The alternate screen owns the terminal
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "barista",
		Level:           level,
	})
	return logger, closer, nil
}

// newGenerator selects the remote or the offline fortune path.
func newGenerator(ctx context.Context, cfg config.Config, logger *log.Logger) *fortune.Generator {
	opts := []fortune.Option{
		fortune.WithLogger(logger),
		fortune.WithTimeout(cfg.Fortune.Timeout),
	}

	key := cfg.APIKey()
	if key == "" {
		return fortune.NewGenerator(nil, opts...)
	}

	gemini, err := fortune.NewGeminiClient(ctx, key, cfg.Fortune.Model)
	if err != nil {
		logger.Error("could not create Gemini client", "error", err)
		return fortune.NewGenerator(nil, opts...)
	}
	logger.Debug("fortunes enabled", "model", cfg.Fortune.Model)
	return fortune.NewGenerator(gemini, opts...)
}

// dotEnvPaths lists the .env files to read, local first.
func dotEnvPaths() []string {
	paths := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".barista", ".env"))
	}
	return paths
}
