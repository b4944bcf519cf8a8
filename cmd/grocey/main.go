package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grocey/grocey-cli/internal/api"
	"github.com/grocey/grocey-cli/internal/cli"
	"github.com/grocey/grocey-cli/internal/config"
	"github.com/grocey/grocey-cli/internal/database"
	"github.com/grocey/grocey-cli/internal/logging"
	"github.com/grocey/grocey-cli/internal/session"
	"github.com/grocey/grocey-cli/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "grocey: %v\n", err)
		os.Exit(1)
	}
}

// resolveBaseURL picks the API base: an explicit GROCEY_API_URL wins, so
// one-off overrides work; otherwise a stored api_url setting sticks, and the
// built-in default is the last resort.
func resolveBaseURL(envURL, fallback, stored string) string {
	if envURL != "" {
		return envURL
	}
	if stored != "" {
		return stored
	}
	return fallback
}

func run() error {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.StatePath)
	if err != nil {
		return err
	}
	defer db.Close()

	creds := store.NewCredentialStore(db)
	settings := store.NewSettingsStore(db)

	stored, err := settings.Get(store.SettingAPIURL)
	if err != nil {
		return err
	}
	baseURL := resolveBaseURL(os.Getenv("GROCEY_API_URL"), cfg.APIURL, stored)

	a := api.New(baseURL, api.WithLogger(logger))
	sess := session.New(a, creds, logger)
	app := cli.New(a, sess, settings, creds, logger, os.Stdout)

	// Ctrl-C cancels the context, which aborts any in-flight request.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, os.Args[1:])
	if errors.Is(err, context.Canceled) {
		return errors.New("interrupted")
	}
	return err
}
