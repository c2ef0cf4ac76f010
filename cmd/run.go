package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eduai/eduai/internal/api"
	"github.com/eduai/eduai/internal/app"
	"github.com/eduai/eduai/internal/auth"
	"github.com/eduai/eduai/internal/config"
	"github.com/eduai/eduai/internal/history"
)

// resolveConfig builds the effective config from env plus flag overrides.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.APIBaseURL = u
	}
	if d, _ := cmd.Flags().GetString("data-dir"); d != "" {
		cfg.DataDir = d
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildClient wires the session store and API client together. The client
// reads its bearer token from the store; the store performs auth calls
// through the client.
func buildClient(cfg config.Config) (*auth.Store, *api.Client, error) {
	recordPath, err := cfg.DataPath(auth.RecordKey + ".json")
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}
	persist := auth.NewFile(filepath.Dir(recordPath))

	var store *auth.Store
	client := api.NewClient(cfg.APIBaseURL,
		api.TokenFunc(func() string { return store.AccessToken() }),
		api.WithTimeout(cfg.RequestTimeout),
		api.WithCacheTTL(cfg.CacheTTL),
	)
	store = auth.NewStore(client, persist)
	store.Load()

	return store, client, nil
}

// runApp wires everything and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	store, client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	opts := app.Options{
		Store:  store,
		Client: client,
	}

	dbPath, err := cfg.DataPath("history.db")
	if err == nil {
		if hist, herr := history.Open(dbPath); herr == nil {
			defer hist.Close()
			opts.History = hist
		} else {
			fmt.Fprintln(os.Stderr, "Local history unavailable:", herr)
		}
	} else {
		fmt.Fprintln(os.Stderr, "Local history unavailable:", err)
	}

	return app.Run(opts)
}
