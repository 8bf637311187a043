package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"notectl"
	"notectl/internal/config"
)

var (
	verbose bool
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notectl",
	Short: "A terminal client for your notes backend",
	Long: `notectl manages notes and categories against a remote notes backend:
sign in once, then create, edit, archive and categorize notes from the shell.
Without a configured backend it runs fully offline on a local JSON mirror.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: user config dir)")
}

// newApp loads configuration and wires the app. The .env file is loaded
// first so that ${VAR} references in the config can see it.
func newApp() (*notectl.App, error) {
	_ = godotenv.Load()

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app, err := notectl.New(
		notectl.WithBaseURL(cfg.BaseURL),
		notectl.WithDataDir(cfg.DataDir),
		notectl.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		notectl.WithRateLimit(float64(cfg.RateLimitRPS), cfg.RateLimitBurst),
		notectl.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, err
	}
	if err := app.Session.Init(); err != nil {
		return nil, err
	}
	return app, nil
}

// requireAuth is the route guard for protected commands: a backend needs a
// session, the offline mirror does not.
func requireAuth(app *notectl.App) error {
	if app.Offline {
		return nil
	}
	if !app.Session.Authenticated() {
		return fmt.Errorf("not logged in, run 'notectl login' first")
	}
	return nil
}

// requireAnon guards the public commands: login/register make no sense with
// a live session.
func requireAnon(app *notectl.App) error {
	if !app.Offline && app.Session.Authenticated() {
		return fmt.Errorf("already logged in, run 'notectl logout' first")
	}
	return nil
}
