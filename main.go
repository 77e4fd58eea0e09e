package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlejandroE25/weatherman/internal/app"
	"github.com/AlejandroE25/weatherman/internal/config"
	"github.com/AlejandroE25/weatherman/internal/input"
	"github.com/AlejandroE25/weatherman/internal/ui"
	"github.com/AlejandroE25/weatherman/internal/weather"
)

var (
	version = "1.0.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weatherman",
	Short: "weatherman - seven day forecast in your terminal",
	Long: `weatherman fetches a seven day forecast from open-meteo and shows it as a
full-screen terminal dashboard.

Keys:
  q        Quit
  m        Open the menu
  j / k    Move the menu selection
  Enter    Open the selected screen

Examples:
  weatherman                          # Start the dashboard
  weatherman -c ~/.weatherman.yaml    # Use another location or units
  weatherman print                    # Print the forecast and exit`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, closeLog, err := setup()
		if err != nil {
			return err
		}
		defer closeLog()

		return runDashboard(cmd.Context(), cfg)
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Fetch the forecast and print it as plain text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, closeLog, err := setup()
		if err != nil {
			return err
		}
		defer closeLog()

		forecast, err := weather.NewClient(cfg).Fetch(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch forecast: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), forecast.String())
		return nil
	},
}

// Flags
var (
	flagConfig  string
	flagLogFile string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "YAML file overriding location, units and layout")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append diagnostics to this file")

	rootCmd.AddCommand(printCmd)
}

// setup loads the configuration and points the logger at the log file, if any.
// The returned func closes the log file.
func setup() (*config.Config, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}

	// The dashboard owns the terminal, so logs never go to stderr
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return cfg, func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.Printf("weatherman %s starting for %.2f,%.2f", version, cfg.Latitude, cfg.Longitude)

	return cfg, func() { f.Close() }, nil
}

// runDashboard takes over the terminal until the user quits
func runDashboard(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	terminal, err := ui.OpenTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer terminal.Close()

	caps := terminal.Capabilities()
	opts := ui.Options{
		Layout: cfg.Layout,
		Labels: ui.LabelsFor(cfg.Units),
		Emoji:  caps.SupportsEmoji,
	}

	feed := input.NewFeed(input.NewTerminalPoller(os.Stdin), cfg.TickRate, cfg.QueueSize)
	client := weather.NewClient(cfg)

	err = app.New(terminal, feed, client, opts).Run(ctx)

	// Let the poller stop reading stdin before the terminal mode is restored
	stop()
	select {
	case <-feed.Done():
	case <-time.After(2 * cfg.TickRate):
	}

	return err
}
