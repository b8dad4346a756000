package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kilomon/internal/config"
	"kilomon/internal/logging"
	"kilomon/internal/monitor"
	"kilomon/internal/procsrc"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running kilomon: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kilomon",
		Short: "Terminal process monitor",
		Long: `kilomon - watch and kill processes from the terminal

Keybindings:
  ↑/↓ or wheel  Move selection
  k             Kill selected process
  s             Cycle sort column (CPU, Memory, PID, Name)
  q             Quit

Environment:
  KILOMON_LOG_FILE   write JSON logs to this file
  KILOMON_LOG_LEVEL  DEBUG, INFO, WARN or ERROR`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Info("kilomon starting", "version", version)
	logger.Debug("config loaded", "log_file", cfg.LogFile, "log_level", cfg.LogLevel)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	source := procsrc.New(logger.With("component", "procsrc").Slog())
	app := monitor.NewApp(ctx, source, monitor.WithLogger(logger.With("component", "monitor").Slog()))

	term := NewTerminal()
	term.Start(cancel)

	runErr := app.Run(ctx, term, term)
	if runErr != nil {
		logger.Warn("event loop stopped early", "error", runErr)
	}
	if err := term.Close(); err != nil {
		logger.Error("terminal failed", "error", err)
		return fmt.Errorf("terminal: %w", err)
	}
	return runErr
}
