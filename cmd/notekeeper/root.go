package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dtroode/notekeeper/internal/config"
	"github.com/dtroode/notekeeper/internal/logger"
)

var (
	cfg          *config.ClientConfig
	clientLogger *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "End-to-end encrypted notes with private search",
	Long: `notekeeper stores notes encrypted with per-note keys issued by a
key authority, and searches them through an encrypted index that only
this client can open.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewClientConfig()
		if err != nil {
			return err
		}
		clientLogger = logger.NewWithWriter(cfg.LogLevel, os.Stderr)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var errOwnerRequired = errors.New("NOTEKEEPER_OWNER is not set")

// runWithApp builds the client stack for a command and tears it down afterwards.
func runWithApp(fn func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cfg.Owner == "" {
			return errOwnerRequired
		}

		a, err := newApp(cfg, clientLogger)
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(cmd.Context(), a, cmd, args)
	}
}
