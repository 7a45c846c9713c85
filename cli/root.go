package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/todoman/todoman/engine/infra/server"
	"github.com/todoman/todoman/pkg/config"
	"github.com/todoman/todoman/pkg/logger"
)

// RootCmd builds the todoman command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todoman",
		Short: "Todo Manager API server",
	}

	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(ServeCmd())
	return root
}

// ServeCmd starts the HTTP server.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the todo API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// .env is optional; ignore a missing file.
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := setupLogger(cmd, cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(
				cmd.Context(), os.Interrupt, syscall.SIGTERM,
			)
			defer stop()
			return server.New(cfg).Run(ctx)
		},
	}
}

func setupLogger(cmd *cobra.Command, cfg *config.Config) error {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if level == "" {
		level = cfg.Log.Level
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return fmt.Errorf("failed to get log-json flag: %w", err)
	}
	logger.Init(&logger.Config{
		Level:      logger.ParseLevel(level),
		Output:     os.Stdout,
		JSON:       logJSON || cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	return nil
}
