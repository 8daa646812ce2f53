package cmd

import (
	"context"
	"log/slog"

	"github.com/nfrund/adhdhub/internal/config"
	"github.com/nfrund/adhdhub/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server. Configuration is read from a .env file in the
working directory, if present, and from the environment.

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.AppAddr = serveAddr
		}

		s, err := server.New(cfg)
		if err != nil {
			slog.Error("Failed to create server", "error", err)
			return err
		}
		if err := s.RegisterRoutes(context.Background()); err != nil {
			slog.Error("Failed to register routes", "error", err)
			return err
		}
		return s.Start(cfg.GetAppAddr())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides APP_ADDR")
	rootCmd.AddCommand(serveCmd)
}
