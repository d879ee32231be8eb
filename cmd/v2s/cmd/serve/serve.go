package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voice2site/cmd/v2s/cmd/version"
	"voice2site/internal/api/server"
	"voice2site/internal/app"
	"voice2site/internal/config"
)

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT and the config file)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website generation HTTP API",
	Long: `Start the website generation HTTP API

- POST /api/v1/sites/audio and /generate-website accept a multipart "audio" WAV upload
- POST /api/v1/sites/text accepts {"text": "..."}
- Stops gracefully on SIGINT or SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if port != "" {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server.Version = version.Version
		srv, err := app.InitializeServer(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}
		if err := srv.Start(); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		select {
		case <-ctx.Done():
		case err := <-srv.Errors():
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
