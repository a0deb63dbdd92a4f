package cmd

import (
	"fmt"
	"net/http"

	"github.com/medtrack/medtrack/internal/app"
	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/routes"
	"github.com/spf13/cobra"
)

// ServeCmd runs the HTTP server, same as cmd/server but reachable from the
// ops CLI.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MedTrack web server",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

			a, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			defer a.Close()

			handler := routes.SetupRoutes(a)
			fmt.Printf("listening on http://localhost:%s\n", cfg.Port)

			return http.ListenAndServe(":"+cfg.Port, handler)
		},
	}
}
