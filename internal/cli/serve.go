package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/iPascal619/python-project-generator/internal/api"
	"github.com/iPascal619/python-project-generator/internal/config"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose project generation over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.ServerAddress = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			gen := buildGenerator(cfg, logger)
			handler := api.NewHandler(gen, cfg, logger)

			gin.SetMode(gin.ReleaseMode)
			router := api.SetupRouter(handler)

			// A generation holds the connection for up to three full
			// model attempts, so the write timeout has to cover that.
			srv := &http.Server{
				Addr:         cfg.ServerAddress,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 3*cfg.RequestTimeout() + 30*time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "addr", cfg.ServerAddress, "model", cfg.Model)
				errCh <- srv.ListenAndServe()
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server: %w", err)
				}
				return nil
			case sig := <-quit:
				logger.Info("shutting down server", "signal", sig.String())
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultServerAddress, "listen address")

	return cmd
}
