package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mfeld/parity-pulse/internal/brief"
	"github.com/mfeld/parity-pulse/internal/calculator"
	"github.com/mfeld/parity-pulse/internal/classifier"
	"github.com/mfeld/parity-pulse/internal/refdata"
	"github.com/mfeld/parity-pulse/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation engine over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.Default()

			store := refdata.NewStore()
			client := createCapabilityClient()
			srv := server.New(
				store,
				classifier.New(client, store, logger),
				calculator.New(store),
				brief.NewGenerator(client, logger),
				logger,
			)

			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("http server listening", "addr", addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server failed: %w", err)
				}
				return nil
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
