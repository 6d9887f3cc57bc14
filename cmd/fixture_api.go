package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbelhadj/roster-management/internal/fixtureapi"
	"github.com/kbelhadj/roster-management/pkg/logger"
)

var (
	fixturePort     int
	fixtureEnvelope bool
)

var fixtureAPICmd = &cobra.Command{
	Use:   "fixture-api",
	Short: "Serve a fake roster service for local development",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init("debug", "text")
		lg := logger.LoggerWrapper()

		server := fixtureapi.NewServer(fixtureEnvelope, lg)
		server.SeedDefaults()

		addr := fmt.Sprintf(":%d", fixturePort)
		httpServer := &http.Server{
			Addr:         addr,
			Handler:      server.Handler(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}

		go func() {
			lg.Info("fixture API listening", "addr", addr, "envelope", fixtureEnvelope)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "fixture API failed: %v\n", err)
				os.Exit(1)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			lg.Error("fixture API shutdown failed", "error", err)
		}
	},
}

func init() {
	fixtureAPICmd.Flags().IntVar(&fixturePort, "port", 8080, "Listen port")
	fixtureAPICmd.Flags().BoolVar(&fixtureEnvelope, "envelope", true, "Wrap list responses in a results envelope")
}
