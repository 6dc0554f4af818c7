package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/chrisdamba/foodadmin/internal/analytics"
	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/events"
	"github.com/chrisdamba/foodadmin/internal/export"
	"github.com/chrisdamba/foodadmin/internal/powerbi"
	"github.com/chrisdamba/foodadmin/internal/seed"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var demoData bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		if demoData {
			if _, err := seed.NewSeeder(store, cfg.Seed, seed.WithProgressOutput(io.Discard)).Run(ctx); err != nil {
				return err
			}
		}

		publisher, err := events.NewPublisher(cfg.Kafka)
		if err != nil {
			return err
		}
		defer publisher.Close()

		exporter, err := export.NewExporter(ctx, cfg.Export)
		if err != nil {
			return err
		}

		handler := api.NewHandler(api.Deps{
			Store:         store,
			Analytics:     analytics.NewService(store, analytics.NewEngine()),
			Publisher:     publisher,
			Exporter:      exporter,
			PowerBI:       powerbi.NewClient(cfg.PowerBI),
			OrderTopic:    cfg.Kafka.OrderTopic,
			ReportTopic:   cfg.Kafka.ReportTopic,
			DefaultWindow: cfg.Analytics.DefaultWindow,
			DefaultLimit:  cfg.Analytics.DefaultLimit,
		})
		server := api.NewServer(handler, cfg.Server.RequestTimeout)

		errCh := make(chan error, 1)
		go func() {
			log.WithField("addr", cfg.Server.Addr).Info("admin API listening")
			if err := server.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().Duration("request-timeout", 15*time.Second, "Per-request timeout")
	serveCmd.Flags().Bool("kafka-enabled", false, "Publish domain events to Kafka")
	serveCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	serveCmd.Flags().BoolVar(&demoData, "demo-data", false, "Seed the store with demo data before serving")

	bindFlags(serveCmd.Flags(), map[string]string{
		"server.addr":            "addr",
		"server.request_timeout": "request-timeout",
		"kafka.enabled":          "kafka-enabled",
		"kafka.broker_list":      "kafka-broker-list",
	})
	rootCmd.AddCommand(serveCmd)
}
