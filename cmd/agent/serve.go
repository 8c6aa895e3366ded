package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ifcfg-agent/internal/application/polling"
	"ifcfg-agent/internal/infrastructure/config"
	"ifcfg-agent/internal/infrastructure/container"
	"ifcfg-agent/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newServeCommand builds the daemon command: poll the declaration
// database, apply pending declarations, expose health and metrics.
func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as a daemon polling the declaration database",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.NewEnvironmentConfigLoader().Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			appContainer, err := container.NewContainer(cfg, logger)
			if err != nil {
				return err
			}
			defer appContainer.Close()

			if err := appContainer.ConnectDatabase(); err != nil {
				return fmt.Errorf("failed to connect declaration database: %w", err)
			}

			hostname, _ := os.Hostname()
			metrics.SetAgentInfo(version, string(appContainer.GetOSFamily()), hostname)

			return runDaemon(appContainer, logger)
		},
	}
}

// runDaemon runs the polling loop until a shutdown signal arrives.
func runDaemon(appContainer *container.Container, logger *logrus.Logger) error {
	cfg := appContainer.GetConfig()
	healthService := appContainer.GetHealthService()

	// Health and metrics endpoint
	mux := http.NewServeMux()
	mux.Handle("/health", healthService)
	mux.Handle("/metrics", promhttp.Handler())
	healthServer := &http.Server{
		Addr:    ":" + cfg.Health.Port,
		Handler: mux,
	}
	go func() {
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("health server failed")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.WithField("signal", sig.String()).Info("shutdown signal received")
		cancel()
	}()

	strategy := polling.NewExponentialBackoffStrategy(
		cfg.Agent.PollInterval,
		cfg.Agent.MaxPollInterval,
		2.0,
		logger,
	)
	controller := polling.NewPollingController(strategy, logger)

	logger.WithFields(logrus.Fields{
		"node_name":     cfg.Agent.NodeName,
		"poll_interval": cfg.Agent.PollInterval,
	}).Info("agent started")

	err := controller.Start(ctx, func(ctx context.Context) error {
		return pollOnce(ctx, appContainer, logger)
	})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if shutdownErr := healthServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.WithError(shutdownErr).Warn("health server shutdown failed")
	}

	if err == context.Canceled {
		logger.Info("agent stopped")
		return nil
	}
	return err
}

// pollOnce runs one polling cycle: fetch pending declarations, apply
// them, report outcomes back to the repository.
func pollOnce(ctx context.Context, appContainer *container.Container, logger *logrus.Logger) error {
	cfg := appContainer.GetConfig()
	repository := appContainer.GetRepository()
	healthService := appContainer.GetHealthService()

	if err := repository.Ping(ctx); err != nil {
		healthService.UpdateDBHealth(false, err)
		metrics.SetDBConnected(false)
		return err
	}
	healthService.UpdateDBHealth(true, nil)
	metrics.SetDBConnected(true)

	declarations, err := repository.GetPendingDeclarations(ctx, cfg.Agent.NodeName)
	if err != nil {
		return err
	}
	if len(declarations) == 0 {
		return nil
	}

	output, err := appContainer.GetApplyUseCase().Execute(ctx, declarations)
	if err != nil {
		return err
	}

	for _, result := range output.Results {
		success := result.Err == nil
		if success {
			healthService.IncrementAppliedRecords()
		} else {
			healthService.IncrementFailedRecords()
		}
		if markErr := repository.MarkApplied(ctx, result.DeclarationID, success); markErr != nil {
			logger.WithError(markErr).WithField("declaration_id", result.DeclarationID).
				Error("failed to record declaration status")
		}
	}

	logger.WithFields(logrus.Fields{
		"processed": output.Processed,
		"failed":    output.Failed,
		"changed":   output.Changed,
	}).Info("polling cycle finished")

	return nil
}
