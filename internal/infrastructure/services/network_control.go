package services

import (
	"context"
	"fmt"
	"time"

	"ifcfg-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// RetryConfig controls command retry behaviour.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig is the retry policy used for service restarts.
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 1 * time.Second,
	MaxDelay:     30 * time.Second,
	Multiplier:   2.0,
}

// NetworkControl drives the OS network service through systemctl. It
// implements the ServiceController port: NetworkManager is shut down
// before records are applied, and the legacy network service is
// restarted after content changes.
type NetworkControl struct {
	executor interfaces.CommandExecutor
	logger   *logrus.Logger
	retry    RetryConfig
}

// NewNetworkControl creates a new NetworkControl.
func NewNetworkControl(executor interfaces.CommandExecutor, logger *logrus.Logger) *NetworkControl {
	return &NetworkControl{
		executor: executor,
		logger:   logger,
		retry:    DefaultRetryConfig,
	}
}

// DisableNetworkManager stops and disables NetworkManager. A missing
// unit is not an error; hosts without NetworkManager are already in the
// wanted state.
func (s *NetworkControl) DisableNetworkManager(ctx context.Context) error {
	_, err := s.executor.ExecuteWithTimeout(ctx, 30*time.Second,
		"systemctl", "disable", "--now", "NetworkManager")
	if err != nil {
		s.logger.WithError(err).Debug("NetworkManager disable skipped (unit missing or already disabled)")
	}
	return nil
}

// RestartNetwork restarts the network service with retry.
func (s *NetworkControl) RestartNetwork(ctx context.Context) error {
	return retryWithBackoff(ctx, s.retry, func() error {
		_, err := s.executor.ExecuteWithTimeout(ctx, 60*time.Second,
			"systemctl", "restart", "network")
		if err != nil {
			s.logger.WithError(err).Warn("network service restart failed")
		}
		return err
	})
}

// retryWithBackoff retries an operation with exponential backoff.
func retryWithBackoff(ctx context.Context, config RetryConfig, operation func() error) error {
	delay := config.InitialDelay

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		if attempt == config.MaxAttempts {
			return fmt.Errorf("retries exhausted (%d attempts): %w", config.MaxAttempts, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * config.Multiplier)
			if delay > config.MaxDelay {
				delay = config.MaxDelay
			}
		}
	}

	return fmt.Errorf("retry failed")
}
