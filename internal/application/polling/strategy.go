package polling

import (
	"context"
	"math"
	"time"

	"ifcfg-agent/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// Strategy decides how long to wait between polling cycles.
type Strategy interface {
	// NextInterval returns the wait before the next poll.
	NextInterval(success bool) time.Duration
	// Reset restores the initial state.
	Reset()
}

// ExponentialBackoffStrategy backs off exponentially on failed cycles
// and returns to the base interval after a success.
type ExponentialBackoffStrategy struct {
	baseInterval   time.Duration
	maxInterval    time.Duration
	multiplier     float64
	currentBackoff int
	logger         *logrus.Logger
}

// NewExponentialBackoffStrategy creates a new ExponentialBackoffStrategy.
func NewExponentialBackoffStrategy(
	baseInterval time.Duration,
	maxInterval time.Duration,
	multiplier float64,
	logger *logrus.Logger,
) *ExponentialBackoffStrategy {
	if multiplier <= 1 {
		multiplier = 2.0
	}

	return &ExponentialBackoffStrategy{
		baseInterval:   baseInterval,
		maxInterval:    maxInterval,
		multiplier:     multiplier,
		currentBackoff: 0,
		logger:         logger,
	}
}

// NextInterval computes the wait before the next poll.
func (s *ExponentialBackoffStrategy) NextInterval(success bool) time.Duration {
	if success {
		if s.currentBackoff > 0 {
			s.logger.Debug("Resetting backoff after success")
			s.currentBackoff = 0
			metrics.SetBackoffLevel(0)
		}
		return s.baseInterval
	}

	s.currentBackoff++
	metrics.SetBackoffLevel(float64(s.currentBackoff))

	backoffDuration := float64(s.baseInterval) * math.Pow(s.multiplier, float64(s.currentBackoff-1))
	nextInterval := time.Duration(backoffDuration)

	if nextInterval > s.maxInterval {
		nextInterval = s.maxInterval
	}

	s.logger.WithFields(logrus.Fields{
		"backoff_count": s.currentBackoff,
		"next_interval": nextInterval,
		"max_interval":  s.maxInterval,
	}).Debug("Exponential backoff calculated")

	return nextInterval
}

// Reset clears the backoff counter.
func (s *ExponentialBackoffStrategy) Reset() {
	s.currentBackoff = 0
	metrics.SetBackoffLevel(0)
}

// PollingController runs a task on the interval dictated by the
// strategy.
type PollingController struct {
	strategy Strategy
	ticker   *time.Ticker
	logger   *logrus.Logger
}

// NewPollingController creates a new PollingController.
func NewPollingController(strategy Strategy, logger *logrus.Logger) *PollingController {
	return &PollingController{
		strategy: strategy,
		logger:   logger,
	}
}

// Start polls until the context is cancelled.
func (c *PollingController) Start(ctx context.Context, task func(context.Context) error) error {
	initialInterval := c.strategy.NextInterval(true)
	c.ticker = time.NewTicker(initialInterval)
	defer c.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-c.ticker.C:
			metrics.PollingCycleCount.Inc()
			err := task(ctx)
			success := err == nil

			c.ticker.Reset(c.strategy.NextInterval(success))

			if err != nil {
				c.logger.WithError(err).Error("Polling task failed")
			}
		}
	}
}
