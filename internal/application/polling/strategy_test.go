package polling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestExponentialBackoffStrategy_NextInterval(t *testing.T) {
	strategy := NewExponentialBackoffStrategy(10*time.Second, 2*time.Minute, 2.0, newTestLogger())

	// Success keeps the base interval.
	assert.Equal(t, 10*time.Second, strategy.NextInterval(true))

	// Consecutive failures double the interval.
	assert.Equal(t, 10*time.Second, strategy.NextInterval(false))
	assert.Equal(t, 20*time.Second, strategy.NextInterval(false))
	assert.Equal(t, 40*time.Second, strategy.NextInterval(false))
	assert.Equal(t, 80*time.Second, strategy.NextInterval(false))

	// Capped at the maximum.
	assert.Equal(t, 2*time.Minute, strategy.NextInterval(false))
	assert.Equal(t, 2*time.Minute, strategy.NextInterval(false))

	// Success resets to the base interval.
	assert.Equal(t, 10*time.Second, strategy.NextInterval(true))
	assert.Equal(t, 10*time.Second, strategy.NextInterval(false))
}

func TestExponentialBackoffStrategy_InvalidMultiplierDefaults(t *testing.T) {
	strategy := NewExponentialBackoffStrategy(10*time.Second, 2*time.Minute, 0.5, newTestLogger())

	strategy.NextInterval(false)
	assert.Equal(t, 20*time.Second, strategy.NextInterval(false))
}

func TestExponentialBackoffStrategy_Reset(t *testing.T) {
	strategy := NewExponentialBackoffStrategy(10*time.Second, 2*time.Minute, 2.0, newTestLogger())

	strategy.NextInterval(false)
	strategy.NextInterval(false)
	strategy.Reset()

	assert.Equal(t, 10*time.Second, strategy.NextInterval(false))
}

func TestPollingController_StopsOnContextCancel(t *testing.T) {
	strategy := NewExponentialBackoffStrategy(5*time.Millisecond, 50*time.Millisecond, 2.0, newTestLogger())
	controller := NewPollingController(strategy, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())

	ran := make(chan struct{}, 1)
	go func() {
		<-ran
		cancel()
	}()

	err := controller.Start(ctx, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPollingController_KeepsPollingAfterTaskFailure(t *testing.T) {
	strategy := NewExponentialBackoffStrategy(5*time.Millisecond, 50*time.Millisecond, 2.0, newTestLogger())
	controller := NewPollingController(strategy, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	err := controller.Start(ctx, func(ctx context.Context) error {
		calls++
		if calls >= 3 {
			cancel()
			return nil
		}
		return errors.New("transient failure")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, calls, 3)
}
