// Package notification delivers the best-effort side effects fired after an
// order is placed. Everything here is fire-and-forget: failures are logged
// and never reach the checkout path.
package notification

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"atelier/internal/config"
)

type Dispatcher struct {
	cfg        config.NotificationConfig
	logger     *zap.Logger
	httpClient *http.Client

	wg sync.WaitGroup
}

func NewDispatcher(cfg config.NotificationConfig, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		cfg:        cfg,
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Go runs a notification task in the background. Errors and panics are
// logged and swallowed; the caller never waits.
func (d *Dispatcher) Go(name string, fn func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("notification task panicked",
					zap.String("task", name), zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			d.logger.Warn("notification task failed",
				zap.String("task", name), zap.Error(err))
			return
		}
		d.logger.Info("notification task completed", zap.String("task", name))
	}()
}

// Wait blocks until in-flight tasks finish. Used by tests and shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
