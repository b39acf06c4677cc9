package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-portal/internal/config"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

// Runtime holds the started tracing, profiling and pprof components.
type Runtime struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
}

// Start brings up every enabled observability component. On failure the
// components already started are stopped before returning.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	logger = logging.OrDefault(logger).Named("observability")

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	return &Runtime{
		logger:          logger,
		shutdownTracing: shutdownTracing,
		stopProfiler:    stopProfiler,
		pprof:           StartPprofServer(cfg, logger),
	}, nil
}

// Shutdown stops components in reverse start order and joins their errors.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var errs []error
	if err := StopPprofServer(ctx, r.pprof, r.logger); err != nil {
		errs = append(errs, fmt.Errorf("stop pprof: %w", err))
	}
	if err := r.stopProfiler(); err != nil {
		errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
	}
	if err := r.shutdownTracing(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
	}
	return errors.Join(errs...)
}
