package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	// Metrics serves GET /metrics when set.
	Metrics http.Handler
	// Observer receives per-request HTTP measurements.
	Observer HTTPObserver
}

func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, cfg RouterConfig) http.Handler {
	logger = logging.OrDefault(logger).Named("http")

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.Metrics)
	registerAuthRoutes(mux, handler, verifier)
	registerMatchRoutes(mux, handler, verifier)
	registerCompetitionRoutes(mux, handler, verifier)
	registerTeamRoutes(mux, handler, verifier)
	registerPlayerRoutes(mux, handler, verifier)
	registerTransferRoutes(mux, handler, verifier)
	registerNewsRoutes(mux, handler, verifier)
	registerUserRoutes(mux, handler, verifier)

	return RequestTracing(RequestLogging(logger, cfg.Observer, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
