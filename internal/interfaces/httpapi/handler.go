package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Feed         *usecase.FeedService
	Auth         *usecase.AuthService
	Competitions *usecase.CompetitionService
	Teams        *usecase.TeamService
	Players      *usecase.PlayerService
	Matches      *usecase.MatchService
	Transfers    *usecase.TransferService
	News         *usecase.NewsService
	Users        *usecase.UserService
}

type Handler struct {
	feedService        *usecase.FeedService
	authService        *usecase.AuthService
	competitionService *usecase.CompetitionService
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	transferService    *usecase.TransferService
	newsService        *usecase.NewsService
	userService        *usecase.UserService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	return &Handler{
		feedService:        services.Feed,
		authService:        services.Auth,
		competitionService: services.Competitions,
		teamService:        services.Teams,
		playerService:      services.Players,
		matchService:       services.Matches,
		transferService:    services.Transfers,
		newsService:        services.News,
		userService:        services.Users,
		logger:             logging.OrDefault(logger).Named("httpapi"),
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// bind decodes the JSON body into payload and validates it.
func (h *Handler) bind(ctx context.Context, r *http.Request, payload any) error {
	if err := decodeJSON(r, payload); err != nil {
		return err
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// fail logs err at a level matching its status and writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, op string, err error, args ...any) {
	fields := append([]any{"error", err}, args...)
	status := mapError(ctx, err).HTTPStatus
	recordSpanFailure(ctx, err, status)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, op+" failed", fields...)
	} else {
		h.logger.WarnContext(ctx, op+" failed", fields...)
	}
	writeError(ctx, w, err)
}
