package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/feed"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	filter := competition.Filter{Country: strings.TrimSpace(r.URL.Query().Get("country"))}
	if raw := strings.TrimSpace(r.URL.Query().Get("active")); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: active must be a boolean", usecase.ErrInvalidInput))
			return
		}
		filter.ActiveOnly = active
	}

	items, err := h.competitionService.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list competitions", err, "country", filter.Country)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, competitionToDTO))
}

func (h *Handler) ListActiveCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActiveCompetitions")
	defer span.End()

	items, err := h.competitionService.List(ctx, competition.Filter{ActiveOnly: true})
	if err != nil {
		h.fail(ctx, w, "list active competitions", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, competitionToDTO))
}

// ListExternalCompetitions lists current leagues from the football data
// provider, optionally narrowed by ?country=.
func (h *Handler) ListExternalCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListExternalCompetitions")
	defer span.End()

	country := strings.TrimSpace(r.URL.Query().Get("country"))
	result, err := h.feedService.Competitions(ctx, country)
	if err != nil {
		h.fail(ctx, w, "list external competitions", err, "country", country)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedListToDTO(result))
}

func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetition")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	item, err := h.competitionService.Get(ctx, competitionID)
	if err != nil {
		h.fail(ctx, w, "get competition", err, "competition_id", competitionID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(item))
}

func (h *Handler) GetCompetitionBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitionBySlug")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	item, err := h.competitionService.GetBySlug(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get competition by slug", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(item))
}

// CompetitionView serves provider data for a league: standings, scorers,
// overview or the league itself ("external"). ?season= defaults to the
// league's current season.
func (h *Handler) CompetitionView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompetitionView")
	defer span.End()

	leagueID, err := pathInt64(r, "competitionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view := r.PathValue("view")
	switch view {
	case "standings":
		result, err := h.feedService.Standings(ctx, leagueID, season)
		if err != nil {
			h.fail(ctx, w, "get standings", err, "league_id", leagueID, "season", season)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, feedTableToDTO(result))
	case "scorers":
		result, err := h.feedService.TopScorers(ctx, leagueID, season)
		if err != nil {
			h.fail(ctx, w, "get top scorers", err, "league_id", leagueID, "season", season)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, feedListToDTO(result))
	case "overview":
		result, err := h.feedService.CompetitionOverview(ctx, leagueID, season)
		if err != nil {
			h.fail(ctx, w, "get competition overview", err, "league_id", leagueID, "season", season)
			return
		}
		if result.Data.TopScorers == nil {
			result.Data.TopScorers = []feed.Scorer{}
		}
		if result.Data.Standings.Standings == nil {
			result.Data.Standings.Standings = []feed.StandingRow{}
		}
		writeSuccess(ctx, w, http.StatusOK, feedItemToDTO(result))
	case "external":
		result, err := h.feedService.Competition(ctx, leagueID)
		if err != nil {
			h.fail(ctx, w, "get external competition", err, "league_id", leagueID)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, feedItemToDTO(result))
	default:
		writeError(ctx, w, fmt.Errorf("%w: unknown competition view %q", usecase.ErrNotFound, view))
	}
}

func (h *Handler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCompetition")
	defer span.End()

	var req competitionCreateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.competitionService.Create(ctx, req.toDomain())
	if err != nil {
		h.fail(ctx, w, "create competition", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, competitionToDTO(item))
}

func (h *Handler) UpdateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCompetition")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	var req competitionUpdateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.competitionService.Update(ctx, competitionID, req.toPatch())
	if err != nil {
		h.fail(ctx, w, "update competition", err, "competition_id", competitionID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(item))
}

func (h *Handler) DeleteCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCompetition")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	if err := h.competitionService.Delete(ctx, competitionID); err != nil {
		h.fail(ctx, w, "delete competition", err, "competition_id", competitionID)
		return
	}

	writeNoContent(w)
}
