package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/feed"
)

func (h *Handler) LiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveMatches")
	defer span.End()

	result, err := h.feedService.LiveMatches(ctx)
	if err != nil {
		h.fail(ctx, w, "list live matches", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedListToDTO(result))
}

func (h *Handler) FeaturedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FeaturedMatches")
	defer span.End()

	result, err := h.feedService.FeaturedMatches(ctx)
	if err != nil {
		h.fail(ctx, w, "list featured matches", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedListToDTO(result))
}

// MatchesByDate serves ?date=YYYY-MM-DD, or ?start=&end= as a range.
// With neither it returns today's fixtures.
func (h *Handler) MatchesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchesByDate")
	defer span.End()

	query := r.URL.Query()
	date := strings.TrimSpace(query.Get("date"))
	start := strings.TrimSpace(query.Get("start"))
	end := strings.TrimSpace(query.Get("end"))

	var (
		result feed.Result[[]feed.Match]
		err    error
	)
	if date == "" && (start != "" || end != "") {
		result, err = h.feedService.MatchesByRange(ctx, start, end)
	} else {
		result, err = h.feedService.MatchesByDate(ctx, date)
	}
	if err != nil {
		h.fail(ctx, w, "list matches by date", err, "date", date, "start", start, "end", end)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedListToDTO(result))
}

func (h *Handler) MatchesByRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchesByRange")
	defer span.End()

	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	result, err := h.feedService.MatchesByRange(ctx, from, to)
	if err != nil {
		h.fail(ctx, w, "list matches by range", err, "from", from, "to", to)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedListToDTO(result))
}

func (h *Handler) ProviderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProviderStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.feedService.ProviderStatus(ctx))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	items, err := h.matchService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list matches", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, matchToDTO))
}

func (h *Handler) ListMatchesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	items, err := h.matchService.ListByTeam(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "list matches by team", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, matchToDTO))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchCreateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Create(ctx, req.toDomain())
	if err != nil {
		h.fail(ctx, w, "create match", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req matchUpdateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Update(ctx, matchID, req.toPatch())
	if err != nil {
		h.fail(ctx, w, "update match", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.fail(ctx, w, "delete match", err, "match_id", matchID)
		return
	}

	writeNoContent(w)
}
