package httpapi

import (
	"net/http"
	"strings"
)

const defaultTopLimit = 10

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.playerService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list players", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerToDTO))
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := r.URL.Query().Get("q")
	items, err := h.playerService.Search(ctx, query)
	if err != nil {
		h.fail(ctx, w, "search players", err, "query", query)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerToDTO))
}

func (h *Handler) TopPlayersByValue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayersByValue")
	defer span.End()

	limit, err := queryInt(r, "limit", defaultTopLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.TopByMarketValue(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "list top players by value", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerToDTO))
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	items, err := h.playerService.ListByTeam(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "list players by team", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerToDTO))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerCreateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toDomain()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Create(ctx, input)
	if err != nil {
		h.fail(ctx, w, "create player", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req playerUpdateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Update(ctx, playerID, patch)
	if err != nil {
		h.fail(ctx, w, "update player", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.fail(ctx, w, "delete player", err, "player_id", playerID)
		return
	}

	writeNoContent(w)
}
