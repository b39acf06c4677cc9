package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfers")
	defer span.End()

	items, err := h.transferService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list transfers", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, transferToDTO))
}

func (h *Handler) TopTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopTransfers")
	defer span.End()

	limit, err := queryInt(r, "limit", defaultTopLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.transferService.Top(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "list top transfers", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, transferToDTO))
}

func (h *Handler) ListTransfersBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfersBySeason")
	defer span.End()

	season := strings.TrimSpace(r.PathValue("season"))
	items, err := h.transferService.ListBySeason(ctx, season)
	if err != nil {
		h.fail(ctx, w, "list transfers by season", err, "season", season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, transferToDTO))
}

func (h *Handler) ListTransfersByPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfersByPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	items, err := h.transferService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "list transfers by player", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, transferToDTO))
}

func (h *Handler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTransfer")
	defer span.End()

	transferID := strings.TrimSpace(r.PathValue("transferID"))
	item, err := h.transferService.Get(ctx, transferID)
	if err != nil {
		h.fail(ctx, w, "get transfer", err, "transfer_id", transferID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferToDTO(item))
}

func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTransfer")
	defer span.End()

	var req transferCreateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toDomain()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.transferService.Create(ctx, input)
	if err != nil {
		h.fail(ctx, w, "create transfer", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, transferToDTO(item))
}

func (h *Handler) UpdateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTransfer")
	defer span.End()

	transferID := strings.TrimSpace(r.PathValue("transferID"))
	var req transferUpdateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.transferService.Update(ctx, transferID, patch)
	if err != nil {
		h.fail(ctx, w, "update transfer", err, "transfer_id", transferID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferToDTO(item))
}

func (h *Handler) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTransfer")
	defer span.End()

	transferID := strings.TrimSpace(r.PathValue("transferID"))
	if err := h.transferService.Delete(ctx, transferID); err != nil {
		h.fail(ctx, w, "delete transfer", err, "transfer_id", transferID)
		return
	}

	writeNoContent(w)
}
