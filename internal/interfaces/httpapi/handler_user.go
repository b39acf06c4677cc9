package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	items, err := h.userService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list users", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, userToDTO))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	item, err := h.userService.Get(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "get user", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	var req userUpdateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.userService.Update(ctx, userID, req.toPatch())
	if err != nil {
		h.fail(ctx, w, "update user", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	if err := h.userService.Delete(ctx, userID); err != nil {
		h.fail(ctx, w, "delete user", err, "user_id", userID)
		return
	}

	writeNoContent(w)
}
