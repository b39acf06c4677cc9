package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-portal/internal/usecase"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req authRegisterRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.Register(ctx, usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.fail(ctx, w, "register", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, result)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req authLoginRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.fail(ctx, w, "login", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing auth context", usecase.ErrUnauthorized))
		return
	}

	profile, err := h.authService.Me(ctx, principal.UserID)
	if err != nil {
		h.fail(ctx, w, "get profile", err, "user_id", principal.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profile)
}
