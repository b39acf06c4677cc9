package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/news"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

// ListNews returns published articles, optionally narrowed by ?category=.
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	filter := news.Filter{
		PublishedOnly: true,
		Category:      news.Category(strings.TrimSpace(r.URL.Query().Get("category"))),
	}
	items, err := h.newsService.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list news", err, "category", filter.Category)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, newsToDTO))
}

func (h *Handler) SearchNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchNews")
	defer span.End()

	query := r.URL.Query().Get("q")
	items, err := h.newsService.Search(ctx, query)
	if err != nil {
		h.fail(ctx, w, "search news", err, "query", query)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, newsToDTO))
}

func (h *Handler) ListNewsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNewsByCategory")
	defer span.End()

	category := news.Category(strings.TrimSpace(r.PathValue("category")))
	items, err := h.newsService.List(ctx, news.Filter{PublishedOnly: true, Category: category})
	if err != nil {
		h.fail(ctx, w, "list news by category", err, "category", category)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, newsToDTO))
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNews")
	defer span.End()

	newsID := strings.TrimSpace(r.PathValue("newsID"))
	item, err := h.newsService.Get(ctx, newsID)
	if err != nil {
		h.fail(ctx, w, "get news", err, "news_id", newsID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item))
}

func (h *Handler) GetNewsBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNewsBySlug")
	defer span.End()

	slug := strings.TrimSpace(r.PathValue("slug"))
	item, err := h.newsService.GetBySlug(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get news by slug", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item))
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNews")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing auth context", usecase.ErrUnauthorized))
		return
	}

	var req newsCreateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.newsService.Create(ctx, req.toDomain(), principal.UserID)
	if err != nil {
		h.fail(ctx, w, "create news", err, "author_id", principal.UserID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, newsToDTO(item))
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNews")
	defer span.End()

	newsID := strings.TrimSpace(r.PathValue("newsID"))
	var req newsUpdateRequest
	if err := h.bind(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.newsService.Update(ctx, newsID, req.toPatch())
	if err != nil {
		h.fail(ctx, w, "update news", err, "news_id", newsID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item))
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNews")
	defer span.End()

	newsID := strings.TrimSpace(r.PathValue("newsID"))
	if err := h.newsService.Delete(ctx, newsID); err != nil {
		h.fail(ctx, w, "delete news", err, "news_id", newsID)
		return
	}

	writeNoContent(w)
}
