package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/news"
	"github.com/riskibarqy/football-portal/internal/platform/id"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/platform/slug"
)

const maxSlugAttempts = 50

type NewsService struct {
	repo   news.Repository
	idGen  id.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewNewsService(repo news.Repository, idGen id.Generator, logger *logging.Logger) *NewsService {
	return &NewsService{
		repo:   repo,
		idGen:  idGen,
		logger: logging.OrDefault(logger),
		now:    time.Now,
	}
}

func (s *NewsService) List(ctx context.Context, filter news.Filter) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.List")
	defer span.End()

	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: news category %q is invalid", ErrInvalidInput, filter.Category)
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

// Search matches published articles by title, summary or tag.
func (s *NewsService) Search(ctx context.Context, query string) ([]news.Article, error) {
	query, err := searchQuery(query)
	if err != nil {
		return nil, err
	}
	return s.List(ctx, news.Filter{PublishedOnly: true, Query: query})
}

// Get returns an article and counts the read. A failed view increment is
// logged and does not fail the read.
func (s *NewsService) Get(ctx context.Context, articleID string) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Get")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return news.Article{}, fmt.Errorf("%w: news id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, fmt.Errorf("get news: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: news=%s", ErrNotFound, articleID)
	}
	return s.countView(ctx, item), nil
}

func (s *NewsService) GetBySlug(ctx context.Context, value string) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.GetBySlug")
	defer span.End()

	value = strings.TrimSpace(value)
	if value == "" {
		return news.Article{}, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetBySlug(ctx, value)
	if err != nil {
		return news.Article{}, fmt.Errorf("get news by slug: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: news slug=%s", ErrNotFound, value)
	}
	return s.countView(ctx, item), nil
}

// Create stores a new article authored by authorID. The slug is derived
// from the title and suffixed with -2, -3, ... until unused.
func (s *NewsService) Create(ctx context.Context, a news.Article, authorID string) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return news.Article{}, fmt.Errorf("generate news id: %w", err)
	}
	now := s.now().UTC()
	a.ID = newID
	a.AuthorID = authorID
	a.Views = 0
	a.PublishedAt = nil
	a.CreatedAt, a.UpdatedAt = now, now
	if a.Category == "" {
		a.Category = news.CategoryGeneral
	}
	if a.IsPublished {
		a.Publish(now)
	}

	a.Slug, err = s.uniqueSlug(ctx, a.Title)
	if err != nil {
		return news.Article{}, err
	}
	if err := a.Validate(); err != nil {
		return news.Article{}, invalidInput(err)
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return news.Article{}, repoError("create news", err)
	}
	return a, nil
}

// Update applies patch. The slug stays stable when the title changes.
func (s *NewsService) Update(ctx context.Context, articleID string, patch news.Patch) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Update")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	item, exists, err := s.repo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, fmt.Errorf("get news: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: news=%s", ErrNotFound, articleID)
	}

	now := s.now().UTC()
	patch.Apply(&item)
	if item.IsPublished {
		item.Publish(now)
	}
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		return news.Article{}, invalidInput(err)
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return news.Article{}, repoError("update news", err)
	}
	return item, nil
}

func (s *NewsService) Delete(ctx context.Context, articleID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Delete")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return fmt.Errorf("%w: news id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, articleID); err != nil {
		return repoError("delete news", err)
	}
	return nil
}

func (s *NewsService) countView(ctx context.Context, item news.Article) news.Article {
	if err := s.repo.IncrementViews(ctx, item.ID); err != nil {
		s.logger.WarnContext(ctx, "increment news views failed", "news_id", item.ID, "error", err)
		return item
	}
	item.Views++
	return item
}

func (s *NewsService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		return "", fmt.Errorf("%w: news title must contain letters or digits", ErrInvalidInput)
	}

	candidate := base
	for n := 2; n <= maxSlugAttempts+1; n++ {
		_, taken, err := s.repo.GetBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check news slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = slug.WithSuffix(base, n)
	}
	return "", fmt.Errorf("%w: no free slug for %q", ErrConflict, base)
}
