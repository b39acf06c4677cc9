package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/news"
	"github.com/riskibarqy/football-portal/internal/domain/storage"
	"github.com/riskibarqy/football-portal/internal/domain/user"
)

func TestCompetitionRepository_UniqueSlugAndExternalID(t *testing.T) {
	t.Parallel()

	repo := NewCompetitionRepository(SeedCompetitions())
	ctx := t.Context()

	err := repo.Create(ctx, competition.Competition{ID: "dup-slug", Slug: "premier-league-2025-2026"})
	if !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("expected duplicate slug error, got %v", err)
	}
	err = repo.Create(ctx, competition.Competition{ID: "dup-ext", Slug: "other", ExternalID: 39})
	if !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("expected duplicate external id error, got %v", err)
	}

	got, exists, err := repo.GetByExternalID(ctx, 140)
	if err != nil || !exists {
		t.Fatalf("get by external id: exists=%v err=%v", exists, err)
	}
	if got.ID != CompetitionIDLaLiga {
		t.Fatalf("unexpected competition: %s", got.ID)
	}
}

func TestCompetitionRepository_UpdateKeepsOwnSlug(t *testing.T) {
	t.Parallel()

	repo := NewCompetitionRepository(SeedCompetitions())
	c, _, _ := repo.GetByID(t.Context(), CompetitionIDSerieA)
	c.Name = "Serie A TIM"

	if err := repo.Update(t.Context(), c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.Update(t.Context(), competition.Competition{ID: "missing"}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchRepository_ListBetweenIsHalfOpenAndAscending(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMatchRepository([]match.Match{
		{ID: "late", MatchDate: day.Add(20 * time.Hour)},
		{ID: "early", MatchDate: day},
		{ID: "next-day", MatchDate: day.Add(24 * time.Hour)},
	})

	got, err := repo.ListBetween(t.Context(), day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("list between: %v", err)
	}
	if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestMatchRepository_ListByStatus(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository([]match.Match{
		{ID: "a", Status: match.StatusLive},
		{ID: "b", Status: match.StatusHalftime},
		{ID: "c", Status: match.StatusFinished},
	})

	got, _ := repo.ListByStatus(t.Context(), match.StatusLive, match.StatusHalftime)
	if len(got) != 2 {
		t.Fatalf("expected 2 in-play matches, got %d", len(got))
	}
}

func TestNewsRepository_FilterAndViews(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := NewNewsRepository([]news.Article{
		{ID: "a", Slug: "a", Title: "Derby day", Category: news.CategoryMatch, IsPublished: true, CreatedAt: now},
		{ID: "b", Slug: "b", Title: "Draft", Category: news.CategoryMatch, Tags: []string{"Derby"}, CreatedAt: now.Add(time.Hour)},
	})
	ctx := t.Context()

	all, _ := repo.List(ctx, news.Filter{Query: "derby"})
	if len(all) != 2 || all[0].ID != "b" {
		t.Fatalf("expected newest first with tag match, got %+v", all)
	}
	published, _ := repo.List(ctx, news.Filter{PublishedOnly: true})
	if len(published) != 1 {
		t.Fatalf("expected 1 published article, got %d", len(published))
	}

	if err := repo.IncrementViews(ctx, "a"); err != nil {
		t.Fatalf("increment views: %v", err)
	}
	got, _, _ := repo.GetByID(ctx, "a")
	if got.Views != 1 {
		t.Fatalf("expected 1 view, got %d", got.Views)
	}
	if err := repo.IncrementViews(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_EmailIsUniqueCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(nil)
	ctx := t.Context()

	if err := repo.Create(ctx, user.User{ID: "u1", Email: "fan@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, user.User{ID: "u2", Email: "Fan@Example.com"}); !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if _, exists, _ := repo.GetByEmail(ctx, " FAN@example.com "); !exists {
		t.Fatalf("expected lookup by normalized email")
	}
}
