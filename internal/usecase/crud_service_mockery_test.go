package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/news"
	"github.com/riskibarqy/football-portal/internal/domain/storage"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	competitionmock "github.com/riskibarqy/football-portal/internal/mocks/domain/competition"
	matchmock "github.com/riskibarqy/football-portal/internal/mocks/domain/match"
	newsmock "github.com/riskibarqy/football-portal/internal/mocks/domain/news"
	teammock "github.com/riskibarqy/football-portal/internal/mocks/domain/team"
	"github.com/riskibarqy/football-portal/internal/platform/id"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func sameCtx(ctx context.Context) any {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func TestCompetitionService_Create_DerivesSlugUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-comp")
	repo := competitionmock.NewRepository(t)
	service := NewCompetitionService(repo, &id.SequenceGenerator{Prefix: "comp"})

	repo.
		On("Create", sameCtx(ctx), mock.MatchedBy(func(c competition.Competition) bool {
			return c.Slug == "la-liga-2025-2026" && c.ID != "" && c.Type == competition.TypeLeague
		})).
		Return(nil).
		Once()

	got, err := service.Create(ctx, competition.Competition{Name: "La Liga", Country: "Spain", Season: "2025/2026"})
	if err != nil {
		t.Fatalf("create competition: %v", err)
	}
	if got.Slug != "la-liga-2025-2026" {
		t.Fatalf("unexpected slug: %s", got.Slug)
	}
}

func TestCompetitionService_Create_DuplicateIsConflictUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := competitionmock.NewRepository(t)
	service := NewCompetitionService(repo, &id.SequenceGenerator{Prefix: "comp"})

	repo.
		On("Create", sameCtx(ctx), mock.Anything).
		Return(storage.ErrDuplicate).
		Once()

	_, err := service.Create(ctx, competition.Competition{Name: "Serie A", Country: "Italy", Season: "2025/2026"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCompetitionService_Create_InvalidSkipsRepositoryUsingMockery(t *testing.T) {
	t.Parallel()

	repo := competitionmock.NewRepository(t)
	service := NewCompetitionService(repo, &id.SequenceGenerator{Prefix: "comp"})

	_, err := service.Create(context.Background(), competition.Competition{Name: "No Country", Season: "2025"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_ListByCompetition_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	competitionRepo := competitionmock.NewRepository(t)
	service := NewTeamService(teamRepo, competitionRepo, &id.SequenceGenerator{Prefix: "team"})

	competitionRepo.
		On("GetByID", sameCtx(ctx), "missing").
		Return(competition.Competition{}, false, nil).
		Once()

	_, err := service.ListByCompetition(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_Search_RequiresTwoCharactersUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, competitionmock.NewRepository(t), &id.SequenceGenerator{})

	if _, err := service.Search(ctx, " a "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	teamRepo.
		On("Search", sameCtx(ctx), "ars").
		Return([]team.Team{{ID: "team-arsenal", Name: "Arsenal"}}, nil).
		Once()

	got, err := service.Search(ctx, " ars ")
	if err != nil {
		t.Fatalf("search teams: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 team, got %d", len(got))
	}
}

func TestMatchService_Create_RequiresExistingTeamsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	competitionRepo := competitionmock.NewRepository(t)
	service := NewMatchService(matchRepo, teamRepo, competitionRepo, &id.SequenceGenerator{Prefix: "match"})

	teamRepo.
		On("GetByIDs", sameCtx(ctx), []string{"home", "away"}).
		Return([]team.Team{{ID: "home"}}, nil).
		Once()

	_, err := service.Create(ctx, match.Match{
		MatchDate:     feedToday,
		HomeTeamID:    "home",
		AwayTeamID:    "away",
		CompetitionID: "comp",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Create_DefaultsToScheduledUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	competitionRepo := competitionmock.NewRepository(t)
	service := NewMatchService(matchRepo, teamRepo, competitionRepo, &id.SequenceGenerator{Prefix: "match"})

	teamRepo.
		On("GetByIDs", sameCtx(ctx), []string{"home", "away"}).
		Return([]team.Team{{ID: "home"}, {ID: "away"}}, nil).
		Once()
	competitionRepo.
		On("GetByID", sameCtx(ctx), "comp").
		Return(competition.Competition{ID: "comp"}, true, nil).
		Once()
	matchRepo.
		On("Create", sameCtx(ctx), mock.MatchedBy(func(m match.Match) bool { return m.Status == match.StatusScheduled })).
		Return(nil).
		Once()

	got, err := service.Create(ctx, match.Match{
		MatchDate:     feedToday,
		HomeTeamID:    "home",
		AwayTeamID:    "away",
		CompetitionID: "comp",
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestMatchService_Delete_MissingIsNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	service := NewMatchService(matchRepo, teammock.NewRepository(t), competitionmock.NewRepository(t), &id.SequenceGenerator{})

	matchRepo.
		On("Delete", sameCtx(ctx), "gone").
		Return(storage.ErrNotFound).
		Once()

	if err := service.Delete(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewsService_Create_SuffixesTakenSlugUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newsmock.NewRepository(t)
	service := NewNewsService(repo, &id.SequenceGenerator{Prefix: "news"}, logging.NewNop())
	service.now = func() time.Time { return feedToday }

	repo.On("GetBySlug", sameCtx(ctx), "derby-day").Return(news.Article{ID: "a"}, true, nil).Once()
	repo.On("GetBySlug", sameCtx(ctx), "derby-day-2").Return(news.Article{ID: "b"}, true, nil).Once()
	repo.On("GetBySlug", sameCtx(ctx), "derby-day-3").Return(news.Article{}, false, nil).Once()
	repo.
		On("Create", sameCtx(ctx), mock.MatchedBy(func(a news.Article) bool {
			return a.Slug == "derby-day-3" && a.AuthorID == "author-1" && a.PublishedAt != nil
		})).
		Return(nil).
		Once()

	got, err := service.Create(ctx, news.Article{Title: "Derby Day!", Content: "Report", IsPublished: true}, "author-1")
	if err != nil {
		t.Fatalf("create news: %v", err)
	}
	if got.Slug != "derby-day-3" || got.Category != news.CategoryGeneral {
		t.Fatalf("unexpected article: slug=%s category=%s", got.Slug, got.Category)
	}
	if !got.PublishedAt.Equal(feedToday) {
		t.Fatalf("expected publish stamp, got %v", got.PublishedAt)
	}
}

func TestNewsService_Get_ViewIncrementFailureIsNotFatalUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newsmock.NewRepository(t)
	service := NewNewsService(repo, &id.SequenceGenerator{}, logging.NewNop())

	repo.On("GetByID", sameCtx(ctx), "n1").Return(news.Article{ID: "n1", Views: 4}, true, nil).Once()
	repo.On("IncrementViews", sameCtx(ctx), "n1").Return(errors.New("db timeout")).Once()

	got, err := service.Get(ctx, "n1")
	if err != nil {
		t.Fatalf("get news: %v", err)
	}
	if got.Views != 4 {
		t.Fatalf("views must be unchanged on failed increment, got %d", got.Views)
	}
}

func TestNewsService_Get_CountsViewUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newsmock.NewRepository(t)
	service := NewNewsService(repo, &id.SequenceGenerator{}, logging.NewNop())

	repo.On("GetBySlug", sameCtx(ctx), "derby").Return(news.Article{ID: "n1", Views: 4}, true, nil).Once()
	repo.On("IncrementViews", sameCtx(ctx), "n1").Return(nil).Once()

	got, err := service.GetBySlug(ctx, "derby")
	if err != nil {
		t.Fatalf("get news by slug: %v", err)
	}
	if got.Views != 5 {
		t.Fatalf("expected 5 views, got %d", got.Views)
	}
}
