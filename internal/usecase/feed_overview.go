package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/football-portal/internal/domain/feed"
)

// CompetitionOverview loads league details, standings and top scorers in
// parallel. The result source is the weakest of the three parts.
func (s *FeedService) CompetitionOverview(ctx context.Context, leagueID int64, season int) (feed.Result[feed.Overview], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.CompetitionOverview")
	defer span.End()

	season, err := s.leagueSeason(leagueID, season)
	if err != nil {
		return feed.Result[feed.Overview]{}, err
	}

	var (
		league    feed.Result[*feed.Competition]
		standings feed.Result[feed.StandingsTable]
		scorers   feed.Result[[]feed.Scorer]
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		league, err = s.Competition(ctx, leagueID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		standings, err = s.Standings(ctx, leagueID, season)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		scorers, err = s.TopScorers(ctx, leagueID, season)
		return err
	})
	if err := p.Wait(); err != nil {
		return feed.Result[feed.Overview]{}, fmt.Errorf("competition overview league=%d: %w", leagueID, err)
	}

	source := weakestSource(league.Source, standings.Source, scorers.Source)
	message := ""
	for _, m := range []string{league.Message, standings.Message, scorers.Message} {
		if m != "" {
			message = m
			break
		}
	}

	return feed.Result[feed.Overview]{
		Data: feed.Overview{
			Competition: league.Data,
			Standings:   standings.Data,
			TopScorers:  scorers.Data,
		},
		Source:  source,
		Message: message,
	}, nil
}

// Warm pre-fills the cache for live, today's and featured fixtures.
// Failures are logged and never returned.
func (s *FeedService) Warm(ctx context.Context) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.Warm")
	defer span.End()

	tasks := map[string]func(context.Context) error{
		"live": func(ctx context.Context) error {
			_, err := s.LiveMatches(ctx)
			return err
		},
		"today": func(ctx context.Context) error {
			_, err := s.MatchesByDate(ctx, "")
			return err
		},
		"featured": func(ctx context.Context) error {
			_, err := s.FeaturedMatches(ctx)
			return err
		},
	}

	workers, err := ants.NewPool(s.cfg.WarmWorkers)
	if err != nil {
		s.logger.WarnContext(ctx, "create warm-up worker pool failed", "error", err)
		return
	}
	defer workers.Release()

	var wg sync.WaitGroup
	for name, task := range tasks {
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			if err := task(ctx); err != nil {
				s.logger.WarnContext(ctx, "feed warm-up failed", "task", name, "error", err)
				return
			}
			s.logger.DebugContext(ctx, "feed warm-up done", "task", name)
		}); err != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "submit warm-up task failed", "task", name, "error", err)
		}
	}
	wg.Wait()
}

func weakestSource(sources ...feed.Source) feed.Source {
	rank := func(s feed.Source) int {
		switch s {
		case feed.SourceExternal:
			return 0
		case feed.SourceLocal:
			return 1
		default:
			return 2
		}
	}
	weakest := feed.SourceExternal
	for _, s := range sources {
		if rank(s) > rank(weakest) {
			weakest = s
		}
	}
	return weakest
}
