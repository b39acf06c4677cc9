package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/feed"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/domain/upstream"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

const (
	msgProviderFallback   = "football provider unavailable, serving locally stored data"
	msgProviderDown       = "football provider unavailable and no local data could be read"
	msgNoLocalEquivalent  = "football provider unavailable, data not stored locally"
	msgFeaturedAnyLeague  = "no major league matches found, showing the first day with matches"
	msgRangeTruncatedTmpl = "range truncated to %d days"
)

// ResponseCache is the read-through cache used for provider payloads.
type ResponseCache interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error)
}

// FallbackRecorder counts feed responses not served by the provider.
type FallbackRecorder interface {
	IncFallback(operation, source string)
}

type FeedConfig struct {
	MajorLeagueIDs   []int64
	FeaturedDays     int
	FeaturedLimit    int
	RangeMaxDays     int
	FetchConcurrency int
	TopScorersLimit  int
	WarmWorkers      int
	Location         *time.Location
	Now              func() time.Time
}

func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		MajorLeagueIDs:   []int64{39, 140, 135, 78, 61},
		FeaturedDays:     4,
		FeaturedLimit:    6,
		RangeMaxDays:     7,
		FetchConcurrency: 2,
		TopScorersLimit:  10,
		WarmWorkers:      3,
		Location:         time.UTC,
		Now:              time.Now,
	}
}

func normalizeFeedConfig(cfg FeedConfig) FeedConfig {
	defaults := DefaultFeedConfig()
	if len(cfg.MajorLeagueIDs) == 0 {
		cfg.MajorLeagueIDs = defaults.MajorLeagueIDs
	}
	if cfg.FeaturedDays < 1 {
		cfg.FeaturedDays = defaults.FeaturedDays
	}
	if cfg.FeaturedLimit < 1 {
		cfg.FeaturedLimit = defaults.FeaturedLimit
	}
	if cfg.RangeMaxDays < 1 {
		cfg.RangeMaxDays = defaults.RangeMaxDays
	}
	if cfg.FetchConcurrency < 1 {
		cfg.FetchConcurrency = defaults.FetchConcurrency
	}
	if cfg.TopScorersLimit < 1 {
		cfg.TopScorersLimit = defaults.TopScorersLimit
	}
	if cfg.WarmWorkers < 1 {
		cfg.WarmWorkers = defaults.WarmWorkers
	}
	if cfg.Location == nil {
		cfg.Location = defaults.Location
	}
	if cfg.Now == nil {
		cfg.Now = defaults.Now
	}
	return cfg
}

// FeedService aggregates provider data for the read endpoints. Provider
// payloads are cached before normalization; when the provider is
// unavailable it serves equivalent local rows tagged feed.SourceLocal.
type FeedService struct {
	provider        upstream.Provider
	cache           ResponseCache
	matchRepo       match.Repository
	teamRepo        team.Repository
	competitionRepo competition.Repository
	normalizer      feed.Normalizer
	cfg             FeedConfig
	major           map[int64]struct{}
	logger          *logging.Logger
	recorder        FallbackRecorder
}

func NewFeedService(
	provider upstream.Provider,
	cache ResponseCache,
	matchRepo match.Repository,
	teamRepo team.Repository,
	competitionRepo competition.Repository,
	cfg FeedConfig,
	logger *logging.Logger,
	recorder FallbackRecorder,
) *FeedService {
	cfg = normalizeFeedConfig(cfg)
	major := make(map[int64]struct{}, len(cfg.MajorLeagueIDs))
	for _, id := range cfg.MajorLeagueIDs {
		major[id] = struct{}{}
	}

	return &FeedService{
		provider:        provider,
		cache:           cache,
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		competitionRepo: competitionRepo,
		normalizer:      feed.NewNormalizer(cfg.Location),
		cfg:             cfg,
		major:           major,
		logger:          logging.OrDefault(logger).Named("feed"),
		recorder:        recorder,
	}
}

func (s *FeedService) LiveMatches(ctx context.Context) (feed.Result[[]feed.Match], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.LiveMatches")
	defer span.End()

	fixtures, err := s.fixtures(ctx, "fixtures:live", upstream.FixtureQuery{Live: true})
	if err == nil {
		return external(s.normalizer.Fixtures(fixtures)), nil
	}
	if !upstream.IsUnavailable(err) {
		return feed.Result[[]feed.Match]{}, fmt.Errorf("fetch live fixtures: %w", err)
	}

	s.logger.WarnContext(ctx, "live fixtures unavailable, using local matches", "error", err)
	local, lerr := s.matchRepo.ListByStatus(ctx, match.StatusLive, match.StatusHalftime)
	if lerr != nil {
		return s.unavailableMatches(ctx, "live", lerr), nil
	}
	return s.localResult(ctx, "live", local), nil
}

// MatchesByDate lists fixtures on date (YYYY-MM-DD, UTC). An empty date
// means today.
func (s *FeedService) MatchesByDate(ctx context.Context, date string) (feed.Result[[]feed.Match], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.MatchesByDate")
	defer span.End()

	day, err := s.parseDayOrToday(date)
	if err != nil {
		return feed.Result[[]feed.Match]{}, err
	}

	fixtures, err := s.fixturesOn(ctx, day)
	if err == nil {
		return external(s.normalizer.Fixtures(fixtures)), nil
	}
	if !upstream.IsUnavailable(err) {
		return feed.Result[[]feed.Match]{}, fmt.Errorf("fetch fixtures date=%s: %w", formatDay(day), err)
	}

	s.logger.WarnContext(ctx, "date fixtures unavailable, using local matches", "date", formatDay(day), "error", err)
	local, lerr := s.matchRepo.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	if lerr != nil {
		return s.unavailableMatches(ctx, "matches_by_date", lerr), nil
	}
	return s.localResult(ctx, "matches_by_date", local), nil
}

// MatchesByRange expands [from, to] into days, keeps at most RangeMaxDays
// of them and concatenates each day's fixtures in ascending order.
func (s *FeedService) MatchesByRange(ctx context.Context, from, to string) (feed.Result[[]feed.Match], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.MatchesByRange")
	defer span.End()

	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return feed.Result[[]feed.Match]{}, fmt.Errorf("%w: both start and end dates are required", ErrInvalidInput)
	}
	start, err := parseDay(from)
	if err != nil {
		return feed.Result[[]feed.Match]{}, err
	}
	end, err := parseDay(to)
	if err != nil {
		return feed.Result[[]feed.Match]{}, err
	}
	if end.Before(start) {
		return feed.Result[[]feed.Match]{}, fmt.Errorf("%w: start date must not be after end date", ErrInvalidInput)
	}

	days := make([]time.Time, 0, s.cfg.RangeMaxDays)
	for d := start; !d.After(end) && len(days) < s.cfg.RangeMaxDays; d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	message := ""
	if last := days[len(days)-1]; last.Before(end) {
		message = fmt.Sprintf(msgRangeTruncatedTmpl, s.cfg.RangeMaxDays)
	}

	mapper := iter.Mapper[time.Time, []upstream.Fixture]{MaxGoroutines: s.cfg.FetchConcurrency}
	perDay, err := mapper.MapErr(days, func(d *time.Time) ([]upstream.Fixture, error) {
		return s.fixturesOn(ctx, *d)
	})
	if err == nil {
		out := make([]feed.Match, 0)
		for _, fixtures := range perDay {
			out = append(out, s.normalizer.Fixtures(fixtures)...)
		}
		res := external(out)
		res.Message = message
		return res, nil
	}
	if !upstream.IsUnavailable(err) {
		return feed.Result[[]feed.Match]{}, fmt.Errorf("fetch fixtures range %s..%s: %w", formatDay(start), formatDay(end), err)
	}

	s.logger.WarnContext(ctx, "range fixtures unavailable, using local matches", "from", formatDay(start), "days", len(days), "error", err)
	local, lerr := s.matchRepo.ListBetween(ctx, days[0], days[len(days)-1].AddDate(0, 0, 1))
	if lerr != nil {
		return s.unavailableMatches(ctx, "matches_by_range", lerr), nil
	}
	res := s.localResult(ctx, "matches_by_range", local)
	if message != "" {
		res.Message = res.Message + "; " + message
	}
	return res, nil
}

// FeaturedMatches searches today and the following days for major-league
// fixtures and stops at the first day that has any.
func (s *FeedService) FeaturedMatches(ctx context.Context) (feed.Result[[]feed.Match], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.FeaturedMatches")
	defer span.End()

	today := s.today()
	picked, anyLeague, err := pickFeatured(
		s.cfg.FeaturedDays,
		s.cfg.FeaturedLimit,
		func(i int) ([]upstream.Fixture, error) {
			return s.fixturesOn(ctx, today.AddDate(0, 0, i))
		},
		func(f upstream.Fixture) bool { return s.isMajor(f.League.ID) },
	)
	if err == nil {
		res := external(s.normalizer.Fixtures(picked))
		if anyLeague {
			res.Message = msgFeaturedAnyLeague
		}
		return res, nil
	}
	if !upstream.IsUnavailable(err) {
		return feed.Result[[]feed.Match]{}, fmt.Errorf("search featured fixtures: %w", err)
	}

	s.logger.WarnContext(ctx, "featured fixtures unavailable, searching local matches", "error", err)
	local, anyLeague, lerr := pickFeatured(
		s.cfg.FeaturedDays,
		s.cfg.FeaturedLimit,
		func(i int) ([]feed.Match, error) {
			day := today.AddDate(0, 0, i)
			ms, err := s.matchRepo.ListBetween(ctx, day, day.AddDate(0, 0, 1))
			if err != nil {
				return nil, err
			}
			return s.renderLocal(ctx, ms), nil
		},
		func(m feed.Match) bool { return s.isMajor(m.LeagueRef) },
	)
	if lerr != nil {
		return s.unavailableMatches(ctx, "featured", lerr), nil
	}
	s.countFallback(ctx, "featured", feed.SourceLocal)
	res := feed.Result[[]feed.Match]{Data: local, Source: feed.SourceLocal, Message: msgProviderFallback}
	if anyLeague {
		res.Message = msgProviderFallback + "; " + msgFeaturedAnyLeague
	}
	return res, nil
}

// pickFeatured loads days in order. It returns the first day's major
// matches (up to limit) as soon as one day has any; otherwise up to limit
// matches of the first day with data, with anyLeague set.
func pickFeatured[T any](days, limit int, load func(day int) ([]T, error), isMajor func(T) bool) ([]T, bool, error) {
	var firstWithData []T
	for i := 0; i < days; i++ {
		items, err := load(i)
		if err != nil {
			return nil, false, err
		}

		major := make([]T, 0, limit)
		for _, item := range items {
			if isMajor(item) {
				major = append(major, item)
				if len(major) == limit {
					break
				}
			}
		}
		if len(major) > 0 {
			return major, false, nil
		}
		if firstWithData == nil && len(items) > 0 {
			firstWithData = items
		}
	}

	if firstWithData == nil {
		return []T{}, false, nil
	}
	if len(firstWithData) > limit {
		firstWithData = firstWithData[:limit]
	}
	return append([]T(nil), firstWithData...), true, nil
}

// Competitions lists current provider leagues, optionally by country name.
func (s *FeedService) Competitions(ctx context.Context, country string) (feed.Result[[]feed.Competition], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.Competitions")
	defer span.End()

	country = strings.TrimSpace(country)
	q := upstream.LeagueQuery{Current: true, Type: "league", Country: country}
	v, err := s.cache.GetOrLoad(ctx, "leagues:current:"+strings.ToLower(country), func(ctx context.Context) (any, error) {
		return s.provider.Leagues(ctx, q)
	})
	if err == nil {
		entries, _ := v.([]upstream.LeagueEntry)
		return feed.Result[[]feed.Competition]{Data: s.normalizer.Leagues(entries), Source: feed.SourceExternal}, nil
	}
	if !upstream.IsUnavailable(err) {
		return feed.Result[[]feed.Competition]{}, fmt.Errorf("fetch leagues: %w", err)
	}

	s.logger.WarnContext(ctx, "leagues unavailable, using local competitions", "country", country, "error", err)
	local, lerr := s.competitionRepo.List(ctx, competition.Filter{Country: country})
	if lerr != nil {
		s.logger.WarnContext(ctx, "local competitions unavailable", "error", lerr)
		s.countFallback(ctx, "competitions", feed.SourceUnavailable)
		return feed.Result[[]feed.Competition]{Data: []feed.Competition{}, Source: feed.SourceUnavailable, Message: msgProviderDown}, nil
	}
	out := make([]feed.Competition, 0, len(local))
	for _, c := range local {
		out = append(out, s.normalizer.LocalCompetition(c))
	}
	s.countFallback(ctx, "competitions", feed.SourceLocal)
	return feed.Result[[]feed.Competition]{Data: out, Source: feed.SourceLocal, Message: msgProviderFallback}, nil
}

// Competition returns one provider league. ErrNotFound when the provider
// has no such league, or when it is down and no local row links to it.
func (s *FeedService) Competition(ctx context.Context, leagueID int64) (feed.Result[*feed.Competition], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.Competition")
	defer span.End()

	if leagueID <= 0 {
		return feed.Result[*feed.Competition]{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}

	q := upstream.LeagueQuery{ID: leagueID}
	v, err := s.cache.GetOrLoad(ctx, "leagues:id:"+strconv.FormatInt(leagueID, 10), func(ctx context.Context) (any, error) {
		return s.provider.Leagues(ctx, q)
	})
	if err == nil {
		entries, _ := v.([]upstream.LeagueEntry)
		if len(entries) == 0 {
			return feed.Result[*feed.Competition]{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
		}
		c := s.normalizer.League(entries[0])
		return feed.Result[*feed.Competition]{Data: &c, Source: feed.SourceExternal}, nil
	}
	if !upstream.IsUnavailable(err) {
		return feed.Result[*feed.Competition]{}, fmt.Errorf("fetch league=%d: %w", leagueID, err)
	}

	s.logger.WarnContext(ctx, "league unavailable, using local competition", "league_id", leagueID, "error", err)
	local, exists, lerr := s.competitionRepo.GetByExternalID(ctx, leagueID)
	if lerr != nil {
		s.countFallback(ctx, "competition", feed.SourceUnavailable)
		return feed.Result[*feed.Competition]{Source: feed.SourceUnavailable, Message: msgProviderDown}, nil
	}
	if !exists {
		return feed.Result[*feed.Competition]{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}
	c := s.normalizer.LocalCompetition(local)
	s.countFallback(ctx, "competition", feed.SourceLocal)
	return feed.Result[*feed.Competition]{Data: &c, Source: feed.SourceLocal, Message: msgProviderFallback}, nil
}

// Standings returns the league table. season <= 0 means the current year.
func (s *FeedService) Standings(ctx context.Context, leagueID int64, season int) (feed.Result[feed.StandingsTable], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.Standings")
	defer span.End()

	season, err := s.leagueSeason(leagueID, season)
	if err != nil {
		return feed.Result[feed.StandingsTable]{}, err
	}

	key := fmt.Sprintf("standings:%d:%d", leagueID, season)
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.provider.Standings(ctx, leagueID, season)
	})
	if err == nil {
		entries, _ := v.([]upstream.StandingsEntry)
		return feed.Result[feed.StandingsTable]{Data: s.normalizer.Standings(entries), Source: feed.SourceExternal}, nil
	}
	if !upstream.IsUnavailable(err) {
		return feed.Result[feed.StandingsTable]{}, fmt.Errorf("fetch standings league=%d season=%d: %w", leagueID, season, err)
	}

	s.logger.WarnContext(ctx, "standings unavailable", "league_id", leagueID, "season", season, "error", err)
	s.countFallback(ctx, "standings", feed.SourceUnavailable)
	return feed.Result[feed.StandingsTable]{
		Data:    s.normalizer.Standings(nil),
		Source:  feed.SourceUnavailable,
		Message: msgNoLocalEquivalent,
	}, nil
}

// TopScorers returns the scoring chart in provider order.
func (s *FeedService) TopScorers(ctx context.Context, leagueID int64, season int) (feed.Result[[]feed.Scorer], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.TopScorers")
	defer span.End()

	season, err := s.leagueSeason(leagueID, season)
	if err != nil {
		return feed.Result[[]feed.Scorer]{}, err
	}

	key := fmt.Sprintf("topscorers:%d:%d", leagueID, season)
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.provider.TopScorers(ctx, leagueID, season)
	})
	if err == nil {
		entries, _ := v.([]upstream.ScorerEntry)
		return feed.Result[[]feed.Scorer]{Data: s.normalizer.TopScorers(entries, s.cfg.TopScorersLimit), Source: feed.SourceExternal}, nil
	}
	if !upstream.IsUnavailable(err) {
		return feed.Result[[]feed.Scorer]{}, fmt.Errorf("fetch top scorers league=%d season=%d: %w", leagueID, season, err)
	}

	s.logger.WarnContext(ctx, "top scorers unavailable", "league_id", leagueID, "season", season, "error", err)
	s.countFallback(ctx, "top_scorers", feed.SourceUnavailable)
	return feed.Result[[]feed.Scorer]{Data: []feed.Scorer{}, Source: feed.SourceUnavailable, Message: msgNoLocalEquivalent}, nil
}

// ProviderStatus checks provider reachability. It is never cached.
func (s *FeedService) ProviderStatus(ctx context.Context) feed.ProviderStatus {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.ProviderStatus")
	defer span.End()

	status, err := s.provider.Status(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "football provider status check failed", "error", err)
		return feed.ProviderStatus{Success: false, Message: "football provider connection failed: " + err.Error()}
	}
	return feed.ProviderStatus{Success: true, Message: "football provider connection OK", Data: status}
}

func (s *FeedService) fixtures(ctx context.Context, key string, q upstream.FixtureQuery) ([]upstream.Fixture, error) {
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.provider.Fixtures(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	fixtures, _ := v.([]upstream.Fixture)
	return fixtures, nil
}

func (s *FeedService) fixturesOn(ctx context.Context, day time.Time) ([]upstream.Fixture, error) {
	date := formatDay(day)
	return s.fixtures(ctx, "fixtures:date:"+date, upstream.FixtureQuery{Date: date})
}

func (s *FeedService) localResult(ctx context.Context, operation string, ms []match.Match) feed.Result[[]feed.Match] {
	s.countFallback(ctx, operation, feed.SourceLocal)
	return feed.Result[[]feed.Match]{
		Data:    s.renderLocal(ctx, ms),
		Source:  feed.SourceLocal,
		Message: msgProviderFallback,
	}
}

func (s *FeedService) unavailableMatches(ctx context.Context, operation string, err error) feed.Result[[]feed.Match] {
	s.logger.WarnContext(ctx, "local matches unavailable", "operation", operation, "error", err)
	s.countFallback(ctx, operation, feed.SourceUnavailable)
	return feed.Result[[]feed.Match]{Data: []feed.Match{}, Source: feed.SourceUnavailable, Message: msgProviderDown}
}

// renderLocal resolves team and competition summaries for local matches.
// Lookup failures degrade to id-only summaries.
func (s *FeedService) renderLocal(ctx context.Context, ms []match.Match) []feed.Match {
	teamIDs := make([]string, 0, len(ms)*2)
	compIDs := make(map[string]struct{}, 4)
	seen := make(map[string]struct{}, len(ms)*2)
	for _, m := range ms {
		for _, id := range []string{m.HomeTeamID, m.AwayTeamID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				teamIDs = append(teamIDs, id)
			}
		}
		compIDs[m.CompetitionID] = struct{}{}
	}

	teams := make(map[string]team.Team, len(teamIDs))
	if len(teamIDs) > 0 {
		rows, err := s.teamRepo.GetByIDs(ctx, teamIDs)
		if err != nil {
			s.logger.WarnContext(ctx, "resolve local teams failed", "error", err)
		}
		for _, t := range rows {
			teams[t.ID] = t
		}
	}

	comps := make(map[string]competition.Competition, len(compIDs))
	for id := range compIDs {
		c, exists, err := s.competitionRepo.GetByID(ctx, id)
		if err != nil {
			s.logger.WarnContext(ctx, "resolve local competition failed", "competition_id", id, "error", err)
			continue
		}
		if exists {
			comps[id] = c
		}
	}

	out := s.normalizer.LocalMatches(ms, teams, comps)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kickoff.Before(out[j].Kickoff) })
	return out
}

func (s *FeedService) countFallback(ctx context.Context, operation string, source feed.Source) {
	markFeedFallback(ctx, operation, source)
	if s.recorder != nil {
		s.recorder.IncFallback(operation, string(source))
	}
}

func (s *FeedService) isMajor(leagueID int64) bool {
	_, ok := s.major[leagueID]
	return ok
}

func (s *FeedService) leagueSeason(leagueID int64, season int) (int, error) {
	if leagueID <= 0 {
		return 0, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	if season <= 0 {
		season = s.cfg.Now().In(s.cfg.Location).Year()
	}
	if season < 1900 || season > 2100 {
		return 0, fmt.Errorf("%w: season %d is out of range", ErrInvalidInput, season)
	}
	return season, nil
}

func (s *FeedService) today() time.Time {
	now := s.cfg.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *FeedService) parseDayOrToday(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return s.today(), nil
	}
	return parseDay(raw)
}

func parseDay(raw string) (time.Time, error) {
	day, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, raw)
	}
	return day, nil
}

func formatDay(day time.Time) string {
	return day.Format(time.DateOnly)
}

func external(ms []feed.Match) feed.Result[[]feed.Match] {
	return feed.Result[[]feed.Match]{Data: ms, Source: feed.SourceExternal}
}
