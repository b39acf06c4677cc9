package upstream

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Provider is the football data source consumed by the feed service.
// Empty slices are valid successful results.
type Provider interface {
	Fixtures(ctx context.Context, q FixtureQuery) ([]Fixture, error)
	Leagues(ctx context.Context, q LeagueQuery) ([]LeagueEntry, error)
	Standings(ctx context.Context, leagueID int64, season int) ([]StandingsEntry, error)
	TopScorers(ctx context.Context, leagueID int64, season int) ([]ScorerEntry, error)
	Status(ctx context.Context) (AccountStatus, error)
}

type FixtureQuery struct {
	Live      bool
	Date      string
	From      string
	To        string
	LeagueIDs []int64
	Season    int
}

// Values renders the query as provider parameters.
func (q FixtureQuery) Values() url.Values {
	v := url.Values{}
	if q.Live {
		if len(q.LeagueIDs) > 0 {
			v.Set("live", joinIDs(q.LeagueIDs))
		} else {
			v.Set("live", "all")
		}
		return v
	}
	if q.Date != "" {
		v.Set("date", q.Date)
	}
	if q.From != "" {
		v.Set("from", q.From)
	}
	if q.To != "" {
		v.Set("to", q.To)
	}
	if len(q.LeagueIDs) == 1 {
		v.Set("league", strconv.FormatInt(q.LeagueIDs[0], 10))
	} else if len(q.LeagueIDs) > 1 {
		v.Set("league", joinIDs(q.LeagueIDs))
	}
	if q.Season > 0 {
		v.Set("season", strconv.Itoa(q.Season))
	}
	return v
}

type LeagueQuery struct {
	ID      int64
	Country string
	Current bool
	Season  int
	Type    string
}

func (q LeagueQuery) Values() url.Values {
	v := url.Values{}
	if q.ID > 0 {
		v.Set("id", strconv.FormatInt(q.ID, 10))
	}
	if q.Country != "" {
		v.Set("country", q.Country)
	}
	if q.Current {
		v.Set("current", "true")
	}
	if q.Season > 0 {
		v.Set("season", strconv.Itoa(q.Season))
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	return v
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, "-")
}
