package apifootball

import (
	"context"
	"net/url"
	"strconv"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/football-portal/internal/domain/upstream"
)

var _ upstream.Provider = (*Client)(nil)

func (c *Client) Fixtures(ctx context.Context, q upstream.FixtureQuery) ([]upstream.Fixture, error) {
	var out []upstream.Fixture
	if err := c.fetch(ctx, "/fixtures", q.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Leagues(ctx context.Context, q upstream.LeagueQuery) ([]upstream.LeagueEntry, error) {
	var out []upstream.LeagueEntry
	if err := c.fetch(ctx, "/leagues", q.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Standings(ctx context.Context, leagueID int64, season int) ([]upstream.StandingsEntry, error) {
	var out []upstream.StandingsEntry
	if err := c.fetch(ctx, "/standings", leagueSeason(leagueID, season), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TopScorers(ctx context.Context, leagueID int64, season int) ([]upstream.ScorerEntry, error) {
	var out []upstream.ScorerEntry
	if err := c.fetch(ctx, "/players/topscorers", leagueSeason(leagueID, season), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Status returns account and quota details. The provider answers with an
// object, or an empty array when the key is rejected.
func (c *Client) Status(ctx context.Context) (upstream.AccountStatus, error) {
	raw, err := c.Call(ctx, "/status", nil)
	if err != nil {
		return upstream.AccountStatus{}, err
	}
	var out upstream.AccountStatus
	if len(raw) == 0 || raw[0] != '{' {
		return out, nil
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return upstream.AccountStatus{}, upstream.Unavailable(err, "decode /status response")
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values, target any) error {
	raw, err := c.Call(ctx, endpoint, params)
	if err != nil {
		return err
	}
	// An object here means the provider reported an error with no rows.
	if len(raw) > 0 && raw[0] != '[' {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return upstream.Unavailable(err, "decode %s response", endpoint)
	}
	return nil
}

func leagueSeason(leagueID int64, season int) url.Values {
	v := url.Values{}
	v.Set("league", strconv.FormatInt(leagueID, 10))
	v.Set("season", strconv.Itoa(season))
	return v
}
