package upstream

import "encoding/json"

// Envelope is the outer shape of every provider response. Errors is either
// an empty array or an object keyed by error kind.
type Envelope struct {
	Get        string          `json:"get"`
	Parameters map[string]any  `json:"parameters"`
	Errors     any             `json:"errors"`
	Results    int             `json:"results"`
	Response   json.RawMessage `json:"response"`
}

type Fixture struct {
	Fixture FixtureInfo   `json:"fixture"`
	League  FixtureLeague `json:"league"`
	Teams   FixtureTeams  `json:"teams"`
	Goals   Goals         `json:"goals"`
	Score   Score         `json:"score"`
}

type FixtureInfo struct {
	ID        int64         `json:"id"`
	Referee   string        `json:"referee"`
	Timezone  string        `json:"timezone"`
	Date      string        `json:"date"`
	Timestamp int64         `json:"timestamp"`
	Venue     Venue         `json:"venue"`
	Status    FixtureStatus `json:"status"`
}

type Venue struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type FixtureStatus struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type FixtureLeague struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Flag    string `json:"flag"`
	Season  *int   `json:"season"`
	Round   string `json:"round"`
}

type FixtureTeams struct {
	Home TeamRef `json:"home"`
	Away TeamRef `json:"away"`
}

type TeamRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type Score struct {
	Halftime  Goals `json:"halftime"`
	Fulltime  Goals `json:"fulltime"`
	Extratime Goals `json:"extratime"`
	Penalty   Goals `json:"penalty"`
}

type LeagueEntry struct {
	League  LeagueInfo `json:"league"`
	Country Country    `json:"country"`
	Seasons []Season   `json:"seasons"`
}

type LeagueInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Logo string `json:"logo"`
}

type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

type Season struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

// StandingsEntry wraps one league table; Standings holds one slice per group.
type StandingsEntry struct {
	League StandingsLeague `json:"league"`
}

type StandingsLeague struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Country   string          `json:"country"`
	Logo      string          `json:"logo"`
	Flag      string          `json:"flag"`
	Season    int             `json:"season"`
	Standings [][]StandingRow `json:"standings"`
}

type StandingRow struct {
	Rank        int         `json:"rank"`
	Team        TeamRef     `json:"team"`
	Points      int         `json:"points"`
	GoalsDiff   int         `json:"goalsDiff"`
	Group       string      `json:"group"`
	Form        string      `json:"form"`
	Status      string      `json:"status"`
	Description string      `json:"description"`
	All         RecordSplit `json:"all"`
	Home        RecordSplit `json:"home"`
	Away        RecordSplit `json:"away"`
	Update      string      `json:"update"`
}

type RecordSplit struct {
	Played int        `json:"played"`
	Win    int        `json:"win"`
	Draw   int        `json:"draw"`
	Lose   int        `json:"lose"`
	Goals  GoalTotals `json:"goals"`
}

type GoalTotals struct {
	For     int `json:"for"`
	Against int `json:"against"`
}

type ScorerEntry struct {
	Player     PlayerInfo         `json:"player"`
	Statistics []PlayerStatistics `json:"statistics"`
}

type PlayerInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Age         *int   `json:"age"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
}

type PlayerStatistics struct {
	Team   TeamRef       `json:"team"`
	League FixtureLeague `json:"league"`
	Games  GameStats     `json:"games"`
	Goals  ScorerGoals   `json:"goals"`
}

type GameStats struct {
	Appearences *int   `json:"appearences"`
	Minutes     *int   `json:"minutes"`
	Position    string `json:"position"`
	Rating      string `json:"rating"`
}

type ScorerGoals struct {
	Total    *int `json:"total"`
	Conceded *int `json:"conceded"`
	Assists  *int `json:"assists"`
	Saves    *int `json:"saves"`
}

// AccountStatus is the /status payload.
type AccountStatus struct {
	Account struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
	} `json:"account"`
	Subscription struct {
		Plan   string `json:"plan"`
		End    string `json:"end"`
		Active bool   `json:"active"`
	} `json:"subscription"`
	Requests struct {
		Current  int `json:"current"`
		LimitDay int `json:"limit_day"`
	} `json:"requests"`
}
