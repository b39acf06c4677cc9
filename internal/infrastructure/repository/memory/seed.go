package memory

import (
	"strconv"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/news"
	"github.com/riskibarqy/football-portal/internal/domain/player"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/domain/transfer"
)

const (
	CompetitionIDPremierLeague = "comp-premier-league"
	CompetitionIDLaLiga        = "comp-la-liga"
	CompetitionIDSerieA        = "comp-serie-a"
	CompetitionIDBundesliga    = "comp-bundesliga"
	CompetitionIDLigue1        = "comp-ligue-1"
)

var seededAt = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func SeedCompetitions() []competition.Competition {
	league := func(id, name, slug, country string, externalID int64) competition.Competition {
		return competition.Competition{
			ID:         id,
			Name:       name,
			Slug:       slug,
			Country:    country,
			Type:       competition.TypeLeague,
			Season:     "2025/2026",
			IsActive:   true,
			ExternalID: externalID,
			Logo:       "https://media.api-sports.io/football/leagues/" + strconv.FormatInt(externalID, 10) + ".png",
			CreatedAt:  seededAt,
			UpdatedAt:  seededAt,
		}
	}
	return []competition.Competition{
		league(CompetitionIDPremierLeague, "Premier League", "premier-league-2025-2026", "England", 39),
		league(CompetitionIDLaLiga, "La Liga", "la-liga-2025-2026", "Spain", 140),
		league(CompetitionIDSerieA, "Serie A", "serie-a-2025-2026", "Italy", 135),
		league(CompetitionIDBundesliga, "Bundesliga", "bundesliga-2025-2026", "Germany", 78),
		league(CompetitionIDLigue1, "Ligue 1", "ligue-1-2025-2026", "France", 61),
	}
}

func SeedTeams() []team.Team {
	t := func(id, name, short, country, city, stadium string, founded int, compID string) team.Team {
		return team.Team{
			ID:            id,
			Name:          name,
			ShortName:     short,
			Country:       country,
			City:          city,
			Stadium:       stadium,
			Founded:       founded,
			CompetitionID: compID,
			CreatedAt:     seededAt,
			UpdatedAt:     seededAt,
		}
	}
	return []team.Team{
		t("team-arsenal", "Arsenal", "ARS", "England", "London", "Emirates Stadium", 1886, CompetitionIDPremierLeague),
		t("team-liverpool", "Liverpool", "LIV", "England", "Liverpool", "Anfield", 1892, CompetitionIDPremierLeague),
		t("team-real-madrid", "Real Madrid", "RMA", "Spain", "Madrid", "Santiago Bernabeu", 1902, CompetitionIDLaLiga),
		t("team-barcelona", "Barcelona", "BAR", "Spain", "Barcelona", "Camp Nou", 1899, CompetitionIDLaLiga),
		t("team-inter", "Inter", "INT", "Italy", "Milan", "San Siro", 1908, CompetitionIDSerieA),
		t("team-bayern", "Bayern Munich", "BAY", "Germany", "Munich", "Allianz Arena", 1900, CompetitionIDBundesliga),
		t("team-psg", "Paris Saint Germain", "PSG", "France", "Paris", "Parc des Princes", 1970, CompetitionIDLigue1),
	}
}

func SeedPlayers() []player.Player {
	p := func(id, name, nationality string, pos player.Position, number int, value int64, teamID string) player.Player {
		return player.Player{
			ID:            id,
			Name:          name,
			Nationality:   nationality,
			Position:      pos,
			Number:        number,
			MarketValue:   value,
			PreferredFoot: player.FootRight,
			TeamID:        teamID,
			CreatedAt:     seededAt,
			UpdatedAt:     seededAt,
		}
	}
	return []player.Player{
		p("player-saka", "Bukayo Saka", "England", player.PositionForward, 7, 150_000_000, "team-arsenal"),
		p("player-saliba", "William Saliba", "France", player.PositionDefender, 2, 80_000_000, "team-arsenal"),
		p("player-salah", "Mohamed Salah", "Egypt", player.PositionForward, 11, 55_000_000, "team-liverpool"),
		p("player-vinicius", "Vinicius Junior", "Brazil", player.PositionForward, 7, 170_000_000, "team-real-madrid"),
		p("player-courtois", "Thibaut Courtois", "Belgium", player.PositionGoalkeeper, 1, 25_000_000, "team-real-madrid"),
		p("player-yamal", "Lamine Yamal", "Spain", player.PositionForward, 19, 180_000_000, "team-barcelona"),
		p("player-kane", "Harry Kane", "England", player.PositionForward, 9, 90_000_000, "team-bayern"),
		p("player-barella", "Nicolo Barella", "Italy", player.PositionMidfielder, 23, 70_000_000, "team-inter"),
	}
}

func SeedMatches() []match.Match {
	m := func(id string, at time.Time, status match.Status, home, away, compID, venue string) match.Match {
		return match.Match{
			ID:            id,
			MatchDate:     at,
			Status:        status,
			Round:         "Regular Season - 1",
			Venue:         venue,
			HomeTeamID:    home,
			AwayTeamID:    away,
			CompetitionID: compID,
			CreatedAt:     seededAt,
			UpdatedAt:     seededAt,
		}
	}
	return []match.Match{
		m("match-ars-liv", time.Date(2025, 8, 16, 16, 30, 0, 0, time.UTC), match.StatusScheduled, "team-arsenal", "team-liverpool", CompetitionIDPremierLeague, "Emirates Stadium"),
		m("match-rma-bar", time.Date(2025, 8, 17, 19, 0, 0, 0, time.UTC), match.StatusScheduled, "team-real-madrid", "team-barcelona", CompetitionIDLaLiga, "Santiago Bernabeu"),
	}
}

func SeedTransfers() []transfer.Transfer {
	return []transfer.Transfer{
		{
			ID:           "transfer-kane",
			PlayerID:     "player-kane",
			FromTeamID:   "",
			ToTeamID:     "team-bayern",
			TransferDate: time.Date(2023, 8, 12, 0, 0, 0, 0, time.UTC),
			Fee:          100_000_000,
			Type:         transfer.TypePermanent,
			Season:       "2023/2024",
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
	}
}

func SeedNews() []news.Article {
	published := seededAt
	return []news.Article{
		{
			ID:          "news-season-opener",
			Title:       "Season opener preview",
			Slug:        "season-opener-preview",
			Content:     "Everything you need to know before the first matchday.",
			Summary:     "First matchday preview.",
			Category:    news.CategoryMatch,
			IsPublished: true,
			Tags:        []string{"preview", "premier-league"},
			PublishedAt: &published,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
	}
}
