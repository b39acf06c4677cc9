package feed

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/team"
)

// LocalMatch renders a persisted match in the same shape as provider
// fixtures. Unknown team or competition ids yield summaries with the id only.
func (n Normalizer) LocalMatch(m match.Match, teams map[string]team.Team, comps map[string]competition.Competition) Match {
	kickoff := m.MatchDate.UTC()
	comp, ok := comps[m.CompetitionID]
	summary := CompetitionSummary{ID: m.CompetitionID}
	if ok {
		summary = CompetitionSummary{
			ID:      comp.ID,
			Name:    comp.Name,
			Logo:    comp.Logo,
			Country: comp.Country,
			Season:  comp.Season,
		}
	}

	return Match{
		ID:          m.ID,
		HomeTeam:    localTeam(m.HomeTeamID, teams),
		AwayTeam:    localTeam(m.AwayTeamID, teams),
		Date:        kickoff.Format(time.DateOnly),
		Time:        kickoff.In(n.Location()).Format("15:04"),
		Status:      m.Status,
		HomeScore:   copyInt(m.HomeScore),
		AwayScore:   copyInt(m.AwayScore),
		Competition: summary,
		Venue:       m.Venue,
		Round:       m.Round,
		Kickoff:     kickoff,
		LeagueRef:   comp.ExternalID,
	}
}

func (n Normalizer) LocalMatches(ms []match.Match, teams map[string]team.Team, comps map[string]competition.Competition) []Match {
	out := make([]Match, 0, len(ms))
	for _, m := range ms {
		out = append(out, n.LocalMatch(m, teams, comps))
	}
	return out
}

func (n Normalizer) LocalCompetition(c competition.Competition) Competition {
	return Competition{
		ID:       c.ID,
		Name:     c.Name,
		Logo:     c.Logo,
		Country:  c.Country,
		Type:     string(c.Type),
		Season:   c.Season,
		IsActive: c.IsActive,
	}
}

func localTeam(id string, teams map[string]team.Team) TeamSummary {
	t, ok := teams[id]
	if !ok {
		return TeamSummary{ID: id}
	}
	return TeamSummary{ID: t.ID, Name: t.Name, Logo: t.Logo, Country: t.Country}
}
