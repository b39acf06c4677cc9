package match

import (
	"fmt"
	"time"
)

// Status is the portal's closed match-state vocabulary, shared by local
// records and normalized provider fixtures.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusHalftime  Status = "halftime"
	StatusFinished  Status = "finished"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusHalftime, StatusFinished, StatusPostponed, StatusCancelled:
		return true
	}
	return false
}

// InPlay reports live play or the half-time break.
func (s Status) InPlay() bool {
	return s == StatusLive || s == StatusHalftime
}

type Match struct {
	ID            string
	MatchDate     time.Time
	HomeScore     *int
	AwayScore     *int
	Status        Status
	Round         string
	Venue         string
	HomeTeamID    string
	AwayTeamID    string
	CompetitionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if !m.Status.Valid() {
		return fmt.Errorf("match status %q is invalid", m.Status)
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match home and away teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away teams must differ")
	}
	if m.CompetitionID == "" {
		return fmt.Errorf("match competition id is required")
	}
	if (m.HomeScore != nil && *m.HomeScore < 0) || (m.AwayScore != nil && *m.AwayScore < 0) {
		return fmt.Errorf("match scores must not be negative")
	}
	return nil
}

// Involves reports whether teamID plays in the match.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

type Patch struct {
	MatchDate     *time.Time
	HomeScore     *int
	AwayScore     *int
	Status        *Status
	Round         *string
	Venue         *string
	HomeTeamID    *string
	AwayTeamID    *string
	CompetitionID *string
}

func (p Patch) Apply(m *Match) {
	if p.MatchDate != nil {
		m.MatchDate = *p.MatchDate
	}
	if p.HomeScore != nil {
		v := *p.HomeScore
		m.HomeScore = &v
	}
	if p.AwayScore != nil {
		v := *p.AwayScore
		m.AwayScore = &v
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Round != nil {
		m.Round = *p.Round
	}
	if p.Venue != nil {
		m.Venue = *p.Venue
	}
	if p.HomeTeamID != nil {
		m.HomeTeamID = *p.HomeTeamID
	}
	if p.AwayTeamID != nil {
		m.AwayTeamID = *p.AwayTeamID
	}
	if p.CompetitionID != nil {
		m.CompetitionID = *p.CompetitionID
	}
}
