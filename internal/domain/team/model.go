package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is a football club tracked by the portal.
type Team struct {
	ID            string
	Name          string
	ShortName     string
	Logo          string
	Country       string
	City          string
	Stadium       string
	Founded       int
	Colors        string
	CompetitionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.ShortName) == "" {
		return fmt.Errorf("team short name is required")
	}
	if len(t.ShortName) > 10 {
		return fmt.Errorf("team short name must be at most 10 characters")
	}
	if t.Founded < 0 {
		return fmt.Errorf("team founded year must be positive")
	}
	return nil
}

type Patch struct {
	Name          *string
	ShortName     *string
	Logo          *string
	Country       *string
	City          *string
	Stadium       *string
	Founded       *int
	Colors        *string
	CompetitionID *string
}

func (p Patch) Apply(t *Team) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.ShortName != nil {
		t.ShortName = *p.ShortName
	}
	if p.Logo != nil {
		t.Logo = *p.Logo
	}
	if p.Country != nil {
		t.Country = *p.Country
	}
	if p.City != nil {
		t.City = *p.City
	}
	if p.Stadium != nil {
		t.Stadium = *p.Stadium
	}
	if p.Founded != nil {
		t.Founded = *p.Founded
	}
	if p.Colors != nil {
		t.Colors = *p.Colors
	}
	if p.CompetitionID != nil {
		t.CompetitionID = *p.CompetitionID
	}
}
