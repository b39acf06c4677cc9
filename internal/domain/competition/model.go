package competition

import (
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	TypeLeague        Type = "league"
	TypeCup           Type = "cup"
	TypeInternational Type = "international"
)

func (t Type) Valid() bool {
	switch t {
	case TypeLeague, TypeCup, TypeInternational:
		return true
	}
	return false
}

// Competition is a locally managed tournament. ExternalID links it to the
// provider's league id when known.
type Competition struct {
	ID         string
	Name       string
	Slug       string
	Logo       string
	Country    string
	Type       Type
	Season     string
	IsActive   bool
	ExternalID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (c Competition) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("competition id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("competition name is required")
	}
	if c.Slug == "" {
		return fmt.Errorf("competition slug is required")
	}
	if strings.TrimSpace(c.Country) == "" {
		return fmt.Errorf("competition country is required")
	}
	if !c.Type.Valid() {
		return fmt.Errorf("competition type %q is invalid", c.Type)
	}
	if strings.TrimSpace(c.Season) == "" {
		return fmt.Errorf("competition season is required")
	}
	return nil
}

// Patch carries a partial update; nil fields are left unchanged.
type Patch struct {
	Name       *string
	Slug       *string
	Logo       *string
	Country    *string
	Type       *Type
	Season     *string
	IsActive   *bool
	ExternalID *int64
}

func (p Patch) Apply(c *Competition) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Logo != nil {
		c.Logo = *p.Logo
	}
	if p.Country != nil {
		c.Country = *p.Country
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Season != nil {
		c.Season = *p.Season
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	if p.ExternalID != nil {
		c.ExternalID = *p.ExternalID
	}
}
