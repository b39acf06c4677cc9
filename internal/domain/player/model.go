package player

import (
	"fmt"
	"strings"
	"time"
)

type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

type Foot string

const (
	FootLeft  Foot = "left"
	FootRight Foot = "right"
	FootBoth  Foot = "both"
)

type Player struct {
	ID            string
	Name          string
	FirstName     string
	LastName      string
	Photo         string
	DateOfBirth   *time.Time
	Nationality   string
	Position      Position
	Number        int
	MarketValue   int64
	Height        int
	Weight        int
	PreferredFoot Foot
	TeamID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if !p.Position.Valid() {
		return fmt.Errorf("player position %q is invalid", p.Position)
	}
	if p.Number < 0 || p.Number > 99 {
		return fmt.Errorf("player number must be between 0 and 99")
	}
	if p.MarketValue < 0 {
		return fmt.Errorf("player market value must not be negative")
	}
	switch p.PreferredFoot {
	case "", FootLeft, FootRight, FootBoth:
	default:
		return fmt.Errorf("player preferred foot %q is invalid", p.PreferredFoot)
	}
	return nil
}

type Patch struct {
	Name          *string
	FirstName     *string
	LastName      *string
	Photo         *string
	DateOfBirth   *time.Time
	Nationality   *string
	Position      *Position
	Number        *int
	MarketValue   *int64
	Height        *int
	Weight        *int
	PreferredFoot *Foot
	TeamID        *string
}

func (p Patch) Apply(pl *Player) {
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.FirstName != nil {
		pl.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		pl.LastName = *p.LastName
	}
	if p.Photo != nil {
		pl.Photo = *p.Photo
	}
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		pl.DateOfBirth = &dob
	}
	if p.Nationality != nil {
		pl.Nationality = *p.Nationality
	}
	if p.Position != nil {
		pl.Position = *p.Position
	}
	if p.Number != nil {
		pl.Number = *p.Number
	}
	if p.MarketValue != nil {
		pl.MarketValue = *p.MarketValue
	}
	if p.Height != nil {
		pl.Height = *p.Height
	}
	if p.Weight != nil {
		pl.Weight = *p.Weight
	}
	if p.PreferredFoot != nil {
		pl.PreferredFoot = *p.PreferredFoot
	}
	if p.TeamID != nil {
		pl.TeamID = *p.TeamID
	}
}
