package transfer

import (
	"fmt"
	"time"
)

type Type string

const (
	TypePermanent Type = "permanent"
	TypeLoan      Type = "loan"
	TypeFree      Type = "free"
)

func (t Type) Valid() bool {
	switch t {
	case TypePermanent, TypeLoan, TypeFree:
		return true
	}
	return false
}

type Transfer struct {
	ID           string
	PlayerID     string
	FromTeamID   string
	ToTeamID     string
	TransferDate time.Time
	Fee          int64
	Type         Type
	Season       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t Transfer) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transfer id is required")
	}
	if t.PlayerID == "" {
		return fmt.Errorf("transfer player id is required")
	}
	if t.ToTeamID == "" {
		return fmt.Errorf("transfer destination team is required")
	}
	if t.FromTeamID != "" && t.FromTeamID == t.ToTeamID {
		return fmt.Errorf("transfer source and destination teams must differ")
	}
	if t.TransferDate.IsZero() {
		return fmt.Errorf("transfer date is required")
	}
	if !t.Type.Valid() {
		return fmt.Errorf("transfer type %q is invalid", t.Type)
	}
	if t.Fee < 0 {
		return fmt.Errorf("transfer fee must not be negative")
	}
	if t.Type == TypeFree && t.Fee != 0 {
		return fmt.Errorf("free transfer must not carry a fee")
	}
	if t.Season == "" {
		return fmt.Errorf("transfer season is required")
	}
	return nil
}

type Patch struct {
	PlayerID     *string
	FromTeamID   *string
	ToTeamID     *string
	TransferDate *time.Time
	Fee          *int64
	Type         *Type
	Season       *string
	Notes        *string
}

func (p Patch) Apply(t *Transfer) {
	if p.PlayerID != nil {
		t.PlayerID = *p.PlayerID
	}
	if p.FromTeamID != nil {
		t.FromTeamID = *p.FromTeamID
	}
	if p.ToTeamID != nil {
		t.ToTeamID = *p.ToTeamID
	}
	if p.TransferDate != nil {
		t.TransferDate = *p.TransferDate
	}
	if p.Fee != nil {
		t.Fee = *p.Fee
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Season != nil {
		t.Season = *p.Season
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
}
