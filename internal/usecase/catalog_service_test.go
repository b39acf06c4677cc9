package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/player"
	"github.com/riskibarqy/football-portal/internal/domain/transfer"
	"github.com/riskibarqy/football-portal/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-portal/internal/platform/id"
)

func TestPlayerService_TopByMarketValue_Limits(t *testing.T) {
	t.Parallel()

	players := make([]player.Player, 0, 120)
	for i := 0; i < 120; i++ {
		players = append(players, player.Player{ID: fmt.Sprintf("p-%d", i), MarketValue: int64(i)})
	}
	service := NewPlayerService(memory.NewPlayerRepository(players), memory.NewTeamRepository(nil), &id.SequenceGenerator{})

	cases := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 10},
		{limit: -3, want: 10},
		{limit: 5, want: 5},
		{limit: 500, want: 100},
	}
	for _, c := range cases {
		got, err := service.TopByMarketValue(t.Context(), c.limit)
		if err != nil {
			t.Fatalf("top by market value: %v", err)
		}
		if len(got) != c.want {
			t.Fatalf("limit=%d: expected %d players, got %d", c.limit, c.want, len(got))
		}
	}

	top, _ := service.TopByMarketValue(t.Context(), 1)
	if top[0].MarketValue != 119 {
		t.Fatalf("expected most valuable first, got %d", top[0].MarketValue)
	}
}

func TestPlayerService_Create_UnknownTeamIsInvalid(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(
		memory.NewPlayerRepository(nil),
		memory.NewTeamRepository(memory.SeedTeams()),
		&id.SequenceGenerator{Prefix: "player-"},
	)

	_, err := service.Create(t.Context(), player.Player{FirstName: "Kai", LastName: "Havertz", Position: player.PositionForward, TeamID: "team-unknown"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	got, err := service.Create(t.Context(), player.Player{FirstName: "Kai", LastName: "Havertz", Position: player.PositionForward, TeamID: "team-arsenal"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.Name != "Kai Havertz" {
		t.Fatalf("expected derived name, got %q", got.Name)
	}
}

func TestTransferService_CreateAndTop(t *testing.T) {
	t.Parallel()

	service := NewTransferService(
		memory.NewTransferRepository(memory.SeedTransfers()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		&id.SequenceGenerator{Prefix: "transfer-"},
	)

	created, err := service.Create(t.Context(), transfer.Transfer{
		PlayerID:     "player-yamal",
		ToTeamID:     "team-psg",
		FromTeamID:   "team-barcelona",
		TransferDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Fee:          250_000_000,
		Season:       "2026/2027",
	})
	if err != nil {
		t.Fatalf("create transfer: %v", err)
	}
	if created.Type != transfer.TypePermanent {
		t.Fatalf("expected default permanent type, got %s", created.Type)
	}

	top, err := service.Top(t.Context(), 0)
	if err != nil {
		t.Fatalf("top transfers: %v", err)
	}
	if len(top) != 2 || top[0].ID != created.ID {
		t.Fatalf("expected new record transfer first, got %+v", top)
	}

	_, err = service.Create(t.Context(), transfer.Transfer{
		PlayerID:     "player-ghost",
		ToTeamID:     "team-psg",
		TransferDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown player, got %v", err)
	}

	if _, err := service.ListBySeason(t.Context(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank season, got %v", err)
	}
}
