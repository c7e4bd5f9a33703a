package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/deskutil/internal/application/port"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/domain/nowplaying"
)

// ListPlayersUseCase enumerates players for inspection.
type ListPlayersUseCase struct {
	buses port.PlayerBusFactory
}

// NewListPlayersUseCase creates a new ListPlayersUseCase.
func NewListPlayersUseCase(buses port.PlayerBusFactory) *ListPlayersUseCase {
	return &ListPlayersUseCase{buses: buses}
}

// ListPlayersOutput holds every reachable player in bus order.
type ListPlayersOutput struct {
	Players []entity.PlayerCandidate
	// Selected is the index the reporter would pick, -1 when none.
	Selected int
}

// Execute enumerates the players. Unlike the reporter it surfaces connection errors.
func (uc *ListPlayersUseCase) Execute(ctx context.Context) (*ListPlayersOutput, error) {
	bus, err := uc.buses.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}
	defer func() { _ = bus.Close() }()

	players := slices.Collect(bus.Players(ctx))
	out := &ListPlayersOutput{Players: players, Selected: -1}
	if selected, ok := nowplaying.SelectCandidate(players); ok {
		out.Selected = slices.Index(players, selected)
	}
	return out, nil
}
