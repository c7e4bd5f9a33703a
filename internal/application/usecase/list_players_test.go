package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskutil/internal/application/port"
	portmocks "github.com/bnema/deskutil/internal/application/port/mocks"
	"github.com/bnema/deskutil/internal/application/usecase"
	"github.com/bnema/deskutil/internal/domain/entity"
)

func TestListPlayers_MarksSelectedPlayer(t *testing.T) {
	factory, bus := newConnectedBus(t)
	bus.EXPECT().Players(mock.Anything).Return(candidates(
		entity.NewPlayerCandidate("vlc", entity.PlaybackPaused),
		entity.NewPlayerCandidate("spotify", entity.PlaybackPlaying),
		entity.NewPlayerCandidate("firefox", entity.PlaybackStopped),
	))

	out, err := usecase.NewListPlayersUseCase(factory).Execute(testContext())
	require.NoError(t, err)

	require.Len(t, out.Players, 3)
	assert.Equal(t, "vlc", out.Players[0].ShortName)
	assert.Equal(t, 1, out.Selected)
}

func TestListPlayers_NoneSelectable(t *testing.T) {
	factory, bus := newConnectedBus(t)
	bus.EXPECT().Players(mock.Anything).Return(candidates(
		entity.NewPlayerCandidate("firefox", entity.PlaybackStopped),
	))

	out, err := usecase.NewListPlayersUseCase(factory).Execute(testContext())
	require.NoError(t, err)

	assert.Len(t, out.Players, 1)
	assert.Equal(t, -1, out.Selected)
}

func TestListPlayers_ConnectFailure(t *testing.T) {
	factory := portmocks.NewMockPlayerBusFactory(t)
	factory.EXPECT().Connect(mock.Anything).Return(nil, port.ErrBusUnavailable)

	out, err := usecase.NewListPlayersUseCase(factory).Execute(testContext())
	require.ErrorIs(t, err, port.ErrBusUnavailable)
	assert.Nil(t, out)
}
