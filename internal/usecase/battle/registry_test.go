package usecase_battle_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase_battle "github.com/biofact005-rgb/neetquiz/internal/usecase/battle"
)

func TestRegistry_CreateGeneratesUniqueCodes(t *testing.T) {
	registry := usecase_battle.NewRegistry()

	const rooms = 10000
	codes := make(map[string]bool, rooms)

	for i := 0; i < rooms; i++ {
		room, err := registry.Create(usecase_battle.Player{
			UserID: fmt.Sprintf("%d", i),
			Name:   "host",
		})
		require.NoError(t, err)

		code := room.Code()
		require.Len(t, code, 4)
		for _, c := range code {
			assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", string(c))
		}

		require.False(t, codes[code], "code %s issued twice while both rooms live", code)
		codes[code] = true
	}

	assert.Equal(t, rooms, registry.Len())
}

func TestRegistry_GetAndRemove(t *testing.T) {
	registry := usecase_battle.NewRegistry()

	room, err := registry.Create(usecase_battle.Player{UserID: "1", Name: "A"})
	require.NoError(t, err)

	got, err := registry.Get(room.Code())
	require.NoError(t, err)
	assert.Same(t, room, got)

	_, err = registry.Get("NOPE")
	assert.ErrorIs(t, err, usecase_battle.ErrRoomNotFound)

	registry.Remove(room.Code())
	_, err = registry.Get(room.Code())
	assert.ErrorIs(t, err, usecase_battle.ErrRoomNotFound)

	// Removing twice is harmless.
	registry.Remove(room.Code())
}

func TestRegistry_Sweep(t *testing.T) {
	registry := usecase_battle.NewRegistry()

	for i := 0; i < 3; i++ {
		_, err := registry.Create(usecase_battle.Player{UserID: fmt.Sprintf("%d", i), Name: "host"})
		require.NoError(t, err)
	}

	assert.Equal(t, 0, registry.Sweep(time.Hour))
	assert.Equal(t, 3, registry.Len())

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 3, registry.Sweep(time.Millisecond))
	assert.Equal(t, 0, registry.Len())
}
