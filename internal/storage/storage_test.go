package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoff/pawnstorm/internal/board"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openTestStorage(t)

	pos := board.NewPosition()
	m, err := board.ParseMove("e2e4", pos)
	require.NoError(t, err)
	pos.Make(m)

	err = s.SaveGame(&SavedGame{
		ID:          "g1",
		Snapshot:    pos.Snapshot(),
		EngineColor: board.Black,
		SearchDepth: 4,
	})
	require.NoError(t, err)

	loaded, err := s.LoadGame("g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", loaded.ID)
	assert.Equal(t, board.Black, loaded.EngineColor)
	assert.Equal(t, 4, loaded.SearchDepth)
	assert.False(t, loaded.SavedAt.IsZero())

	restored, err := board.FromSnapshot(loaded.Snapshot)
	require.NoError(t, err)
	assert.Equal(t, pos.ToFEN(), restored.ToFEN())
	assert.Equal(t, pos.Hash, restored.Hash)
}

func TestLoadGameNotFound(t *testing.T) {
	s := openTestStorage(t)

	_, err := s.LoadGame("missing")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestListGames(t *testing.T) {
	s := openTestStorage(t)

	games, err := s.ListGames()
	require.NoError(t, err)
	assert.Empty(t, games)

	for _, id := range []string{"a", "b", "c"} {
		err := s.SaveGame(&SavedGame{
			ID:          id,
			Snapshot:    board.NewPosition().Snapshot(),
			EngineColor: board.Black,
			SearchDepth: 3,
		})
		require.NoError(t, err)
	}

	games, err = s.ListGames()
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "a", games[0].ID)
	assert.Equal(t, "b", games[1].ID)
	assert.Equal(t, "c", games[2].ID)
}

func TestDeleteGame(t *testing.T) {
	s := openTestStorage(t)

	err := s.SaveGame(&SavedGame{
		ID:       "doomed",
		Snapshot: board.NewPosition().Snapshot(),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteGame("doomed"))

	_, err = s.LoadGame("doomed")
	assert.ErrorIs(t, err, ErrGameNotFound)

	assert.ErrorIs(t, s.DeleteGame("doomed"), ErrGameNotFound)
}

func TestSaveGameOverwrites(t *testing.T) {
	s := openTestStorage(t)

	game := &SavedGame{
		ID:          "g",
		Snapshot:    board.NewPosition().Snapshot(),
		SearchDepth: 2,
	}
	require.NoError(t, s.SaveGame(game))

	game.SearchDepth = 5
	require.NoError(t, s.SaveGame(game))

	loaded, err := s.LoadGame("g")
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.SearchDepth)

	games, err := s.ListGames()
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestPreferencesDefaults(t *testing.T) {
	s := openTestStorage(t)

	prefs, err := s.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, 4, prefs.SearchDepth)
	assert.Equal(t, board.Black, prefs.EngineColor)
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	err := s.SavePreferences(&Preferences{
		SearchDepth: 6,
		EngineColor: board.White,
	})
	require.NoError(t, err)

	prefs, err := s.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, 6, prefs.SearchDepth)
	assert.Equal(t, board.White, prefs.EngineColor)
	assert.False(t, prefs.LastPlayed.IsZero())
}
