package entity

import (
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	assert.True(t, StatusWon.IsGameOver())
	assert.True(t, StatusDraw.IsGameOver())
	assert.False(t, StatusInProgress.IsGameOver())
	assert.False(t, StatusEnded.IsGameOver())

	assert.False(t, Status("paused").IsValid())
}

func TestSessionSnapshot_Validate(t *testing.T) {
	valid := func(t *testing.T) *SessionSnapshot {
		t.Helper()

		board, err := NewBoard(6, 7)
		require.NoError(t, err)

		return &SessionSnapshot{
			ID:    "abc",
			Board: board,
			Players: [2]Player{
				*NewPlayer(First, "Anna"),
				*NewPlayer(Second, "Joan"),
			},
			CurrentPlayer: First,
			GameIndex:     1,
			TotalGames:    3,
			Status:        StatusInProgress,
		}
	}

	t.Run("Accepts a consistent snapshot", func(t *testing.T) {
		assert.NoError(t, valid(t).Validate())
	})

	t.Run("Rejects inconsistent snapshots", func(t *testing.T) {
		cases := map[string]struct {
			mutate func(s *SessionSnapshot)
			want   error
		}{
			"no board":        {func(s *SessionSnapshot) { s.Board = nil }, apperror.ErrInvalidBoard},
			"no games":        {func(s *SessionSnapshot) { s.TotalGames = 0 }, apperror.ErrInvalidGameCount},
			"index too large": {func(s *SessionSnapshot) { s.GameIndex = 5 }, apperror.ErrInvalidInput},
			"unknown status":  {func(s *SessionSnapshot) { s.Status = "paused" }, apperror.ErrInvalidInput},
			"no current":      {func(s *SessionSnapshot) { s.CurrentPlayer = NoPlayer }, apperror.ErrInvalidInput},
			"won no winner":   {func(s *SessionSnapshot) { s.Status = StatusWon }, apperror.ErrInvalidInput},
			"swapped seats":   {func(s *SessionSnapshot) { s.Players[0].ID = Second }, apperror.ErrInvalidInput},
			"empty name":      {func(s *SessionSnapshot) { s.Players[1].Name = "" }, apperror.ErrEmptyName},
			"negative score":  {func(s *SessionSnapshot) { s.Players[1].Score = -1 }, apperror.ErrInvalidInput},
		}

		for name, c := range cases {
			snapshot := valid(t)
			c.mutate(snapshot)
			assert.ErrorIs(t, snapshot.Validate(), c.want, name)
		}
	})
}
