package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
	StatusEnded      Status = "ended"
)

// IsGameOver - a game was won or drawn and the session waits to advance.
func (that Status) IsGameOver() bool {
	return that == StatusWon || that == StatusDraw
}

func (that Status) IsValid() bool {
	switch that {
	case StatusInProgress, StatusWon, StatusDraw, StatusEnded:
		return true
	default:
		return false
	}
}

// SessionSnapshot is the serialisable state of a running session.
type SessionSnapshot struct {
	ID            string    `json:"id"`
	Board         *Board    `json:"board"`
	Players       [2]Player `json:"players"`
	CurrentPlayer PlayerID  `json:"current_player"`
	GameIndex     int       `json:"game_index"`
	TotalGames    int       `json:"total_games"`
	Status        Status    `json:"status"`
	Winner        PlayerID  `json:"winner,omitempty"`
}

// Validate - checks the fields a restored session relies on.
func (that *SessionSnapshot) Validate() error {
	if that.Board == nil {
		return fmt.Errorf("%w: snapshot without board", apperror.ErrInvalidBoard)
	}

	if that.TotalGames < 1 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidGameCount, that.TotalGames)
	}

	if that.GameIndex < 1 || that.GameIndex > that.TotalGames+1 {
		return fmt.Errorf("%w: game index %d of %d", apperror.ErrInvalidInput, that.GameIndex, that.TotalGames)
	}

	if !that.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", apperror.ErrInvalidInput, that.Status)
	}

	if !that.CurrentPlayer.IsValid() {
		return fmt.Errorf("%w: unknown current player %d", apperror.ErrInvalidInput, that.CurrentPlayer)
	}

	if that.Status == StatusWon && !that.Winner.IsValid() {
		return fmt.Errorf("%w: won without winner", apperror.ErrInvalidInput)
	}

	for i, player := range that.Players {
		if player.ID != PlayerID(i+1) {
			return fmt.Errorf("%w: player %d has seat %d", apperror.ErrInvalidInput, i, player.ID)
		}

		if player.Name == "" {
			return fmt.Errorf("%w: player %d", apperror.ErrEmptyName, i)
		}

		if player.Score < 0 {
			return fmt.Errorf("%w: negative score for %s", apperror.ErrInvalidInput, player.Name)
		}
	}

	return nil
}
