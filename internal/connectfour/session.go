package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Session sequences one or more games between two players and keeps the score.
type Session struct {
	players    [2]*entity.Player
	board      *entity.Board
	detector   *WinDetector
	current    entity.PlayerID
	gameIndex  int
	totalGames int
	status     entity.Status
	winner     entity.PlayerID
	lastRun    Line
}

// MoveResult describes what a single placement did.
type MoveResult struct {
	Player entity.PlayerID
	Column int
	Row    int
	Status entity.Status
	Run    Line
}

func NewSession(first, second *entity.Player, rows, columns, totalGames int) (*Session, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("%w: both players are required", apperror.ErrEmptyName)
	}

	if totalGames < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidGameCount, totalGames)
	}

	board, err := entity.NewBoard(rows, columns)
	if err != nil {
		return nil, fmt.Errorf("failed create board: %w", err)
	}

	first.ID, second.ID = entity.First, entity.Second

	return &Session{
		players:    [2]*entity.Player{first, second},
		board:      board,
		detector:   NewWinDetector(rows, columns),
		current:    entity.First,
		gameIndex:  1,
		totalGames: totalGames,
		status:     entity.StatusInProgress,
	}, nil
}

// PlaceToken - drops the current player's token into a zero-based column.
// Rejected moves leave the session untouched.
func (that *Session) PlaceToken(column int) (MoveResult, error) {
	switch {
	case that.status == entity.StatusEnded:
		return MoveResult{}, apperror.ErrSessionEnded
	case that.status.IsGameOver():
		return MoveResult{}, apperror.ErrGameFinished
	}

	if column < 0 || column >= that.board.Columns() {
		return MoveResult{}, fmt.Errorf("%w: column %d of %d", apperror.ErrOutOfRange, column+1, that.board.Columns())
	}

	if !that.board.IsColumnPlayable(column) {
		return MoveResult{}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column+1)
	}

	player := that.current
	row, err := that.board.Drop(column, player)
	if err != nil {
		return MoveResult{}, fmt.Errorf("failed drop token: %w", err)
	}

	that.updateStatus(player)

	return MoveResult{
		Player: player,
		Column: column,
		Row:    row,
		Status: that.status,
		Run:    that.lastRun,
	}, nil
}

// updateStatus - win is checked before the draw so a full winning board is a win.
func (that *Session) updateStatus(player entity.PlayerID) {
	if verdict := that.detector.Check(that.board, player); verdict.IsWin() {
		that.Player(player).AddPoints(entity.WinPoints)
		that.status = entity.StatusWon
		that.winner = player
		that.lastRun = verdict.Run
		that.gameIndex++
		return
	}

	if that.board.IsFull() {
		for _, p := range that.players {
			p.AddPoints(entity.DrawPoints)
		}
		that.status = entity.StatusDraw
		that.gameIndex++
		return
	}

	that.current = player.Other()
}

// Advance - moves on from a finished game: ends the session or starts the next game.
func (that *Session) Advance() error {
	switch {
	case that.status == entity.StatusEnded:
		return apperror.ErrSessionEnded
	case that.status == entity.StatusInProgress:
		return apperror.ErrGameInProgress
	}

	if that.IsLastGame() {
		that.status = entity.StatusEnded
		return nil
	}

	that.board.Clear()
	that.status = entity.StatusInProgress
	that.winner = entity.NoPlayer
	that.lastRun = nil
	that.current = startingPlayer(that.gameIndex)

	return nil
}

// startingPlayer - odd games are opened by the first player, even ones by the second.
func startingPlayer(gameIndex int) entity.PlayerID {
	if gameIndex%2 == 1 {
		return entity.First
	}
	return entity.Second
}

// Abort - ends the session on request, scores and game index are kept.
func (that *Session) Abort() {
	that.status = entity.StatusEnded
}

func (that *Session) Player(id entity.PlayerID) *entity.Player {
	return that.players[id.Index()]
}

func (that *Session) Players() [2]entity.Player {
	return [2]entity.Player{*that.players[0], *that.players[1]}
}

func (that *Session) CurrentPlayer() entity.PlayerID {
	return that.current
}

func (that *Session) Rows() int {
	return that.board.Rows()
}

func (that *Session) Columns() int {
	return that.board.Columns()
}

// Grid - copy of the board indexed [column][row], row 0 at the bottom.
func (that *Session) Grid() [][]entity.Cell {
	return that.board.Grid()
}

func (that *Session) GameIndex() int {
	return that.gameIndex
}

func (that *Session) TotalGames() int {
	return that.totalGames
}

func (that *Session) Status() entity.Status {
	return that.status
}

// Winner - the winner of the last finished game, NoPlayer for a draw or a running game.
func (that *Session) Winner() entity.PlayerID {
	return that.winner
}

func (that *Session) IsEnded() bool {
	return that.status == entity.StatusEnded
}

// IsLastGame - no further game follows the one that just finished.
func (that *Session) IsLastGame() bool {
	return that.totalGames == 1 || that.gameIndex > that.totalGames
}

func (that *Session) Snapshot(id string) *entity.SessionSnapshot {
	return &entity.SessionSnapshot{
		ID:            id,
		Board:         that.board.Clone(),
		Players:       that.Players(),
		CurrentPlayer: that.current,
		GameIndex:     that.gameIndex,
		TotalGames:    that.totalGames,
		Status:        that.status,
		Winner:        that.winner,
	}
}

// Restore - rebuilds a session from a snapshot.
func Restore(snapshot *entity.SessionSnapshot) (*Session, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	first, second := snapshot.Players[0], snapshot.Players[1]
	board := snapshot.Board.Clone()

	session := &Session{
		players:    [2]*entity.Player{&first, &second},
		board:      board,
		detector:   NewWinDetector(board.Rows(), board.Columns()),
		current:    snapshot.CurrentPlayer,
		gameIndex:  snapshot.GameIndex,
		totalGames: snapshot.TotalGames,
		status:     snapshot.Status,
		winner:     snapshot.Winner,
	}

	if session.status == entity.StatusWon {
		session.lastRun = session.detector.Check(board, session.winner).Run
	}

	return session, nil
}
