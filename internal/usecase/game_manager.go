package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/pkg"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.SessionSnapshot) error
	DeleteByID(ctx context.Context, id string) error
}

// GameManager is the entry point for the input side: it configures a session,
// turns raw moves into placements and keeps the session mirror up to date.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo

	firstName  string
	secondName string
	rows       int
	columns    int

	sessionID string
	session   *connectfour.Session
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,

		rows:    entity.DefaultRows,
		columns: entity.DefaultColumns,
	}
}

func (that *GameManager) ConfigurePlayers(first, second string) error {
	first, second = strings.TrimSpace(first), strings.TrimSpace(second)

	if first == "" || second == "" {
		return apperror.ErrEmptyName
	}

	that.firstName, that.secondName = first, second

	return nil
}

func (that *GameManager) ConfigureBoard(rows, columns int) error {
	if err := entity.ValidateDimensions(rows, columns); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidDimensions, err)
	}

	that.rows, that.columns = rows, columns

	return nil
}

// ConfigureSession - starts a session of totalGames games with the configured players and board.
func (that *GameManager) ConfigureSession(ctx context.Context, totalGames int) error {
	log := that.logger.With("method", "ConfigureSession")

	if totalGames < 1 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidGameCount, totalGames)
	}

	if that.firstName == "" || that.secondName == "" {
		return fmt.Errorf("players are not configured: %w", apperror.ErrEmptyName)
	}

	session, err := connectfour.NewSession(
		entity.NewPlayer(entity.First, that.firstName),
		entity.NewPlayer(entity.Second, that.secondName),
		that.rows, that.columns, totalGames,
	)
	if err != nil {
		return fmt.Errorf("failed create session: %w", err)
	}

	that.session = session
	that.sessionID = pkg.GenerateSessionID()
	that.saveSession(ctx)

	log.Info("session started",
		"session_id", that.sessionID,
		"rows", that.rows,
		"columns", that.columns,
		"total_games", totalGames,
	)

	return nil
}

// SubmitMove - places a token in the one-based column given as text.
// Rejections are returned as ErrNotANumber, ErrOutOfRange or ErrColumnFull and change nothing.
func (that *GameManager) SubmitMove(ctx context.Context, raw string) (connectfour.MoveResult, error) {
	log := that.logger.With("method", "SubmitMove")

	if that.session == nil {
		return connectfour.MoveResult{}, apperror.ErrSessionNotStarted
	}

	column, err := parseColumn(raw, that.session.Columns())
	if err != nil {
		log.Debug("move rejected", "input", raw, "error", err)
		return connectfour.MoveResult{}, err
	}

	result, err := that.session.PlaceToken(column - 1)
	if err != nil {
		if errors.Is(err, apperror.ErrColumnFull) || errors.Is(err, apperror.ErrOutOfRange) {
			log.Debug("move rejected", "input", raw, "error", err)
			return connectfour.MoveResult{}, err
		}

		return connectfour.MoveResult{}, fmt.Errorf("failed place token: %w", err)
	}

	log.Debug("token placed", "player", result.Player, "column", result.Column, "row", result.Row)

	switch result.Status {
	case entity.StatusWon:
		log.Info("game won",
			"session_id", that.sessionID,
			"winner", that.session.Player(result.Player).Name,
			"game", that.session.GameIndex()-1,
		)
	case entity.StatusDraw:
		log.Info("game drawn", "session_id", that.sessionID, "game", that.session.GameIndex()-1)
	}

	that.saveSession(ctx)

	return result, nil
}

// parseColumn - digits only, the range is checked against the board width.
func parseColumn(raw string, columns int) (int, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotANumber, raw)
	}

	column, err := strconv.Atoi(raw)
	if err != nil || column < 1 || column > columns {
		return 0, fmt.Errorf("%w: %s of 1 - %d", apperror.ErrOutOfRange, raw, columns)
	}

	return column, nil
}

// Advance - starts the next game or ends the session after a finished game.
func (that *GameManager) Advance(ctx context.Context) error {
	if that.session == nil {
		return apperror.ErrSessionNotStarted
	}

	if err := that.session.Advance(); err != nil {
		return fmt.Errorf("failed advance session: %w", err)
	}

	if that.session.IsEnded() {
		that.endSession(ctx, "all games played")
		return nil
	}

	that.logger.Info("game started",
		"session_id", that.sessionID,
		"game", that.session.GameIndex(),
		"starting_player", that.currentName(),
	)
	that.saveSession(ctx)

	return nil
}

// RequestEnd - aborts the session on user request.
func (that *GameManager) RequestEnd(ctx context.Context) error {
	if that.session == nil {
		return apperror.ErrSessionNotStarted
	}

	if that.session.IsEnded() {
		return nil
	}

	that.session.Abort()
	that.endSession(ctx, "requested")

	return nil
}

// State - a copy of the session for rendering.
func (that *GameManager) State() (*entity.SessionSnapshot, error) {
	if that.session == nil {
		return nil, apperror.ErrSessionNotStarted
	}

	return that.session.Snapshot(that.sessionID), nil
}

func (that *GameManager) SessionID() string {
	return that.sessionID
}

func (that *GameManager) currentName() string {
	return that.session.Player(that.session.CurrentPlayer()).Name
}

func (that *GameManager) endSession(ctx context.Context, reason string) {
	players := that.session.Players()

	that.logger.Info("session ended",
		"session_id", that.sessionID,
		"reason", reason,
		"first_score", players[0].Score,
		"second_score", players[1].Score,
	)

	that.deleteSession(ctx)
}

// saveSession - mirror failures never interrupt the game.
func (that *GameManager) saveSession(ctx context.Context) {
	if err := that.sessionRepo.CreateOrUpdate(ctx, that.session.Snapshot(that.sessionID)); err != nil {
		that.logger.Warn("could not update session mirror", "session_id", that.sessionID, "error", err)
	}
}

func (that *GameManager) deleteSession(ctx context.Context) {
	if err := that.sessionRepo.DeleteByID(ctx, that.sessionID); err != nil {
		that.logger.Warn("could not delete session mirror", "session_id", that.sessionID, "error", err)
	}
}
