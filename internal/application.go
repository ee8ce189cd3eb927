package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/rocketscienceinc/connectfour/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour/internal/transport/console"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one console session on in and out until it ends or a signal arrives.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameManager := usecase.NewGameManager(logger, sessionRepo)

	cli := console.New(logger, gameManager, in, out, console.Settings{
		Rows:    conf.Board.Rows,
		Columns: conf.Board.Columns,
		Color:   console.ColorEnabled(conf.Color, out),
	})

	log.Info("starting console session", "redis", conf.Redis.Enabled)

	if err = cli.Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("console session finished")

	return nil
}

// newSessionRepository - the redis mirror when enabled, an in-memory one otherwise.
func newSessionRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemorySessionRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewSessionRepository(redisStorage.Connection, conf.Redis.TTL), closeStorage, nil
}
