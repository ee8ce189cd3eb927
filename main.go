package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	app "github.com/rocketscienceinc/connectfour/internal"
	"github.com/rocketscienceinc/connectfour/internal/config"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	// .env is optional
	_ = godotenv.Load()

	flags, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		panic(fmt.Errorf("invalid arguments: %w", err))
	}

	conf := initConfig(flags)

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err = app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// cliFlags - command line overrides, applied only when given.
type cliFlags struct {
	set *flag.FlagSet

	configPath string
	logLevel   string
	color      string
	redis      bool
}

func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{set: flag.NewFlagSet("connectfour", flag.ContinueOnError)}

	flags.set.StringVarP(&flags.configPath, "config", "c", defaultConfigPath, "Path to the yaml config file")
	flags.set.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.set.StringVar(&flags.color, "color", "", "Token colors: auto, always or never")
	flags.set.BoolVar(&flags.redis, "redis", false, "Mirror the live session to redis")

	if err := flags.set.Parse(args); err != nil {
		return nil, err
	}

	return flags, nil
}

func (that *cliFlags) apply(conf *config.Config) {
	if that.set.Changed("log-level") {
		conf.LogLevel = that.logLevel
	}

	if that.set.Changed("color") {
		conf.Color = that.color
	}

	if that.set.Changed("redis") {
		conf.Redis.Enabled = that.redis
	}
}

// initialize config.
func initConfig(flags *cliFlags) *config.Config {
	conf := config.MustLoad(flags.configPath)

	flags.apply(conf)

	if err := conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return conf
}

// initialize logger. The console owns stdout, so logs go to the log file or stderr.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var out io.Writer = os.Stderr
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: logLevel(conf.LogLevel)})), closeLog
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
