package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE"`
	Color    string `yaml:"color" env:"COLOR" env-default:"auto"`
	Board    Board  `yaml:"board"`
	Redis    Redis  `yaml:"redis"`
}

// Board holds the dimensions offered when the players press Enter.
type Board struct {
	Rows    int `yaml:"rows" env:"BOARD_ROWS" env-default:"6"`
	Columns int `yaml:"columns" env:"BOARD_COLUMNS" env-default:"7"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// Load - reads the yaml file at path, or the environment alone when there is no such file.
// The result is not validated, command line overrides come first.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if err := entity.ValidateDimensions(that.Board.Rows, that.Board.Columns); err != nil {
		return fmt.Errorf("board: %w: %w", apperror.ErrInvalidDimensions, err)
	}

	switch that.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q: %w", that.Color, apperror.ErrInvalidInput)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log-level %q: %w", that.LogLevel, apperror.ErrInvalidInput)
	}

	if that.Redis.Enabled && that.Redis.TTL <= 0 {
		return fmt.Errorf("redis ttl %s: %w", that.Redis.TTL, apperror.ErrInvalidInput)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
