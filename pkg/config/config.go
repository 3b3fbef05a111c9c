package config

import (
	"cricstats/internal/repository"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Repo       repository.Config
	LogLevel   string `env:"LOGGER_LEVEL" envDefault:"warn"`
	LogFile    string `env:"LOGGER_FILE" envDefault:""`
	TeamName   string `env:"TEAM_NAME" envDefault:"Sri Lanka"`
	HistoryLen int    `env:"HISTORY_LIMIT" envDefault:"5"`

	// CommentarySeed fixes the commentary sequence; 0 seeds from the clock.
	CommentarySeed uint64 `env:"COMMENTARY_SEED" envDefault:"0"`
}

func ReadEnvConfig(cfg *Config) error {
	return env.Parse(cfg)
}
