package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
)

type Config struct {
	Addr             string `env:"UNO_ADDR" envDefault:":9999"`
	BotStrategy      string `env:"UNO_BOT_STRATEGY" envDefault:"naive"`
	StackDrawCards   bool   `env:"UNO_STACK_DRAW_CARDS" envDefault:"false"`
	FirstCardEffects bool   `env:"UNO_FIRST_CARD_EFFECTS" envDefault:"false"`
	// RedisAddr enables the action history queue. Empty disables it.
	RedisAddr      string        `env:"UNO_REDIS_ADDR"`
	RedisDB        int           `env:"UNO_REDIS_DB" envDefault:"0"`
	HistoryQueue   string        `env:"UNO_HISTORY_QUEUE" envDefault:"uno_actions"`
	HistoryTimeout time.Duration `env:"UNO_HISTORY_TIMEOUT" envDefault:"2s"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := player.New(cfg.BotStrategy, nil); err != nil {
		return Config{}, fmt.Errorf("UNO_BOT_STRATEGY: %w", err)
	}
	if cfg.HistoryTimeout <= 0 {
		return Config{}, consts.ErrorsInvalidArgument.Withf("UNO_HISTORY_TIMEOUT must be positive, got %s", cfg.HistoryTimeout)
	}
	return cfg, nil
}

func (c Config) HouseRules() game.HouseRules {
	return game.HouseRules{
		StackDrawCards:   c.StackDrawCards,
		FirstCardEffects: c.FirstCardEffects,
	}
}

func (c Config) HistoryEnabled() bool {
	return c.RedisAddr != ""
}
