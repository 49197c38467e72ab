package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, ":9999", cfg.Addr)
		require.Equal(t, "naive", cfg.BotStrategy)
		require.False(t, cfg.HistoryEnabled())
		require.Equal(t, "uno_actions", cfg.HistoryQueue)
		require.Equal(t, 2*time.Second, cfg.HistoryTimeout)
		require.False(t, cfg.HouseRules().StackDrawCards)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("UNO_ADDR", ":8080")
		t.Setenv("UNO_BOT_STRATEGY", "good")
		t.Setenv("UNO_STACK_DRAW_CARDS", "true")
		t.Setenv("UNO_FIRST_CARD_EFFECTS", "true")
		t.Setenv("UNO_REDIS_ADDR", "localhost:6379")
		t.Setenv("UNO_REDIS_DB", "3")
		t.Setenv("UNO_HISTORY_TIMEOUT", "500ms")

		cfg, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.Addr)
		require.Equal(t, "good", cfg.BotStrategy)
		require.True(t, cfg.HouseRules().StackDrawCards)
		require.True(t, cfg.HouseRules().FirstCardEffects)
		require.True(t, cfg.HistoryEnabled())
		require.Equal(t, 3, cfg.RedisDB)
		require.Equal(t, 500*time.Millisecond, cfg.HistoryTimeout)
	})

	t.Run("unknown_strategy", func(t *testing.T) {
		t.Setenv("UNO_BOT_STRATEGY", "psychic")
		_, err := config.Load()
		require.True(t, errors.Is(err, consts.ErrorsInvalidArgument))
	})

	t.Run("malformed_values", func(t *testing.T) {
		t.Setenv("UNO_REDIS_DB", "three")
		_, err := config.Load()
		require.Error(t, err)
	})

	t.Run("non_positive_timeout", func(t *testing.T) {
		t.Setenv("UNO_HISTORY_TIMEOUT", "0s")
		_, err := config.Load()
		require.True(t, errors.Is(err, consts.ErrorsInvalidArgument))
	})
}
