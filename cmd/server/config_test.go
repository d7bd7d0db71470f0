package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *serverConfig {
	return &serverConfig{
		Port:              50051,
		RedisAddr:         "localhost:6379",
		SessionTTL:        time.Hour,
		LogLevel:          "info",
		LogFormat:         "text",
		EncounterChance:   0.8,
		VictoryExperience: 10,
		LevelCap:          100,
	}
}

func TestServerConfigValidate(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*serverConfig)
		contains string
	}{
		{"valid", func(*serverConfig) {}, ""},
		{"bad port", func(c *serverConfig) { c.Port = 0 }, "port: must be between 1 and 65535"},
		{"no redis", func(c *serverConfig) { c.RedisAddr = "" }, "redis.addr: is required"},
		{"no ttl", func(c *serverConfig) { c.SessionTTL = 0 }, "session.ttl: must be positive"},
		{"bad level", func(c *serverConfig) { c.LogLevel = "loud" }, "log.level: unknown level"},
		{"bad format", func(c *serverConfig) { c.LogFormat = "xml" }, "log.format: must be one of: text, json"},
		{"chance over one", func(c *serverConfig) { c.EncounterChance = 1.5 }, "game.encounter_chance"},
		{"negative xp", func(c *serverConfig) { c.VictoryExperience = -1 }, "game.victory_experience"},
		{"no levels", func(c *serverConfig) { c.LevelCap = 0 }, "game.level_cap: must be at least 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.contains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = parseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
