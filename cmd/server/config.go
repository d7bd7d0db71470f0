package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	battlemachine "github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/encounter"
	"github.com/KirkDiggler/rpg-quest/internal/engine"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/battlesession"
)

const envPrefix = "RPGQUEST"

var (
	cfgFile string
	v       = viper.New()
)

// serverConfig is everything the server reads from flags, environment and
// the optional config file. Environment keys replace dots with underscores,
// e.g. RPGQUEST_REDIS_ADDR.
type serverConfig struct {
	Port              int
	RedisAddr         string
	RedisPassword     string
	SessionTTL        time.Duration
	LogLevel          string
	LogFormat         string
	EncounterChance   float64
	VictoryExperience int
	LevelCap          int
}

func registerServerFlags(flags *pflag.FlagSet) {
	flags.Int("port", 50051, "gRPC server port")
	flags.String("redis.addr", "localhost:6379", "Redis address")
	flags.String("redis.password", "", "Redis password")
	flags.Duration("session.ttl", battlesession.DefaultTTL, "how long an idle battle is kept")
	flags.String("log.level", "info", "log level: debug, info, warn or error")
	flags.String("log.format", "text", "log format: text or json")
	flags.Float64("game.encounter_chance", encounter.DefaultChance, "chance that a move runs into an enemy")
	flags.Int("game.victory_experience", battlemachine.DefaultVictoryExperience, "experience awarded per victory")
	flags.Int("game.level_cap", engine.DefaultRules().LevelCap, "highest reachable level")

	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f) // nolint:errcheck // flag always exists
	})
}

func initConfig() {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

func loadServerConfig() (*serverConfig, error) {
	cfg := &serverConfig{
		Port:              v.GetInt("port"),
		RedisAddr:         v.GetString("redis.addr"),
		RedisPassword:     v.GetString("redis.password"),
		SessionTTL:        v.GetDuration("session.ttl"),
		LogLevel:          v.GetString("log.level"),
		LogFormat:         v.GetString("log.format"),
		EncounterChance:   v.GetFloat64("game.encounter_chance"),
		VictoryExperience: v.GetInt("game.victory_experience"),
		LevelCap:          v.GetInt("game.level_cap"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values before anything is started
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.Field("port", "must be between 1 and 65535")
	}
	errors.ValidateRequired("redis.addr", c.RedisAddr, vb)
	if c.SessionTTL <= 0 {
		vb.Field("session.ttl", "must be positive")
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		vb.Field("log.level", errors.GetMessage(err))
	}
	errors.ValidateEnum("log.format", c.LogFormat, []string{"text", "json"}, vb)
	if c.EncounterChance < 0 || c.EncounterChance > 1 {
		vb.Field("game.encounter_chance", "must be between 0 and 1")
	}
	if c.VictoryExperience < 0 {
		vb.Field("game.victory_experience", "must not be negative")
	}
	if c.LevelCap < 1 {
		vb.Field("game.level_cap", "must be at least 1")
	}

	return vb.Build()
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.InvalidArgumentf("unknown level %q", s)
	}
	return level, nil
}

func newLogger(cfg *serverConfig) *slog.Logger {
	level, _ := parseLogLevel(cfg.LogLevel) // nolint:errcheck // validated
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
