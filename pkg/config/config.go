package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Sim    SimConfig
	Share  ShareConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type SimConfig struct {
	// DefaultSeed is used when a session is created without an explicit seed.
	DefaultSeed uint32
	// TickCap clamps the elapsed time a single tick request may claim.
	TickCap float64
}

type ShareConfig struct {
	// ScoreSigningKey signs score-claim tokens for the CTA flow.
	ScoreSigningKey string
	// ReplayCodeKey encrypts replay codes; must be 16, 24 or 32 bytes.
	ReplayCodeKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	defaultSeed, err := strconv.ParseUint(getEnv("SIM_DEFAULT_SEED", "42"), 10, 32)
	if err != nil {
		return nil, errors.New("invalid sim default seed")
	}

	tickCap, err := strconv.ParseFloat(getEnv("SIM_TICK_CAP", "0.1"), 64)
	if err != nil || tickCap <= 0 {
		return nil, errors.New("invalid sim tick cap")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Quiver Arcade"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Sim: SimConfig{
			DefaultSeed: uint32(defaultSeed),
			TickCap:     tickCap,
		},
		Share: ShareConfig{
			ScoreSigningKey: getEnv("SHARE_SCORE_SIGNING_KEY", ""),
			ReplayCodeKey:   getEnv("SHARE_REPLAY_CODE_KEY", ""),
		},
	}

	if cfg.Share.ScoreSigningKey == "" {
		return nil, errors.New("missing share score signing key")
	}

	switch len(cfg.Share.ReplayCodeKey) {
	case 16, 24, 32:
	default:
		return nil, errors.New("replay code key must be 16, 24 or 32 bytes")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
