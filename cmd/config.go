package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"mota/internal/pkg/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`

	// The MOTA backend, the system of record for orders.
	MotaAPIURL     string        `env:"MOTA_API_URL" env-required:"true"`
	MotaAPITimeout time.Duration `env:"MOTA_API_TIMEOUT" env-default:"10s"`

	SessionConfig

	BoardRefreshSchedule string `env:"BOARD_REFRESH_SCHEDULE" env-default:"*/30 * * * * *"`

	// Status change events are only published when KafkaHost is set.
	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" env-default:"mota.order.status_changed"`

	LogLevel      string `env:"LOG_LEVEL" env-default:"info"`
	LogPath       string `env:"LOG_PATH"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"5"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}

// SessionConfig holds the settings for signing session tokens.
type SessionConfig struct {
	JWTSigningKey string        `env:"JWT_SIGNING_KEY" env-required:"true"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" env-default:"24h"`
}

// LoadConfig reads envFile into the environment when it exists and then
// parses the environment.
func LoadConfig(envFile string) (Config, error) {
	var cfg Config
	if err := readEnv(envFile, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadSessionConfig is LoadConfig restricted to the session settings, for
// tools that only sign tokens.
func LoadSessionConfig(envFile string) (SessionConfig, error) {
	var cfg SessionConfig
	if err := readEnv(envFile, &cfg); err != nil {
		return SessionConfig{}, err
	}
	return cfg, nil
}

func readEnv(envFile string, cfg any) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

func (c Config) Logger() logger.Config {
	return logger.Config{
		Level:      c.LogLevel,
		Path:       c.LogPath,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}
