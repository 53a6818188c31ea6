package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"textquiz/internal/opentdb"
)

// Config holds the CLI settings. Values come from defaults, then an optional
// YAML file, then QUIZ_* environment variables.
type Config struct {
	LogLevel  string `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=json pretty"`
	// HistoryDB is the SQLite file that records quiz runs. Empty disables
	// run history.
	HistoryDB    string `yaml:"history_db"`
	OpenTDBURL   string `yaml:"opentdb_url" validate:"required,url"`
	ImportAmount int    `yaml:"import_amount" validate:"gte=1,lte=50"`
}

func Default() *Config {
	return &Config{
		LogLevel:     "warn",
		LogFormat:    "pretty",
		OpenTDBURL:   opentdb.DefaultURL,
		ImportAmount: 10,
	}
}

// Load builds the configuration. path names a YAML file; when empty,
// $QUIZ_CONFIG is used. A missing file is not an error. A .env file in the
// working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()

	if path == "" {
		path = os.Getenv("QUIZ_CONFIG")
	}
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.LogLevel = getEnv("QUIZ_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("QUIZ_LOG_FORMAT", cfg.LogFormat)
	cfg.HistoryDB = getEnv("QUIZ_HISTORY_DB", cfg.HistoryDB)
	cfg.OpenTDBURL = getEnv("QUIZ_OPENTDB_URL", cfg.OpenTDBURL)
	cfg.ImportAmount = getEnvInt("QUIZ_IMPORT_AMOUNT", cfg.ImportAmount)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
