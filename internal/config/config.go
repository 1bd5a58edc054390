package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Storage       string
	DBPath        string
	PostgresDSN   string
	Addr          string
	AllowedOrigin string
	LogLevel      string
}

// LoadEnv подгружает .env, если он есть. Отсутствие файла ошибкой не считается.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not load env file: %w", err)
	}
	return nil
}

// GetEnv возвращает значение переменной окружения или ошибку, если она не задана.
func GetEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("environment variable %s is not set", key)
	}
	return value, nil
}

func GetEnvDefault(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

// Load собирает конфигурацию: флаги имеют приоритет над переменными окружения.
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.StringVar(&cfg.Storage, "storage", GetEnvDefault("STORAGE", StorageSQLite),
		"storage type: sqlite, postgres or memory")
	fs.StringVar(&cfg.DBPath, "db-path", GetEnvDefault("DB_PATH", "database.db"),
		"path to the sqlite database file")
	fs.StringVar(&cfg.Addr, "addr", GetEnvDefault("ADDR", ":8000"),
		"address to listen on")
	fs.StringVar(&cfg.AllowedOrigin, "cors-origin", GetEnvDefault("CORS_ORIGIN", "http://localhost:3000"),
		"the only origin allowed to make cross-origin requests")
	fs.StringVar(&cfg.LogLevel, "log-level", GetEnvDefault("LOG_LEVEL", "info"),
		"log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.Storage {
	case StorageSQLite:
		if cfg.DBPath == "" {
			return nil, errors.New("db-path must not be empty")
		}
	case StorageMemory:
	case StoragePostgres:
		dsn, err := postgresDSN()
		if err != nil {
			return nil, err
		}
		cfg.PostgresDSN = dsn
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage)
	}

	return cfg, nil
}

func postgresDSN() (string, error) {
	keys := []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_SSLMODE"}
	values := make([]interface{}, 0, len(keys))
	for _, key := range keys {
		value, err := GetEnv(key)
		if err != nil {
			return "", err
		}
		values = append(values, value)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s", values...), nil
}
