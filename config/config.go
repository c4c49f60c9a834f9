package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// StorageConfig seleciona o adaptador de persistência do tracker:
// "remote" fala com a API em BaseURL, "local" usa um arquivo JSON.
type StorageConfig struct {
	Mode         string
	BaseURL      string
	LocalPath    string
	LocalLatency time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3001"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			DBName:          getEnv("DB_NAME", "gf_innovation"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			SQLitePath:      getEnv("SQLITE_PATH", "gf_innovation.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
		},
		Storage: StorageConfig{
			Mode:         getEnv("STORAGE_MODE", "remote"),
			BaseURL:      getEnv("API_BASE_URL", "http://localhost:3001/api/investments"),
			LocalPath:    getEnv("LOCAL_STORAGE_PATH", "investments.json"),
			LocalLatency: time.Duration(getEnvInt("LOCAL_STORAGE_LATENCY_MS", 0)) * time.Millisecond,
		},
	}

	switch cfg.Database.Driver {
	case "postgres", "sqlite", "memory":
	default:
		return nil, fmt.Errorf("DB_DRIVER inválido: %q (use postgres, sqlite ou memory)", cfg.Database.Driver)
	}

	switch cfg.Storage.Mode {
	case "remote", "local":
	default:
		return nil, fmt.Errorf("STORAGE_MODE inválido: %q (use remote ou local)", cfg.Storage.Mode)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
