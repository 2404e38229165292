package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

// Config stores runtime configuration for the scouting console.
type Config struct {
	AppEnv     string
	LogLevel   logging.Level
	LogFormat  logging.Format
	LogFile    string
	DataDir    string
	Storage    string
	BcryptCost int
	ReportDir  string
	CacheTTL   time.Duration
}

const (
	StorageFile   = "file"
	StorageMemory = "memory"
)

// Load reads the environment, after applying an optional .env file from the
// working directory. Variables already set win over the file.
func Load() (Config, error) {
	if err := loadDotEnv(getEnv("SCOUTING_ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormat, err := parseLogFormat(getEnv("APP_LOG_FORMAT", string(logging.FormatConsole)))
	if err != nil {
		return Config{}, err
	}

	storage, err := parseStorage(getEnv("SCOUTING_STORAGE", StorageFile))
	if err != nil {
		return Config{}, err
	}

	dataDir := strings.TrimSpace(getEnv("SCOUTING_DATA_DIR", "data"))
	if storage == StorageFile && dataDir == "" {
		return Config{}, fmt.Errorf("SCOUTING_DATA_DIR is required when SCOUTING_STORAGE=%s", StorageFile)
	}

	bcryptCost, err := getEnvAsInt("SCOUTING_BCRYPT_COST", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCOUTING_BCRYPT_COST: %w", err)
	}
	if bcryptCost < 4 || bcryptCost > 31 {
		return Config{}, fmt.Errorf("SCOUTING_BCRYPT_COST must be between 4 and 31")
	}

	cacheTTL, err := time.ParseDuration(getEnv("SCOUTING_CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCOUTING_CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return Config{}, fmt.Errorf("SCOUTING_CACHE_TTL must not be negative")
	}

	return Config{
		AppEnv:     appEnv,
		LogLevel:   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:  logFormat,
		LogFile:    strings.TrimSpace(getEnv("SCOUTING_LOG_FILE", "")),
		DataDir:    dataDir,
		Storage:    storage,
		BcryptCost: bcryptCost,
		ReportDir:  strings.TrimSpace(getEnv("SCOUTING_REPORT_DIR", "reports")),
		CacheTTL:   cacheTTL,
	}, nil
}

func loadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(v string) (logging.Format, error) {
	switch format := logging.Format(strings.ToLower(strings.TrimSpace(v))); format {
	case logging.FormatJSON, logging.FormatConsole:
		return format, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatJSON, logging.FormatConsole)
	}
}

func parseStorage(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StorageFile, StorageMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid SCOUTING_STORAGE %q: valid values are %s, %s", v, StorageFile, StorageMemory)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
