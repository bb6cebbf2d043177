// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings — настройки установки из окружения или файла .env.
type Settings struct {
	UserID       string
	ScoreURL     string
	ScoreKey     string
	ScoreFile    string
	SavePolicy   string
	Seed         int64
	SpectateAddr string
	LogLevel     string
	DefsPath     string
}

// LoadSettings читает указанные .env файлы (отсутствующие пропускаются), затем окружение
// процесса. Переменные, уже заданные в окружении, важнее файлов.
func LoadSettings(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Settings{}, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	s := Settings{
		UserID:       getEnv("ARCADE_USER_ID", "local"),
		ScoreURL:     getEnv("ARCADE_SCORE_URL", ""),
		ScoreKey:     getEnv("ARCADE_SCORE_KEY", ""),
		ScoreFile:    getEnv("ARCADE_SCORE_FILE", ""),
		SavePolicy:   strings.ToLower(getEnv("ARCADE_SAVE_POLICY", "always")),
		SpectateAddr: getEnv("ARCADE_SPECTATE_ADDR", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DefsPath:     getEnv("ARCADE_DEFS", ""),
	}

	if raw := os.Getenv("ARCADE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("parse ARCADE_SEED %q: %w", raw, err)
		}
		s.Seed = seed
	}

	switch s.SavePolicy {
	case "always", "best":
	default:
		return Settings{}, fmt.Errorf("unknown ARCADE_SAVE_POLICY %q", s.SavePolicy)
	}

	return s, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
