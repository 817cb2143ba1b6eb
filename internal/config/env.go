package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the process-level settings that may come from the environment
// (or a .env file). They only seed CLI flag defaults; flags win.
type Env struct {
	DBPath   string
	FPS      int
	Audio    bool
	Volume   float64
	SSHAddr  string
	HTTPAddr string
	LogLevel string
	LogFile  string
}

// LoadEnv reads a .env file from the working directory when present and
// returns the EGGCATCH_* settings with their defaults filled in.
func LoadEnv() Env {
	_ = godotenv.Load() // a missing .env is the common case

	return Env{
		DBPath:   getEnv("EGGCATCH_DB", "~/.eggcatch/scores.db"),
		FPS:      getEnvInt("EGGCATCH_FPS", 60),
		Audio:    getEnvBool("EGGCATCH_AUDIO", true),
		Volume:   getEnvFloat("EGGCATCH_VOLUME", 0.3),
		SSHAddr:  getEnv("EGGCATCH_SSH_ADDR", ":2222"),
		HTTPAddr: getEnv("EGGCATCH_HTTP_ADDR", ":8080"),
		LogLevel: getEnv("EGGCATCH_LOG_LEVEL", "info"),
		LogFile:  getEnv("EGGCATCH_LOG_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
