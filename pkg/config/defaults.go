// Package config provides centralized default values for the police story service
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile applies .env values that are not already set in the environment.
func loadEnvFile() {
	envLoaded.Do(func() {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		log.Println("Loading configuration overrides from .env file...")
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Ignoring unreadable .env file: %v", err)
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

// getEnvSecret reads a value without echoing it to the log.
func getEnvSecret(key string) string {
	val := os.Getenv(key)
	if val != "" {
		log.Printf("Config override: %s is set", key)
	}
	return val
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	ShutdownTimeout    time.Duration
	GinMode            string
	BasePath           string
	CORSAllowedOrigins string

	// Content Configuration
	DefaultLocale    string
	DatasetDir       string
	MapAccessToken   string
	FragmentCacheTTL time.Duration

	// Archive Configuration
	ArchivePath      string
	TursoDatabaseURL string
	TursoAuthToken   string
	DBMaxOpenConns   int
	DBMaxIdleConns   int

	// Logging Configuration
	LogLevel           string
	LogJSON            bool
	LogToFile          bool
	LogDirectory       string
	SlowQueryThreshold time.Duration
)

func init() {
	Load()
}

// Load reads every setting from the environment. init calls it once; tests
// call it again after t.Setenv.
func Load() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	ShutdownTimeout = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	GinMode = getEnvString("GIN_MODE", "release")
	BasePath = getEnvString("BASE_PATH", "/police_story_ds")
	CORSAllowedOrigins = getEnvString("CORS_ALLOWED_ORIGINS", "*")

	// Content Configuration
	DefaultLocale = getEnvString("DEFAULT_LOCALE", "en")
	DatasetDir = getEnvString("DATASET_DIR", "")
	MapAccessToken = getEnvSecret("MAP_ACCESS_TOKEN")
	FragmentCacheTTL = getEnvDuration("FRAGMENT_CACHE_TTL", time.Hour)

	// Archive Configuration
	ArchivePath = getEnvString("ARCHIVE_PATH", "data/archive.db")
	TursoDatabaseURL = getEnvString("TURSO_DATABASE_URL", "")
	TursoAuthToken = getEnvSecret("TURSO_AUTH_TOKEN")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 4)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 2)

	// Logging Configuration
	LogLevel = getEnvString("LOG_LEVEL", "INFO")
	LogJSON = getEnvBool("LOG_JSON", true)
	LogToFile = getEnvBool("LOG_TO_FILE", false)
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 200*time.Millisecond)
}

// UseTurso reports whether the archive should target a remote libsql database.
func UseTurso() bool {
	return TursoDatabaseURL != "" && TursoAuthToken != ""
}
