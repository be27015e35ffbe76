package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"jobjotter/internal/shared/telemetry"
)

// Object store providers.
const (
	StoreLocal = "local"
	StoreS3    = "s3"
)

// Config holds application configuration.
type Config struct {
	Env                     string
	Port                    string
	CORSAllowOrigin         []string
	DatabaseURL             string
	ObjectStoreType         string
	LocalStoreDir           string
	AWSRegion               string
	S3Bucket                string
	S3Prefix                string
	SSEKMSKeyID             string
	VocabularyFile          string
	LogLevel                string
	LogFormat               string
	RateLimitAnalysesPerMin int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Env:                     env,
		Port:                    getEnv("PORT", "8080"),
		CORSAllowOrigin:         splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:             dbURL,
		ObjectStoreType:         normalizeStoreType(getEnv("OBJECT_STORE", StoreLocal)),
		LocalStoreDir:           getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:               getEnv("AWS_REGION", ""),
		S3Bucket:                getEnv("S3_BUCKET", ""),
		S3Prefix:                getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:             getEnv("SSE_KMS_KEY_ID", ""),
		VocabularyFile:          getEnv("VOCABULARY_FILE", ""),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               strings.ToLower(getEnv("LOG_FORMAT", "json")),
		RateLimitAnalysesPerMin: getEnvInt("RATE_LIMIT_ANALYSES_PER_MIN", 30),
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	var errs []error
	if c.ObjectStoreType == StoreS3 && strings.TrimSpace(c.S3Bucket) == "" {
		errs = append(errs, errors.New("S3_BUCKET is required when OBJECT_STORE=s3"))
	}
	if c.ObjectStoreType == StoreLocal && strings.TrimSpace(c.LocalStoreDir) == "" {
		errs = append(errs, errors.New("LOCAL_STORE_DIR is required when OBJECT_STORE=local"))
	}
	if c.RateLimitAnalysesPerMin < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_ANALYSES_PER_MIN must not be negative"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid_int", map[string]any{"key": key, "value": raw})
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "test":
		return "test"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), StoreS3) {
		return StoreS3
	}
	return StoreLocal
}
