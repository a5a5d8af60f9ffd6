package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// MatcherLexical scores documents by token-vector cosine similarity.
	MatcherLexical = "lexical"
	// MatcherEmbedding scores documents by embedding cosine similarity.
	MatcherEmbedding = "embedding"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Matcher  MatcherConfig
	Upload   UploadConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type MatcherConfig struct {
	// Strategy selects MatcherLexical or MatcherEmbedding.
	Strategy string
	// GeminiAPIKey is required when Strategy is MatcherEmbedding.
	GeminiAPIKey string
	// EmbeddingModel overrides the default embedding model name.
	EmbeddingModel string
}

type UploadConfig struct {
	// MaxUploadMB bounds a single resume file.
	MaxUploadMB int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optSeconds("DB_CONNECT_TIMEOUT_SECONDS", 0),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optSeconds("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 0),
		PoolMaxConnIdleTime:   optSeconds("DB_POOL_MAX_CONN_IDLE_SECONDS", 0),
		PoolHealthCheckPeriod: optSeconds("DB_POOL_HEALTHCHECK_SECONDS", 0),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optSeconds("JWT_ACCESS_EXPIRES_SECONDS", 15*60),
		RefreshExpiresIn: optSeconds("JWT_REFRESH_EXPIRES_SECONDS", 7*24*60*60),
	}

	cfg.Matcher = MatcherConfig{
		Strategy:       strings.ToLower(opt("MATCHER_STRATEGY")),
		GeminiAPIKey:   opt("GEMINI_API_KEY"),
		EmbeddingModel: opt("EMBEDDING_MODEL"),
	}
	if cfg.Matcher.Strategy == "" {
		cfg.Matcher.Strategy = MatcherLexical
	}

	cfg.Upload = UploadConfig{
		MaxUploadMB: optInt("MAX_UPLOAD_MB", 16),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if cfg.Matcher.Strategy != MatcherLexical && cfg.Matcher.Strategy != MatcherEmbedding {
		return Config{}, fmt.Errorf("invalid MATCHER_STRATEGY %q", cfg.Matcher.Strategy)
	}
	if cfg.Matcher.Strategy == MatcherEmbedding && cfg.Matcher.GeminiAPIKey == "" {
		return Config{}, fmt.Errorf("%w: GEMINI_API_KEY", errMissingRequiredEnv)
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func optSeconds(key string, defSeconds int) time.Duration {
	return time.Duration(optInt(key, defSeconds)) * time.Second
}
