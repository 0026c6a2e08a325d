package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Resume     ResumeConfig
	Aggregator AggregatorConfig
	Feeds      FeedConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	PoolMaxConns int32
	PoolMinConns int32
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// ResumeConfig points at the external resume-extraction service. The core
// only consumes its structured skill output.
type ResumeConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AggregatorConfig struct {
	Workers        int
	LockTTL        time.Duration
	SnapshotLimit  int
	RecommendLimit int
}

// FeedConfig points at the external catalogs the sync job ingests. Empty
// URLs disable the corresponding feed.
type FeedConfig struct {
	CoursePlatform string
	CourseBaseURL  string
	JobBoardURL    string
	Pages          int
	Workers        int
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
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "skill-companion"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		Host:         req("DB_HOST"),
		Port:         opt("DB_PORT", "5432"),
		Name:         req("DB_NAME"),
		User:         req("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		SSLMode:      opt("DB_SSL_MODE", "disable"),
		PoolMaxConns: int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns: int32(optInt("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Resume = ResumeConfig{
		BaseURL: opt("RESUME_SERVICE_URL", ""),
		Timeout: optDuration("RESUME_SERVICE_TIMEOUT", 30*time.Second),
	}

	cfg.Feeds = FeedConfig{
		CoursePlatform: opt("COURSE_FEED_PLATFORM", "learnhub"),
		CourseBaseURL:  opt("COURSE_FEED_URL", ""),
		JobBoardURL:    opt("JOB_BOARD_URL", ""),
		Pages:          optInt("FEED_PAGES", 2),
		Workers:        optInt("FEED_WORKERS", 6),
	}

	cfg.Aggregator = AggregatorConfig{
		Workers:        optInt("AGGREGATOR_WORKERS", 8),
		LockTTL:        optDuration("AGGREGATOR_LOCK_TTL", 2*time.Minute),
		SnapshotLimit:  optInt("AGGREGATOR_SNAPSHOT_LIMIT", 5000),
		RecommendLimit: optInt("RECOMMENDATION_LIMIT", 10),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func optDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
