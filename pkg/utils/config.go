package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type AppConfig struct {
	HTTPAddr string
	GRPCAddr string

	DBPath      string // sqlite file, used when DatabaseURL is empty
	DatabaseURL string // postgres DSN

	UpstreamBase      string
	SiteBase          string // origin serving first-party uploads
	FetchTimeout      time.Duration
	AggregateTimeout  time.Duration
	MaxPages          int
	MaxProducts       int
	UpstreamRPS       float64
	SourceConcurrency int

	LogLevel  string
	LogFormat string
}

// LoadEnvFiles loads .env from the working directory and its parent.
// Missing files are fine.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
}

func LoadAppConfig() AppConfig {
	LoadEnvFiles()

	return AppConfig{
		HTTPAddr:          envString("TUNINGHUB_HTTP_ADDR", ":8080"),
		GRPCAddr:          envString("TUNINGHUB_GRPC_ADDR", ":9090"),
		DBPath:            envString("TUNINGHUB_DB_PATH", defaultDBPath()),
		DatabaseURL:       envString("TUNINGHUB_DATABASE_URL", ""),
		UpstreamBase:      strings.TrimRight(envString("TUNINGHUB_UPSTREAM_BASE", "https://www.drstuning.com"), "/"),
		SiteBase:          strings.TrimRight(envString("TUNINGHUB_SITE_BASE", "http://localhost:8080"), "/"),
		FetchTimeout:      envDuration("TUNINGHUB_FETCH_TIMEOUT", 10*time.Second),
		AggregateTimeout:  envDuration("TUNINGHUB_AGGREGATE_TIMEOUT", 60*time.Second),
		MaxPages:          envInt("TUNINGHUB_MAX_PAGES", 100),
		MaxProducts:       envInt("TUNINGHUB_MAX_PRODUCTS", 100),
		UpstreamRPS:       envFloat("TUNINGHUB_UPSTREAM_RPS", 2),
		SourceConcurrency: envInt("TUNINGHUB_SOURCE_CONCURRENCY", 4),
		LogLevel:          envString("TUNINGHUB_LOG_LEVEL", "info"),
		LogFormat:         envString("TUNINGHUB_LOG_FORMAT", "text"),
	}
}

// SetupLogging applies level and format to the global logrus logger.
func SetupLogging(cfg AppConfig) {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("invalid log level %q, using info", cfg.LogLevel)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.EqualFold(cfg.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".tuninghub", "data.db")
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Warnf("invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		log.Warnf("invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warnf("invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return d
}
