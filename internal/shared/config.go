package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SteamBase   string
	AppIDs      []int64
	Workers     int
	MaxReviews  int
	PageSize    int
	Delay       time.Duration
	Timeout     time.Duration
	CacheTTL    time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/steam?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		SteamBase:   env("STEAM_BASE_URL", "https://store.steampowered.com"),
		AppIDs:      appIDs(env("STEAM_APP_IDS", "")),
		Workers:     atoi("INGEST_WORKERS", 4),
		MaxReviews:  atoi("INGEST_MAX_REVIEWS", 1000),
		PageSize:    atoi("INGEST_PAGE_SIZE", 100),
		Delay:       time.Duration(atoi("INGEST_DELAY_MS", 250)) * time.Millisecond,
		Timeout:     time.Duration(atoi("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if len(c.AppIDs) == 0 {
		log.Warn().Msg("STEAM_APP_IDS is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// appIDs parses a comma-separated id list, skipping anything non-numeric.
func appIDs(s string) []int64 {
	var out []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil && id > 0 {
			out = append(out, id)
		}
	}
	return out
}
