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
	App      AppConfig
	Log      LogConfig
	Cache    CacheConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type CacheConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// CatalogSource selects where reference tables are read from at startup.
type CatalogSource string

const (
	CatalogSourceStatic   CatalogSource = "static"
	CatalogSourcePostgres CatalogSource = "postgres"
)

type CatalogConfig struct {
	Source CatalogSource
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

const (
	defaultRedisHost = "localhost"
	defaultRedisPort = "6379"
	defaultCacheTTL  = 600 * time.Second
	defaultSSLMode   = "disable"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing, invalid []string
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
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optBool := func(key string, def bool) bool {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Log = LogConfig{
		JSON:  optBool("LOG_JSON", false),
		Debug: optBool("LOG_DEBUG", false),
	}

	ttl := time.Duration(optInt("REDIS_TTL", 0)) * time.Second
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	cfg.Cache = CacheConfig{
		Enabled:  optBool("CACHE_ENABLED", true),
		Host:     optDefault("REDIS_HOST", defaultRedisHost),
		Port:     optDefault("REDIS_PORT", defaultRedisPort),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      ttl,
	}

	source := CatalogSource(strings.ToLower(optDefault("CATALOG_SOURCE", string(CatalogSourceStatic))))
	switch source {
	case CatalogSourceStatic, CatalogSourcePostgres:
	default:
		invalid = append(invalid, "CATALOG_SOURCE")
	}
	cfg.Catalog = CatalogConfig{Source: source}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      optDefault("DB_SSL_MODE", defaultSSLMode),
		ConnectTimeout: time.Duration(optInt("DB_CONNECT_TIMEOUT", 0)) * time.Second,
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
	}

	if source == CatalogSourcePostgres {
		for _, kv := range [][2]string{
			{"DB_HOST", cfg.Database.DBHost},
			{"DB_PORT", cfg.Database.DBPort},
			{"DB_NAME", cfg.Database.DBName},
			{"DB_USER", cfg.Database.DBUser},
		} {
			if kv[1] == "" {
				missing = append(missing, kv[0])
			}
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// LoadDatabase reads only the DB_* keys. The CLI uses it for migrate and seed,
// which need no HTTP settings.
func LoadDatabase() (DatabaseConfig, error) {
	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     req("DB_PORT"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBSSLMode:  strings.TrimSpace(os.Getenv("DB_SSL_MODE")),
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = defaultSSLMode
	}

	if len(missing) > 0 {
		return DatabaseConfig{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return cfg, nil
}
