package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// FileEnvKey names the optional YAML file layered between defaults and the
// process environment.
const FileEnvKey = "APP_CONFIG_FILE"

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	StorageDriver           string
	DBURL                   string
	DBDisablePreparedBinary bool
	RepositoryCacheEnabled  bool
	RepositoryCacheTTL      time.Duration

	FootballAPIURL          string
	FootballAPIKey          string
	FootballAPITimeout      time.Duration
	FootballAPIMaxRetries   int
	FootballCircuit         resilience.CircuitBreakerConfig
	FootballCacheTTL        time.Duration
	FootballCacheMaxEntries int
	MajorLeagueIDs          []int64
	FeaturedDays            int
	FeaturedLimit           int
	RangeMaxDays            int
	FetchConcurrency        int
	DisplayTimezone         *time.Location
	TopScorersLimit         int

	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	JWTIssuer   string
	CORSOrigins []string

	MetricsEnabled bool

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func (c Config) IsDev() bool {
	return c.AppEnv == EnvDev
}

var envPrefixes = []string{
	"APP_", "STORAGE_", "DB_", "REPOSITORY_", "FOOTBALL_", "TOPSCORERS_", "AUTH_",
	"CORS_", "METRICS_", "PPROF_", "UPTRACE_", "PYROSCOPE_", "OTEL_",
}

// Load layers built-in defaults, the optional YAML file named by
// APP_CONFIG_FILE and the process environment, lowest first.
func Load() (Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv(FileEnvKey)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("", ".", func(key string) string {
		for _, prefix := range envPrefixes {
			if strings.HasPrefix(key, prefix) {
				return key
			}
		}
		return ""
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	return parse(&reader{k: k})
}

func parse(r *reader) (Config, error) {
	appEnv, err := parseAppEnv(r.str("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    r.str("APP_SERVICE_NAME", "football-portal-api"),
		ServiceVersion: r.str("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       r.str("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    r.duration("APP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:   r.duration("APP_WRITE_TIMEOUT", 15*time.Second),
		LogLevel:       logging.ParseLevel(r.str("APP_LOG_LEVEL", "info")),

		StorageDriver:           strings.ToLower(r.str("STORAGE_DRIVER", StorageMemory)),
		DBURL:                   r.str("DB_URL", ""),
		DBDisablePreparedBinary: r.boolean("DB_DISABLE_PREPARED_BINARY_RESULT", false),
		RepositoryCacheEnabled:  r.boolean("REPOSITORY_CACHE_ENABLED", true),
		RepositoryCacheTTL:      r.duration("REPOSITORY_CACHE_TTL", 60*time.Second),

		FootballAPIURL:        strings.TrimRight(r.str("FOOTBALL_API_URL", "https://v3.football.api-sports.io"), "/"),
		FootballAPIKey:        r.str("FOOTBALL_API_KEY", ""),
		FootballAPITimeout:    r.duration("FOOTBALL_API_TIMEOUT", 10*time.Second),
		FootballAPIMaxRetries: r.integer("FOOTBALL_API_MAX_RETRIES", 0),
		FootballCircuit: resilience.CircuitBreakerConfig{
			Enabled:          r.boolean("FOOTBALL_API_CIRCUIT_ENABLED", true),
			FailureThreshold: r.integer("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", 5),
			OpenTimeout:      r.duration("FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT", 30*time.Second),
			HalfOpenMaxReq:   r.integer("FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ", 1),
		},
		FootballCacheTTL:        r.duration("FOOTBALL_CACHE_TTL", 5*time.Minute),
		FootballCacheMaxEntries: r.integer("FOOTBALL_CACHE_MAX_ENTRIES", 2048),
		MajorLeagueIDs:          r.int64List("FOOTBALL_MAJOR_LEAGUES", []int64{39, 140, 135, 78, 61}),
		FeaturedDays:            r.integer("FOOTBALL_FEATURED_DAYS", 4),
		FeaturedLimit:           r.integer("FOOTBALL_FEATURED_LIMIT", 6),
		RangeMaxDays:            r.integer("FOOTBALL_RANGE_MAX_DAYS", 7),
		FetchConcurrency:        r.integer("FOOTBALL_FETCH_CONCURRENCY", 2),
		DisplayTimezone:         r.location("FOOTBALL_DISPLAY_TIMEZONE", "Europe/Madrid"),
		TopScorersLimit:         r.integer("TOPSCORERS_LIMIT", 10),

		JWTSecret:   r.str("AUTH_JWT_SECRET", ""),
		TokenTTL:    r.duration("AUTH_TOKEN_TTL", 24*time.Hour),
		BcryptCost:  r.integer("AUTH_BCRYPT_COST", 10),
		JWTIssuer:   r.str("AUTH_JWT_ISSUER", "football-portal"),
		CORSOrigins: r.list("CORS_ALLOWED_ORIGINS", []string{"*"}),

		MetricsEnabled: r.boolean("METRICS_ENABLED", true),

		PprofEnabled:               r.boolean("PPROF_ENABLED", false),
		PprofAddr:                  r.str("PPROF_ADDR", ":6060"),
		UptraceEnabled:             r.boolean("UPTRACE_ENABLED", false),
		UptraceDSN:                 r.str("UPTRACE_DSN", ""),
		PyroscopeEnabled:           r.boolean("PYROSCOPE_ENABLED", false),
		PyroscopeServerAddress:     r.str("PYROSCOPE_SERVER_ADDRESS", ""),
		PyroscopeAppName:           r.str("PYROSCOPE_APP_NAME", ""),
		PyroscopeAuthToken:         r.str("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     r.str("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: r.str("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:        r.duration("PYROSCOPE_UPLOAD_RATE", 15*time.Second),
	}
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(r.str("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.PyroscopeAppName == "" {
		cfg.PyroscopeAppName = cfg.ServiceName
	}

	if err := r.err(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.HTTPAddr != "", "APP_HTTP_ADDR must not be empty")
	check(c.ReadTimeout > 0, "APP_READ_TIMEOUT must be > 0")
	check(c.WriteTimeout > 0, "APP_WRITE_TIMEOUT must be > 0")
	check(c.StorageDriver == StorageMemory || c.StorageDriver == StoragePostgres,
		"invalid STORAGE_DRIVER %q: valid values are %s, %s", c.StorageDriver, StorageMemory, StoragePostgres)
	check(c.StorageDriver != StoragePostgres || c.DBURL != "", "DB_URL is required when STORAGE_DRIVER=postgres")
	check(!c.RepositoryCacheEnabled || c.RepositoryCacheTTL > 0, "REPOSITORY_CACHE_TTL must be > 0")
	check(c.FootballAPIURL != "", "FOOTBALL_API_URL must not be empty")
	check(c.FootballAPITimeout > 0, "FOOTBALL_API_TIMEOUT must be > 0")
	check(c.FootballAPIMaxRetries >= 0, "FOOTBALL_API_MAX_RETRIES must be >= 0")
	check(c.FootballCircuit.FailureThreshold >= 1, "FOOTBALL_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	check(c.FootballCircuit.OpenTimeout > 0, "FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	check(c.FootballCircuit.HalfOpenMaxReq >= 1, "FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	check(c.FootballCacheTTL > 0, "FOOTBALL_CACHE_TTL must be > 0")
	check(c.FootballCacheMaxEntries >= 0, "FOOTBALL_CACHE_MAX_ENTRIES must be >= 0")
	check(len(c.MajorLeagueIDs) > 0, "FOOTBALL_MAJOR_LEAGUES must list at least one league")
	check(c.FeaturedDays >= 1, "FOOTBALL_FEATURED_DAYS must be >= 1")
	check(c.FeaturedLimit >= 1, "FOOTBALL_FEATURED_LIMIT must be >= 1")
	check(c.RangeMaxDays >= 1, "FOOTBALL_RANGE_MAX_DAYS must be >= 1")
	check(c.FetchConcurrency >= 1, "FOOTBALL_FETCH_CONCURRENCY must be >= 1")
	check(c.TopScorersLimit >= 1, "TOPSCORERS_LIMIT must be >= 1")
	check(c.TokenTTL > 0, "AUTH_TOKEN_TTL must be > 0")
	check(c.AppEnv == EnvDev || c.JWTSecret != "", "AUTH_JWT_SECRET is required when APP_ENV=%s", c.AppEnv)
	check(!c.PprofEnabled || c.PprofAddr != "", "PPROF_ADDR is required when PPROF_ENABLED=true")
	check(!c.UptraceEnabled || c.UptraceDSN != "", "UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	check(!c.PyroscopeEnabled || c.PyroscopeServerAddress != "", "PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	check(!c.PyroscopeEnabled || c.PyroscopeUploadRate > 0, "PYROSCOPE_UPLOAD_RATE must be > 0")

	return errors.Join(errs...)
}

// reader reads flat keys from koanf. Blank values count as unset, and parse
// failures are collected so Load reports all of them at once.
type reader struct {
	k    *koanf.Koanf
	errs []error
}

func (r *reader) raw(key string) string {
	v := r.k.Get(key)
	if v == nil {
		return ""
	}
	if items, ok := v.([]any); ok {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func (r *reader) fail(key string, err error) {
	r.errs = append(r.errs, fmt.Errorf("parse %s: %w", key, err))
}

func (r *reader) err() error {
	return errors.Join(r.errs...)
}

func (r *reader) str(key, fallback string) string {
	if v := r.raw(key); v != "" {
		return v
	}
	return fallback
}

func (r *reader) boolean(key string, fallback bool) bool {
	v := r.raw(key)
	if v == "" {
		return fallback
	}
	out, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return out
}

func (r *reader) integer(key string, fallback int) int {
	v := r.raw(key)
	if v == "" {
		return fallback
	}
	out, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return out
}

func (r *reader) duration(key string, fallback time.Duration) time.Duration {
	v := r.raw(key)
	if v == "" {
		return fallback
	}
	out, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return out
}

func (r *reader) list(key string, fallback []string) []string {
	v := r.raw(key)
	if v == "" {
		return fallback
	}
	return splitCSV(v)
}

func (r *reader) int64List(key string, fallback []int64) []int64 {
	v := r.raw(key)
	if v == "" {
		return fallback
	}
	items := splitCSV(v)
	out := make([]int64, 0, len(items))
	for _, item := range items {
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil || id <= 0 {
			r.fail(key, fmt.Errorf("invalid id %q", item))
			return fallback
		}
		out = append(out, id)
	}
	return out
}

func (r *reader) location(key, fallback string) *time.Location {
	name := r.str(key, fallback)
	loc, err := time.LoadLocation(name)
	if err != nil {
		r.fail(key, err)
		return time.UTC
	}
	return loc
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
