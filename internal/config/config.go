package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"gopkg.in/yaml.v3"
)

const (
	JournalDriverMemory   = "memory"
	JournalDriverPostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string

	LeagueAPIBaseURL               string
	LeaguePlayersURL               string
	LeagueAPITimeout               time.Duration
	LeagueAPIMaxRetries            int
	LeagueAPICircuitEnabled        bool
	LeagueAPICircuitFailureCount   int
	LeagueAPICircuitOpenTimeout    time.Duration
	LeagueAPICircuitHalfOpenMaxReq int

	SnapshotRefreshInterval time.Duration
	PlayersCacheTTL         time.Duration
	Profile                 league.Profile
	ProfilePath             string

	AdminPasswordHash string
	AdminPassword     string
	AdminSessionTTL   time.Duration

	JournalDriver           string
	DBURL                   string
	DBDisablePreparedBinary bool
	JournalRetention        time.Duration
	JournalPruneCron        string

	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	MetricsEnabled             bool
}

func Load() (Config, error) {
	if err := loadEnvFile(getEnv("APP_ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "phl-league-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.ReadTimeout, err = positiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = positiveDuration("APP_WRITE_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}

	if err := loadLeagueAPI(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.SnapshotRefreshInterval, err = positiveDuration("SNAPSHOT_REFRESH_INTERVAL", "1m"); err != nil {
		return Config{}, err
	}
	if cfg.PlayersCacheTTL, err = positiveDuration("PLAYERS_CACHE_TTL", "60s"); err != nil {
		return Config{}, err
	}
	cfg.ProfilePath = strings.TrimSpace(getEnv("LEAGUE_PROFILE_PATH", ""))
	if cfg.Profile, err = LoadProfile(cfg.ProfilePath); err != nil {
		return Config{}, err
	}

	cfg.AdminPasswordHash = strings.TrimSpace(getEnv("ADMIN_PASSWORD_HASH", ""))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")
	if cfg.AdminPasswordHash == "" && strings.TrimSpace(cfg.AdminPassword) == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required")
	}
	if cfg.AdminSessionTTL, err = positiveDuration("ADMIN_SESSION_TTL", "12h"); err != nil {
		return Config{}, err
	}

	if err := loadJournal(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadLeagueAPI(cfg *Config) error {
	var err error

	cfg.LeagueAPIBaseURL = strings.TrimSpace(getEnv("LEAGUE_API_BASE_URL", ""))
	if cfg.LeagueAPIBaseURL == "" {
		return fmt.Errorf("LEAGUE_API_BASE_URL is required")
	}
	cfg.LeaguePlayersURL = strings.TrimSpace(getEnv("LEAGUE_PLAYERS_URL", ""))
	if cfg.LeaguePlayersURL == "" {
		return fmt.Errorf("LEAGUE_PLAYERS_URL is required")
	}
	if cfg.LeagueAPITimeout, err = positiveDuration("LEAGUE_API_TIMEOUT", "10s"); err != nil {
		return err
	}

	cfg.LeagueAPIMaxRetries, err = getEnvAsInt("LEAGUE_API_MAX_RETRIES", 0)
	if err != nil {
		return fmt.Errorf("parse LEAGUE_API_MAX_RETRIES: %w", err)
	}
	if cfg.LeagueAPIMaxRetries < 0 {
		return fmt.Errorf("LEAGUE_API_MAX_RETRIES must be >= 0")
	}

	cfg.LeagueAPICircuitEnabled, err = strconv.ParseBool(getEnv("LEAGUE_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse LEAGUE_API_CIRCUIT_ENABLED: %w", err)
	}
	cfg.LeagueAPICircuitFailureCount, err = getEnvAsInt("LEAGUE_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return fmt.Errorf("parse LEAGUE_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.LeagueAPICircuitFailureCount < 1 {
		return fmt.Errorf("LEAGUE_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.LeagueAPICircuitOpenTimeout, err = positiveDuration("LEAGUE_API_CIRCUIT_OPEN_TIMEOUT", "15s"); err != nil {
		return err
	}
	cfg.LeagueAPICircuitHalfOpenMaxReq, err = getEnvAsInt("LEAGUE_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return fmt.Errorf("parse LEAGUE_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.LeagueAPICircuitHalfOpenMaxReq < 1 {
		return fmt.Errorf("LEAGUE_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	return nil
}

func loadJournal(cfg *Config) error {
	var err error

	cfg.JournalDriver = strings.ToLower(strings.TrimSpace(getEnv("JOURNAL_DRIVER", JournalDriverMemory)))
	switch cfg.JournalDriver {
	case JournalDriverMemory, JournalDriverPostgres:
	default:
		return fmt.Errorf("invalid JOURNAL_DRIVER %q: valid values are %s, %s", cfg.JournalDriver, JournalDriverMemory, JournalDriverPostgres)
	}

	cfg.DBURL = strings.TrimSpace(getEnv("DB_URL", ""))
	if cfg.JournalDriver == JournalDriverPostgres && cfg.DBURL == "" {
		return fmt.Errorf("DB_URL is required when JOURNAL_DRIVER=postgres")
	}
	cfg.DBDisablePreparedBinary, err = strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	// zero disables pruning
	cfg.JournalRetention, err = time.ParseDuration(getEnv("JOURNAL_RETENTION", "720h"))
	if err != nil {
		return fmt.Errorf("parse JOURNAL_RETENTION: %w", err)
	}
	if cfg.JournalRetention < 0 {
		return fmt.Errorf("JOURNAL_RETENTION must be >= 0")
	}
	cfg.JournalPruneCron = strings.TrimSpace(getEnv("JOURNAL_PRUNE_CRON", "0 4 * * *"))
	if len(strings.Fields(cfg.JournalPruneCron)) != 5 {
		return fmt.Errorf("JOURNAL_PRUNE_CRON must have 5 fields, got %q", cfg.JournalPruneCron)
	}

	return nil
}

func loadObservability(cfg *Config) error {
	var err error

	cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	if cfg.PyroscopeUploadRate, err = positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return err
	}

	cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	cfg.PprofAddr = strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	return nil
}

// LoadProfile reads the league layout from YAML. An empty path returns the built-in profile.
func LoadProfile(path string) (league.Profile, error) {
	if strings.TrimSpace(path) == "" {
		return league.DefaultProfile(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return league.Profile{}, fmt.Errorf("read LEAGUE_PROFILE_PATH: %w", err)
	}

	var profile league.Profile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return league.Profile{}, fmt.Errorf("parse league profile %s: %w", path, err)
	}
	if profile.LeaderboardSize == 0 {
		profile.LeaderboardSize = league.DefaultLeaderboardSize
	}
	if err := profile.Validate(); err != nil {
		return league.Profile{}, fmt.Errorf("invalid league profile %s: %w", path, err)
	}
	return profile, nil
}

// loadEnvFile never overrides variables already present in the environment.
func loadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
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

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
