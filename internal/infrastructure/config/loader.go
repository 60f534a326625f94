package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml (optional), a .env file (optional) and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper applies defaults, env bindings and validation to v.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalize(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "nextribe-api")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.port", 8080)
	v.SetDefault("http.enrich_wait", 3*time.Second)

	v.SetDefault("store.driver", StoreDynamoDB)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.countries_table", "countries")
	v.SetDefault("dynamodb.opportunities_table", "opportunities")
	v.SetDefault("dynamodb.profiles_table", "profiles")
	v.SetDefault("dynamodb.investments_table", "investments")

	v.SetDefault("postgres.url", "")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.max_conn_idle_time", 5*time.Minute)
	v.SetDefault("postgres.max_conn_lifetime", time.Hour)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 24*time.Hour)

	v.SetDefault("genai.api_key", "")
	v.SetDefault("genai.model", "gemini-2.5-flash")
	v.SetDefault("genai.timeout", 10*time.Second)

	v.SetDefault("payments.mercadopago_access_token", "")
	v.SetDefault("payments.test_payer_email", "")
	v.SetDefault("payments.mock", false)

	v.SetDefault("progress.mode", ProgressModeReseed)
	v.SetDefault("progress.seed", 0)
	v.SetDefault("progress.cache_size", 512)
	v.SetDefault("progress.cache_ttl", 30*time.Minute)

	v.SetDefault("currency.locale", "en-US")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// bindLegacyEnv keeps the variable names used by existing deployments working.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"http.port":                         {"HTTP_PORT", "PORT"},
		"dynamodb.region":                   {"DYNAMODB_REGION", "AWS_REGION"},
		"dynamodb.endpoint":                 {"DYNAMODB_ENDPOINT"},
		"dynamodb.access_key_id":            {"DYNAMODB_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"},
		"dynamodb.secret_access_key":        {"DYNAMODB_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"},
		"dynamodb.countries_table":          {"COUNTRIES_TABLE"},
		"dynamodb.opportunities_table":      {"OPPORTUNITIES_TABLE"},
		"dynamodb.profiles_table":           {"PROFILES_TABLE"},
		"dynamodb.investments_table":        {"INVESTMENTS_TABLE"},
		"postgres.url":                      {"POSTGRES_URL", "DATABASE_URL"},
		"genai.api_key":                     {"GENAI_API_KEY", "GEMINI_API_KEY", "API_KEY"},
		"payments.mercadopago_access_token": {"PAYMENTS_MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_ACCESS_TOKEN"},
		"payments.test_payer_email":         {"PAYMENTS_TEST_PAYER_EMAIL", "MERCADOPAGO_TEST_PAYER_EMAIL"},
		"payments.mock":                     {"PAYMENTS_MOCK", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

func normalize(cfg *Config) {
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	cfg.Progress.Mode = strings.ToLower(strings.TrimSpace(cfg.Progress.Mode))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
}

func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreDynamoDB, StoreMemory:
	case StorePostgres:
		if cfg.Postgres.URL == "" {
			return errors.New("postgres.url is required when store.driver is postgres")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", cfg.Store.Driver)
	}

	switch cfg.Progress.Mode {
	case ProgressModeReseed, ProgressModeStable:
	default:
		return fmt.Errorf("unknown progress.mode %q", cfg.Progress.Mode)
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port %d", cfg.HTTP.Port)
	}
	if cfg.Progress.CacheSize <= 0 {
		return fmt.Errorf("invalid progress.cache_size %d", cfg.Progress.CacheSize)
	}
	return nil
}
