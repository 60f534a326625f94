package config

import "time"

// Config is the service configuration. Every key can be overridden by an
// environment variable with dots replaced by underscores (store.driver ->
// STORE_DRIVER).
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Store    StoreConfig    `mapstructure:"store"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	GenAI    GenAIConfig    `mapstructure:"genai"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Progress ProgressConfig `mapstructure:"progress"`
	Currency CurrencyConfig `mapstructure:"currency"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
	// EnrichWait bounds how long a detail request waits for a generated description.
	EnrichWait time.Duration `mapstructure:"enrich_wait"`
}

// Store drivers.
const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

type DynamoDBConfig struct {
	Region             string `mapstructure:"region"`
	Endpoint           string `mapstructure:"endpoint"`
	AccessKeyID        string `mapstructure:"access_key_id"`
	SecretAccessKey    string `mapstructure:"secret_access_key"`
	CountriesTable     string `mapstructure:"countries_table"`
	OpportunitiesTable string `mapstructure:"opportunities_table"`
	ProfilesTable      string `mapstructure:"profiles_table"`
	InvestmentsTable   string `mapstructure:"investments_table"`
}

type PostgresConfig struct {
	URL             string        `mapstructure:"url"`
	MaxConns        int           `mapstructure:"max_conns"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

type RedisConfig struct {
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Enabled is false when no address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type GenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
	TestPayerEmail         string `mapstructure:"test_payer_email"`
	Mock                   bool   `mapstructure:"mock"`
}

// Progress derivation modes.
const (
	ProgressModeReseed = "reseed"
	ProgressModeStable = "stable"
)

type ProgressConfig struct {
	Mode      string        `mapstructure:"mode"`
	Seed      uint64        `mapstructure:"seed"`
	CacheSize int           `mapstructure:"cache_size"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

type CurrencyConfig struct {
	Locale string `mapstructure:"locale"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
