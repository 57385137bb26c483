package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that must never fall back silently (payment recipient)
// - default: Values common across all environments (timeouts, TTLs, log format)
// - empty allowed: Optional collaborators (Redis, PostgreSQL, provider keys)
// -----------------------------------------------------------------------------

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"

	MainnetAPIURL = "https://api.mainnet.hiro.so"
	TestnetAPIURL = "https://api.testnet.hiro.so"
)

type Config struct {
	Server   ServerConfig
	Stacks   StacksConfig
	Nonce    NonceConfig
	DB       DBConfig
	Provider ProviderConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
	Env  string `envconfig:"APP_ENV" default:"development"`
}

type StacksConfig struct {
	Network          string        `envconfig:"STACKS_NETWORK" default:"testnet"`
	APIURL           string        `envconfig:"STACKS_API_URL"`
	RecipientAddress string        `envconfig:"PAYMENT_RECIPIENT_ADDRESS" required:"true"`
	LedgerTimeout    time.Duration `envconfig:"LEDGER_TIMEOUT" default:"10s"`
}

type NonceConfig struct {
	RedisURL      string        `envconfig:"REDIS_URL"`
	DialTimeout   time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"2s"`
	TTL           time.Duration `envconfig:"NONCE_TTL" default:"5m"`
	SweepInterval time.Duration `envconfig:"NONCE_SWEEP_INTERVAL" default:"1m"`
}

type DBConfig struct {
	URL string `envconfig:"DATABASE_URL"`
}

type ProviderConfig struct {
	OpenAIAPIKey     string        `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey  string        `envconfig:"ANTHROPIC_API_KEY"`
	OpenAIBaseURL    string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	AnthropicBaseURL string        `envconfig:"ANTHROPIC_BASE_URL" default:"https://api.anthropic.com"`
	Timeout          time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"60s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Payment-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BaseURL returns the Stacks API root for the configured network unless overridden.
func (c StacksConfig) BaseURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	if c.Network == NetworkMainnet {
		return MainnetAPIURL
	}
	return TestnetAPIURL
}

func (c Config) Validate() error {
	switch c.Stacks.Network {
	case NetworkMainnet, NetworkTestnet:
	default:
		return fmt.Errorf("invalid STACKS_NETWORK %q: must be %s or %s", c.Stacks.Network, NetworkMainnet, NetworkTestnet)
	}

	switch c.Server.Env {
	case "development", "production", "test":
	default:
		return fmt.Errorf("invalid APP_ENV %q", c.Server.Env)
	}

	if c.Stacks.RecipientAddress == "" {
		return fmt.Errorf("PAYMENT_RECIPIENT_ADDRESS is required")
	}
	if c.Nonce.TTL <= 0 {
		return fmt.Errorf("NONCE_TTL must be positive")
	}
	if c.Nonce.SweepInterval <= 0 {
		return fmt.Errorf("NONCE_SWEEP_INTERVAL must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
			Env:  "test",
		},
		Stacks: StacksConfig{
			Network:          NetworkTestnet,
			RecipientAddress: "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM",
			LedgerTimeout:    2 * time.Second,
		},
		Nonce: NonceConfig{
			DialTimeout:   time.Second,
			TTL:           5 * time.Minute,
			SweepInterval: time.Minute,
		},
		Provider: ProviderConfig{
			Timeout: 5 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Payment-Signature"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
