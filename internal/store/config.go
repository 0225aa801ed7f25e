package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ModeLive   = "LIVE"
	ModeDryRun = "DRY_RUN"
)

const (
	DefaultFuturesStream = "wss://fstream.binance.com"
	DefaultFuturesREST   = "https://fapi.binance.com"
	DefaultSpotREST      = "https://api.binance.com"
	DefaultOpenAI        = "https://api.openai.com/v1"
)

type Config struct {
	Mode      string `yaml:"mode"`
	Endpoints struct {
		FuturesStream string `yaml:"futures_stream"`
		FuturesREST   string `yaml:"futures_rest"`
		SpotREST      string `yaml:"spot_rest"`
		OpenAI        string `yaml:"openai"`
	} `yaml:"endpoints"`
	API struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"api"`
	Extensions struct {
		SerializeChains       bool `yaml:"serialize_chains"`
		Reconnect             bool `yaml:"reconnect"`
		ReconnectDelaySeconds int  `yaml:"reconnect_delay_seconds"`
	} `yaml:"extensions"`

	// Credentials never come from the yaml file.
	Credentials Credentials `yaml:"-"`
}

type Credentials struct {
	BinanceAPIKey    string
	BinanceAPISecret string
	OpenAIAPIKey     string
}

// CredentialsFromEnv reads the two credential pairs.
func CredentialsFromEnv() Credentials {
	return Credentials{
		BinanceAPIKey:    os.Getenv("BINANCE_API_KEY"),
		BinanceAPISecret: os.Getenv("BINANCE_API_SECRET"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
	}
}

func (c *Config) ReconnectDelay() time.Duration {
	return time.Duration(c.Extensions.ReconnectDelaySeconds) * time.Second
}

func (c *Config) Validate() error {
	if c.Mode != ModeDryRun && c.Mode != ModeLive {
		return fmt.Errorf("invalid mode '%s': must be 'DRY_RUN' or 'LIVE'", c.Mode)
	}
	if c.Endpoints.FuturesStream == "" || c.Endpoints.FuturesREST == "" || c.Endpoints.SpotREST == "" || c.Endpoints.OpenAI == "" {
		return errors.New("endpoints cannot be empty")
	}
	if c.Extensions.ReconnectDelaySeconds < 0 {
		return fmt.Errorf("extensions.reconnect_delay_seconds must be >= 0, got %d", c.Extensions.ReconnectDelaySeconds)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = ModeLive
	}
	if c.Endpoints.FuturesStream == "" {
		c.Endpoints.FuturesStream = DefaultFuturesStream
	}
	if c.Endpoints.FuturesREST == "" {
		c.Endpoints.FuturesREST = DefaultFuturesREST
	}
	if c.Endpoints.SpotREST == "" {
		c.Endpoints.SpotREST = DefaultSpotREST
	}
	if c.Endpoints.OpenAI == "" {
		c.Endpoints.OpenAI = DefaultOpenAI
	}
	if c.Extensions.ReconnectDelaySeconds == 0 {
		c.Extensions.ReconnectDelaySeconds = 5
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TRADER_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("TRADER_API_ADDR"); v != "" {
		c.API.ListenAddr = v
	}
}

// LoadConfig reads path if it exists, applies defaults and env overrides, and
// attaches credentials from the environment. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	c.applyEnv()
	c.applyDefaults()
	c.Credentials = CredentialsFromEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
