// config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is built once at startup
// and treated as immutable afterwards.
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Zoho      ZohoConfig
	Functions FunctionsConfig
	Session   SessionConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Timeout int    `mapstructure:"timeout"`
}

// RedisConfig holds connection settings for the integration record store.
type RedisConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Password  string   `mapstructure:"password"`
	DB        int      `mapstructure:"db"`
	KeyPrefix string   `mapstructure:"key_prefix"`
	EnableTLS bool     `mapstructure:"enable_tls"`
}

// ZohoConfig holds the OAuth client settings for Zoho Books.
// The client secret never lives in this process; token exchange and refresh
// happen inside the remote function boundary.
type ZohoConfig struct {
	ClientID    string   `mapstructure:"client_id"`
	RedirectURI string   `mapstructure:"redirect_uri"`
	Scopes      []string `mapstructure:"scopes"`
	AccountsURL string   `mapstructure:"accounts_url"`
}

// FunctionsConfig holds the remote function boundary settings.
type FunctionsConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ServiceKey string `mapstructure:"service_key"`
}

// SessionConfig holds cookie session settings.
type SessionConfig struct {
	Secret string `mapstructure:"secret"`
}

// Load reads configuration from file and env. Env var overrides use prefix ZBSERVER_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.timeout", 15)
	v.SetDefault("redis.addresses", []string{"localhost:6379"})
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "zbserver")
	v.SetDefault("redis.enable_tls", false)
	v.SetDefault("zoho.accounts_url", "https://accounts.zoho.com/oauth/v2/auth")
	v.SetDefault("zoho.scopes", []string{"ZohoBooks.fullaccess.all"})
	v.SetDefault("functions.base_url", "")
	v.SetDefault("functions.service_key", "")
	v.SetDefault("session.secret", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/zbserver")

	v.SetEnvPrefix("ZBSERVER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional; env vars alone are a valid configuration
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	if c.Functions.BaseURL == "" {
		return fmt.Errorf("functions.base_url is required")
	}
	if len(c.Redis.Addresses) == 0 {
		return fmt.Errorf("redis.addresses must not be empty")
	}
	return nil
}
