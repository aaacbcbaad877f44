package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the VoterHub server and its dependencies.
type Config struct {
	// Listen is the address the VoterHub server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// SessionKey is the key used to encrypt session data.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// LogLevel is the log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Congress holds the configuration for the legislative data API.
	Congress *CongressConfig `yaml:"congress" mapstructure:"congress"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Driver selects the database driver, either "sqlite" or "postgres".
	Driver string `yaml:"driver" mapstructure:"driver"`
	// Path is the directory for the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
	// DSN is the postgres connection string, used when Driver is "postgres".
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

// CongressConfig holds the configuration for the legislative data API.
type CongressConfig struct {
	// URL is the base URL of the legislative data API.
	URL string `yaml:"url" mapstructure:"url"`
	// APIKey is the API key sent with every request.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// Number is the congress number to browse, e.g. 116.
	Number int `yaml:"number" mapstructure:"number"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("VOTERHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.voterhub")
		v.AddConfigPath("/etc/voterhub")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3001")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_max_age", 172800) // 48 hours

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data")
	v.SetDefault("database.dsn", "")

	v.SetDefault("congress.url", "https://api.propublica.org/congress/v1")
	v.SetDefault("congress.api_key", "")
	v.SetDefault("congress.number", 116)
}

func validateConfig(c *Config) error {
	if c.SessionKey == "" {
		return fmt.Errorf("session_key is required")
	}
	if c.Congress == nil || c.Congress.APIKey == "" {
		return fmt.Errorf("congress.api_key is required")
	}
	if c.Database != nil {
		switch c.Database.Driver {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("unknown database driver %q", c.Database.Driver)
		}
		if c.Database.Driver == "postgres" && c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	}
	return nil
}
