// Package config loads dataobj settings from defaults, an optional config
// file, DATAOBJ_* environment variables and bound command-line flags.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. DATAOBJ_WORKERS.
const EnvPrefix = "DATAOBJ"

// Keys shared by flags, environment and config files.
const (
	KeyLayout   = "layout"
	KeyWorkers  = "workers"
	KeySkip     = "skip"
	KeyVerbose  = "verbose"
	KeyJSONLogs = "json_logs"
)

// Config holds resolved settings.
type Config struct {
	Layout   string `mapstructure:"layout"`
	Workers  int    `mapstructure:"workers"`
	Skip     string `mapstructure:"skip"`
	Verbose  int    `mapstructure:"verbose"`
	JSONLogs bool   `mapstructure:"json_logs"`
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// SetDefaults configures the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLayout, "compact")
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeySkip, "")
	v.SetDefault(KeyVerbose, 0)
	v.SetDefault(KeyJSONLogs, false)
}

// Load reads configFile into v when it is not empty and decodes the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Newf("workers must be at least 1, got %d", c.Workers)
	}

	if c.Verbose < 0 {
		return errors.Newf("verbose must not be negative, got %d", c.Verbose)
	}

	return nil
}
