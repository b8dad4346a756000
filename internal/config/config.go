// Package config reads kilomon's operational settings from the environment.
//
// Monitor behaviour (refresh interval, debounce window, key bindings) is fixed
// at build time; only where diagnostics go can be changed at runtime:
//
//	KILOMON_LOG_FILE   path of a JSON log file (unset: no logging)
//	KILOMON_LOG_LEVEL  DEBUG, INFO, WARN or ERROR (default INFO)
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable kilomon reads.
const EnvPrefix = "KILOMON"

// Config holds the runtime settings.
type Config struct {
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the settings used when nothing is set.
func Default() Config {
	return Config{
		LogFile:  "",
		LogLevel: "INFO",
	}
}

// SetDefaults registers the default values with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads the settings from the environment.
func Load() (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToUpper(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}
