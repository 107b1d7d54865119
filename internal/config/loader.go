package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load builds the protocol configuration from, in priority order:
// built-in defaults, an optional TOML config file, and XRPLPREP_*
// environment variables.
func Load(configPath string) (ProtocolConfig, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return ProtocolConfig{}, fmt.Errorf("config file does not exist: %s", configPath)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return ProtocolConfig{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("XRPLPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg ProtocolConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return ProtocolConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return ProtocolConfig{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
