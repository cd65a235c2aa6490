// Package config loads the YAML configuration cmd/bufpoolctl runs
// with: one YAML file unmarshaled into a mapstructure-tagged struct
// via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the on-disk shape of a bufpoolctl run.
type Config struct {
	Storage struct {
		// PageFile is the path to the page file the buffer pool
		// caches. bufpoolctl creates it empty if it does not exist.
		PageFile string `mapstructure:"page_file"`
		// Frames is the fixed number of frames in the pool.
		Frames int `mapstructure:"frames"`
		// Strategy is one of "fifo", "lru", "clock".
		Strategy string `mapstructure:"strategy"`
	} `mapstructure:"storage"`
	Log struct {
		// Level is one of zap's level names ("debug", "info",
		// "warn", "error"). Defaults to "info" when empty.
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Load reads and unmarshals the YAML config file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Storage.Frames <= 0 {
		return nil, fmt.Errorf("config: storage.frames must be positive, got %d", cfg.Storage.Frames)
	}
	if cfg.Storage.PageFile == "" {
		return nil, fmt.Errorf("config: storage.page_file is required")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return &cfg, nil
}
