package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	CatalogFile   string        `mapstructure:"catalog_file"`
	CatalogSource string        `mapstructure:"catalog_source"` // "file" or "postgres"
	DatabaseURL   string        `mapstructure:"database_url"`
	Seed          int64         `mapstructure:"seed"` // 0 means time-seeded
	Draws         int           `mapstructure:"draws"`
	Rerolls       int           `mapstructure:"rerolls"`
	SimDelay      time.Duration `mapstructure:"sim_delay"` // pause between simulated draws
	OutputFormat  string        `mapstructure:"output_format"`
	OutputPath    string        `mapstructure:"output_path"`
	OutputFolder  string        `mapstructure:"output_folder"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("catalog_file", "examples/catalog.csv")
	viper.SetDefault("catalog_source", "file")
	viper.SetDefault("draws", 1000)
	viper.SetDefault("output_format", "console")
	viper.SetDefault("output_folder", "kondate_output")

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
