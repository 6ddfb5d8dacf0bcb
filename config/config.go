package config

import (
	"github.com/spf13/viper"

	"github.com/moyu-x/organized-file/internal"
)

type Config struct {
	Inspector struct {
		Workers int
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.organized-file")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/organized-file")

	viper.SetDefault("inspector.workers", internal.DefaultWorkers)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
