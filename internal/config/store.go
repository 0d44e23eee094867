package config

import "github.com/caarlos0/env/v11"

// StoreConfig is only consulted when journal export is enabled.
type StoreConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN"`
}

func LoadStore() (StoreConfig, error) {
	var cfg StoreConfig
	err := env.Parse(&cfg)
	return cfg, err
}
