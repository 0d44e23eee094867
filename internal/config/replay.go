package config

import "github.com/caarlos0/env/v11"

type ReplayConfig struct {
	InputFile     string `env:"INPUT_FILE" envDefault:"/data/transactions.txt"`
	OutputFile    string `env:"OUTPUT_FILE" envDefault:"/data/results.txt"`
	ExportJournal bool   `env:"EXPORT_JOURNAL" envDefault:"false"`
}

func LoadReplay() (ReplayConfig, error) {
	var cfg ReplayConfig
	err := env.Parse(&cfg)
	return cfg, err
}
