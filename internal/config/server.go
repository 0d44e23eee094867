package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr     string `env:"HTTP_ADDR" envDefault:":8080"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	AdminAPIKey  string `env:"ADMIN_API_KEY"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
