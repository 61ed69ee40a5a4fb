package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App AppConfig
}

type AppConfig struct {
	Port        string `envconfig:"SERVITEC_APP_PORT" default:"8080"`
	ServiceName string `envconfig:"SERVITEC_SERVICE_NAME" default:"servitec"`
	LogLevel    string `envconfig:"SERVITEC_LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
