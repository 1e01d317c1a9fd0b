package server

import (
	"errors"
	"fmt"

	"github.com/goto/salt/config"

	"github.com/humanika/backoffice/internal/store"
	"github.com/humanika/backoffice/jobs"
)

type Auth struct {
	// HeaderKey carries the authenticated user id, set by the gateway in
	// front of this service.
	HeaderKey string `mapstructure:"header_key" default:"X-User-Id"`
}

type Config struct {
	Port     int                    `mapstructure:"port" default:"8080"`
	LogLevel string                 `mapstructure:"log_level" default:"info"`
	DB       store.Config           `mapstructure:"db"`
	Auth     Auth                   `mapstructure:"auth"`
	Jobs     map[jobs.Type]jobs.Job `mapstructure:"jobs"`
}

func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := config.NewLoader(config.WithFile(configFile))

	if err := loader.Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			fmt.Println(err)
			return cfg, nil
		}
		return Config{}, err
	}

	return cfg, nil
}
