package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds every runtime setting the server needs. Nothing else in the
// codebase reads the environment; the parsed struct is passed down
// explicitly.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	MongoURI    string `env:"MONGODB_URI,required"`
	MongoDBName string `env:"MONGODB_DB" envDefault:"tours"`
	TokenSecret string `env:"TOKEN_SECRET,required"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
