package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, read once at startup. The three
// backend base URLs default to the local-development ports of the users,
// activities and search services.
type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StateFile is where the persisted session pair lives.
	StateFile string `env:"STATE_FILE, default=.sporthub/session.json"`

	UsersAPIURL      string `env:"USERS_API_URL,      default=http://localhost:8081"`
	ActivitiesAPIURL string `env:"ACTIVITIES_API_URL, default=http://localhost:8082"`
	SearchAPIURL     string `env:"SEARCH_API_URL,     default=http://localhost:8083"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
