package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Settings holds process settings read from the environment.
type Settings struct {
	Host      string `env:"HOST"       envDefault:"localhost"`
	Port      int    `env:"PORT"       envDefault:"8080"`
	ConfigDir string `env:"CONFIG_DIR" envDefault:"configs"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`

	SessionTTL      time.Duration `env:"SESSION_TTL"              envDefault:"24h"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"`

	NgrokEnabled   bool   `env:"NGROK_ENABLED"`
	NgrokAuthToken string `env:"NGROK_AUTHTOKEN"`
	NgrokDomain    string `env:"NGROK_DOMAIN"`

	// NgrokAuthTokenAlt accepts the underscore spelling.
	NgrokAuthTokenAlt string `env:"NGROK_AUTH_TOKEN"`
}

// LoadSettings loads the given .env files (".env" when none are given),
// ignoring missing ones, then parses Settings from the environment.
// Variables already set in the environment win over .env values.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	return ParseSettings()
}

// ParseSettings parses Settings from the environment only.
func ParseSettings() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if s.NgrokAuthToken == "" {
		s.NgrokAuthToken = s.NgrokAuthTokenAlt
	}
	if _, err := s.Level(); err != nil {
		return nil, fmt.Errorf("parse env: LOG_LEVEL: %w", err)
	}
	return &s, nil
}

// Level parses LogLevel.
func (s *Settings) Level() (log.Level, error) {
	return log.ParseLevel(s.LogLevel)
}

// Addr returns host:port.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
