package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ApiConfig struct {
	Address string        `yaml:"address" env:"UPDATER_API_ADDRESS" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"UPDATER_API_TIMEOUT" env-default:"10s"`
}

type AuthConfig struct {
	AdminUser     string `yaml:"admin_user" env:"ADMIN_USER" env-default:"admin"`
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD" env-default:"password"`
}

type BrokerConfig struct {
	Address string `yaml:"address" env:"BROKER_ADDRESS" env-default:"nats://localhost:4222"`
	Subject string `yaml:"subject" env:"BROKER_SUBJECT" env-default:"click.updater.events"`
}

type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"ERROR"`

	ApiConfig ApiConfig    `yaml:"api"`
	Auth      AuthConfig   `yaml:"auth"`
	Broker    BrokerConfig `yaml:"broker"`
}

// Load reads configPath when it exists and the environment otherwise.
func Load(configPath string, cfg *Config) error {
	if configPath != "" {
		_, err := os.Stat(configPath)
		if err == nil {
			if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
				return fmt.Errorf("cannot read config %q: %w", configPath, err)
			}
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat config %q: %w", configPath, err)
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("cannot read environment: %w", err)
	}
	return nil
}
