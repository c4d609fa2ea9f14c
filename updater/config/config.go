package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type StoreConfig struct {
	MetadataURL string        `yaml:"metadata_url" env:"CLICK_METADATA_URL" env-default:"https://search.apps.ubuntu.com/api/v1/click-metadata"`
	TokenRate   float64       `yaml:"token_rate" env:"CLICK_TOKEN_RATE" env-default:"10"`
	Timeout     time.Duration `yaml:"timeout" env:"CLICK_STORE_TIMEOUT" env-default:"30s"`
}

type ManifestConfig struct {
	Command string        `yaml:"command" env:"CLICK_COMMAND" env-default:"click"`
	Timeout time.Duration `yaml:"timeout" env:"CLICK_MANIFEST_TIMEOUT" env-default:"1m"`
}

type PlatformConfig struct {
	Architecture  string `yaml:"architecture" env:"CLICK_ARCHITECTURE"`
	FrameworksDir string `yaml:"frameworks_dir" env:"CLICK_FRAMEWORKS_DIR" env-default:"/usr/share/click/frameworks"`
}

type SSOConfig struct {
	CredentialsFile string        `yaml:"credentials_file" env:"SSO_CREDENTIALS_FILE" env-default:"credentials.yaml"`
	SignatureTTL    time.Duration `yaml:"signature_ttl" env:"SSO_SIGNATURE_TTL" env-default:"5m"`
}

type CheckConfig struct {
	Auto   bool          `yaml:"auto" env:"CHECK_AUTO" env-default:"true"`
	Period time.Duration `yaml:"period" env:"CHECK_PERIOD" env-default:"1h"`
}

type BrokerConfig struct {
	Address string `yaml:"address" env:"BROKER_ADDRESS"`
	Subject string `yaml:"subject" env:"BROKER_SUBJECT" env-default:"click.updater.events"`
}

type ApiConfig struct {
	Address     string        `yaml:"address" env:"API_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"5s"`
	Rate        int           `yaml:"rate" env:"API_RATE" env-default:"100"`
	Concurrency int           `yaml:"concurrency" env:"API_CONCURRENCY" env-default:"4"`
	RetryAfter  time.Duration `yaml:"retry_after" env:"API_RETRY_AFTER" env-default:"5s"`
}

type AuthConfig struct {
	AdminUser     string        `yaml:"admin_user" env:"ADMIN_USER" env-default:"admin"`
	AdminPassword string        `yaml:"admin_password" env:"ADMIN_PASSWORD" env-default:"password"`
	JwtSecret     string        `yaml:"jwt_secret" env:"ADMIN_JWT_KEY" env-default:"your-secret-key"`
	TokenTtl      time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"10m"`
}

type Config struct {
	LogLevel          string `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	LogFormat         string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	DBAddress         string `yaml:"db_address" env:"DB_ADDRESS" env-default:"updates.db"`
	IgnoreCredentials bool   `yaml:"ignore_credentials" env:"IGNORE_CREDENTIALS" env-default:"false"`

	Store     StoreConfig    `yaml:"store"`
	Manifest  ManifestConfig `yaml:"manifest"`
	Platform  PlatformConfig `yaml:"platform"`
	SSO       SSOConfig      `yaml:"sso"`
	Check     CheckConfig    `yaml:"check"`
	Broker    BrokerConfig   `yaml:"broker"`
	ApiConfig ApiConfig      `yaml:"api"`
	Auth      AuthConfig     `yaml:"auth"`
}

func MustLoad(configPath string, cfg *Config) {
	if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}
}
