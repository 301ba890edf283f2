package utils

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/viper"

	"marketplace/pkg/secrets"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Hash     HashConfig
	Secret   SecretConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URL     string
	Name    string
	Timeout time.Duration
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// Expiry is the token validity window; zero means tokens never expire.
func (c JWTConfig) Expiry() time.Duration {
	if c.ExpiryHours <= 0 {
		return 0
	}
	return time.Duration(c.ExpiryHours) * time.Hour
}

type HashConfig struct {
	Cost    int
	Workers int
}

type SecretConfig struct {
	URL string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "marketplace")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("MONGO_DB", "marketplace")
	v.SetDefault("MONGO_TIMEOUT_SECONDS", 10)
	v.SetDefault("JWT_EXPIRY_HOURS", 0)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("HASH_WORKERS", runtime.NumCPU())

	// .env is optional, the environment alone is enough
	if _, err := os.Stat(".env"); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	v.AutomaticEnv()

	return configFrom(v), nil
}

func configFrom(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:     v.GetString("MONGO_URL"),
			Name:    v.GetString("MONGO_DB"),
			Timeout: time.Duration(v.GetInt("MONGO_TIMEOUT_SECONDS")) * time.Second,
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_KEY"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		Hash: HashConfig{
			Cost:    v.GetInt("BCRYPT_COST"),
			Workers: v.GetInt("HASH_WORKERS"),
		},
		Secret: SecretConfig{
			URL: v.GetString("SECRET_URL"),
		},
	}
}

// ResolveSecrets overrides JWT_KEY and MONGO_URL with the values held in the
// remote secret at Secret.URL. Without a URL it is a no-op.
func (c *Config) ResolveSecrets(ctx context.Context) error {
	if c.Secret.URL == "" {
		return nil
	}

	values, err := secrets.Load(ctx, c.Secret.URL)
	if err != nil {
		return err
	}

	if key, ok := values["JWT_KEY"]; ok && key != "" {
		c.JWT.Secret = key
	}
	if url, ok := values["MONGO_URL"]; ok && url != "" {
		c.Database.URL = url
	}

	return nil
}

// Validate checks the values the process cannot start without.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("MONGO_URL is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_KEY is required")
	}
	return nil
}
