package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"devblog/internal/infrastructure/database"
	"devblog/internal/infrastructure/minio"
	"devblog/pkg/logger"
)

const defaultTokenExpiryHours = 168 // 7 days

// Config represents the configs used by services on system.
type Config struct {
	Environment   string               `yaml:"environment"`
	Default       DefaultConfig        `yaml:"default"`
	DBConfig      database.Config      `yaml:"db_config"`
	MinIOClient   minio.ClientConfig   `yaml:"minio_client"`
	MinIOUploader minio.UploaderConfig `yaml:"minio_uploader"`
	MinIORemover  minio.RemoverConfig  `yaml:"minio_remover"`
	Token         TokenConfig          `yaml:"token"`
	Logger        logger.Config        `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

// TokenConfig holds the signing material for issued tokens. The secret
// comes from the environment only, never from the yaml file.
type TokenConfig struct {
	Secret      string `yaml:"-"`
	ExpiryHours int    `yaml:"expiry_in_hours"`
}

// Expiry returns the token lifetime, defaulting to one week.
func (t TokenConfig) Expiry() time.Duration {
	hours := t.ExpiryHours
	if hours <= 0 {
		hours = defaultTokenExpiryHours
	}

	return time.Duration(hours) * time.Hour
}

// IsProd reports whether the process runs with the production profile,
// which hides internal error detail from API responses.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	// A .env file is a development convenience; in deployment the
	// variables arrive through the real environment.
	_ = godotenv.Load()

	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Token.Secret = os.Getenv("JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Token.Secret == "" {
		return Error{
			reason: "JWT_SECRET environment variable is not set",
		}
	}

	return nil
}
