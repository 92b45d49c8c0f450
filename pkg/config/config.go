package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
)

type Config struct {
	ServerPort     string `envconfig:"SERVER_PORT" default:"8080"`
	Environment    string `envconfig:"ENVIRONMENT" default:"development"`
	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"mongo"`

	MongoURI      string `envconfig:"MONGODB_URI"`
	MongoDatabase string `envconfig:"MONGODB_DATABASE" default:"blooddonor"`

	FirebaseProject            string `envconfig:"FIREBASE_PROJECT_ID"`
	FirebaseServiceAccountPath string `envconfig:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	FirebaseServiceAccountJSON string `envconfig:"FIREBASE_SERVICE_ACCOUNT_JSON"`

	JWTSecret string `envconfig:"JWT_SECRET"`

	AvatarBaseURL   string `envconfig:"AVATAR_BASE_URL" default:"https://avatar.iran.liara.run/public/boy"`
	GraphiQLEnabled bool   `envconfig:"GRAPHIQL_ENABLED" default:"true"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("set JWT_SECRET")
	}

	switch c.DatabaseDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("set MONGODB_URI")
		}
	case DriverFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("set FIREBASE_PROJECT_ID")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
