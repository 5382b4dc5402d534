package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	DB struct {
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	Lookup struct {
		BaseURL        string `envconfig:"LOOKUP_BASE_URL"`
		TrackingEmail  string `envconfig:"LOOKUP_TRACKING_EMAIL"`
		TrackingURL    string `envconfig:"LOOKUP_TRACKING_URL"`
		TimeoutSeconds int    `envconfig:"LOOKUP_TIMEOUT_SECONDS"`
	}
	DynamoDB struct {
		Region         string `envconfig:"DDB_REGION"`
		Endpoint       string `envconfig:"DDB_ENDPOINT"`
		AccessKey      string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey      string `envconfig:"DDB_SECRET_KEY"`
		SessionToken   string `envconfig:"DDB_SESSION_TOKEN"`
		AreaCodesTable string `envconfig:"DDB_AREA_CODES_TABLE"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
