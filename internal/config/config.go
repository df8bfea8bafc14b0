package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`
	Port       int  `env:"PORT" envDefault:"9090"`

	Secret           string `env:"SECRET,required"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqAccountEventsExchange string `env:"RABBITMQ_ACCOUNT_EVENTS_EXCHANGE" envDefault:"account-events"`
	RabbitmqAccountCreatedQueue   string `env:"RABBITMQ_ACCOUNT_CREATED_QUEUE" envDefault:"account-created"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	AwsRegion               string `env:"AWS_REGION,required"`
	AwsAccessKey            string `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey            string `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender          string `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailWelcomeTemplate string `env:"AWS_EMAIL_WELCOME_TEMPLATE,required"`

	SignUpRateLimitPerHour uint16 `env:"SIGN_UP_RATE_LIMIT_PER_HOUR" envDefault:"30"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return config, nil
}
