package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresNode addresses one database endpoint. Reads and writes may target different replicas.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	// Lifecycle holds the defaults applied by the bid and rental transitions.
	Lifecycle struct {
		ContractDefaultDays       int    `envconfig:"CONTRACT_DEFAULT_DAYS"`
		DefaultRejectionReason    string `envconfig:"DEFAULT_REJECTION_REASON"`
		DefaultCancellationReason string `envconfig:"DEFAULT_CANCELLATION_REASON"`
		DefaultRequestedDays      int    `envconfig:"DEFAULT_REQUESTED_DAYS"`
	} `envconfig:"LIFECYCLE"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		// AccessSecret verifies access tokens minted by the identity service.
		AccessSecret string `envconfig:"ACCESS_SECRET"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Pool           struct {
				MaxOpen            int `envconfig:"MAX_OPEN"`
				MaxIdle            int `envconfig:"MAX_IDLE"`
				MaxLifetimeMinutes int `envconfig:"MAX_LIFETIME_MINUTES"`
			} `envconfig:"POOL"`
			Read  PostgresNode `envconfig:"READ"`
			Write PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			Notifications string `envconfig:"NOTIFICATIONS"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	Reconciler struct {
		Schedule   string `envconfig:"SCHEDULE"`
		BatchSize  int    `envconfig:"BATCH_SIZE"`
		MaxAttempt int    `envconfig:"MAX_ATTEMPT"`
	} `envconfig:"RECONCILER"`

	Websocket struct {
		PongWaitSeconds int      `envconfig:"PONG_WAIT_SECONDS"`
		AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS"`
	} `envconfig:"WEBSOCKET"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf    Config
	once    sync.Once
	loadErr error
)

// Load reads .env when present and then decodes the environment into a Config.
func Load() (*Config, error) {
	var cfg Config

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded, using process environment")
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &cfg, nil
}

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() {
		var cfg *Config

		cfg, loadErr = Load()
		if loadErr == nil {
			conf = *cfg

			log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized")
		}
	})

	if loadErr != nil {
		log.Fatal().Err(loadErr).Msg("Failed to initialize configuration")
	}

	return &conf
}
