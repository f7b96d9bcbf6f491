package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"sitepro/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	defaultMaxOpen  = 10
	defaultMaxIdle  = 10
	defaultMaxRetry = 1
)

// Connection splits traffic between the read replica and the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  mustConnect(cfg, "read", cfg.DB.Postgres.Read),
		Write: mustConnect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// URL renders the lib/pq connection url for node, applying the configured database prefix.
func URL(cfg *config.Config, node config.PostgresNode) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(node.Username, node.Password),
		Host:   net.JoinHostPort(node.Host, node.Port),
		Path:   "/" + cfg.DB.Postgres.Prefix + node.Name,
	}

	if node.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {node.SSLMode}}.Encode()
	}

	return u.String()
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}

	return value
}

func configurePool(db *sqlx.DB, cfg *config.Config) {
	pool := cfg.DB.Postgres.Pool

	db.SetMaxOpenConns(orDefault(pool.MaxOpen, defaultMaxOpen))
	db.SetMaxIdleConns(orDefault(pool.MaxIdle, defaultMaxIdle))

	if pool.MaxLifetimeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(pool.MaxLifetimeMinutes) * time.Minute)
	}
}

// Connect dials node, retrying up to the configured attempts with a fixed wait in between.
func Connect(cfg *config.Config, name string, node config.PostgresNode) (*sqlx.DB, error) {
	maxRetry := orDefault(cfg.DB.Postgres.MaxRetry, defaultMaxRetry)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second
	dsn := URL(cfg, node)

	var lastErr error

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			configurePool(db, cfg)

			log.Info().
				Str("name", name).
				Str("host", node.Host).
				Str("dbName", cfg.DB.Postgres.Prefix+node.Name).
				Msg("Connected to database")

			return db, nil
		}

		lastErr = err

		log.Warn().
			Err(err).
			Str("name", name).
			Str("host", node.Host).
			Int("attempt", attempt).
			Int("maxRetry", maxRetry).
			Msg("Failed connecting to database")

		if attempt < maxRetry {
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("failed to connect to %s database after %d attempts: %w", name, maxRetry, lastErr)
}

func mustConnect(cfg *config.Config, name string, node config.PostgresNode) *sqlx.DB {
	db, err := Connect(cfg, name, node)
	if err != nil {
		log.Fatal().Err(err).Msg("Database unavailable")
	}

	return db
}
