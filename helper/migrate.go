package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"sitepro/config"
	"sitepro/infras/postgres"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

// Direction names a migrate command.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionStepUp  Direction = "step-up"
	DirectionDrop    Direction = "drop"
	DirectionVersion Direction = "version"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionUp, DirectionDown, DirectionStepUp, DirectionDrop, DirectionVersion:
		return d, nil
	default:
		return "", fmt.Errorf("invalid direction %q, use up, down, step-up, drop or version", s)
	}
}

// DSN builds the migrate connection string for the write database.
func DSN(config *config.Config) string {
	dsn := postgres.URL(config, config.DB.Postgres.Write)

	if table := config.DB.Postgres.MigrationTable; table != "" {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}

		dsn += sep + "x-migrations-table=" + url.QueryEscape(table)
	}

	return dsn
}

// Migrate applies direction to the schema and logs the resulting version.
func Migrate(config *config.Config, direction Direction) error {
	mig, err := migrate.New(migrationsSource, DSN(config))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch direction {
	case DirectionUp:
		err = mig.Up()
	case DirectionDown:
		err = mig.Steps(-1)
	case DirectionStepUp:
		err = mig.Steps(1)
	case DirectionDrop:
		err = mig.Down()
	case DirectionVersion:
	default:
		return fmt.Errorf("unsupported direction %q", direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %s: %w", direction, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	log.Info().
		Str("direction", string(direction)).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Database migration finished")

	return nil
}
