package repository_test

import (
	"context"
	"regexp"
	"sitepro/infras/otel/mocks"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/sideeffect/repository"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailure_GetUnresolved(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := &postgres.Connection{Read: sqlx.NewDb(db, "postgres"), Write: sqlx.NewDb(db, "postgres")}
	repo := repository.New(conn, mocks.NewOtel())

	query := regexp.QuoteMeta("WHERE (side_effect_failures.resolved = $1 AND side_effect_failures.attempts <= $2) ORDER BY side_effect_failures.created_at ASC LIMIT $3 OFFSET $4")

	mock.ExpectPrepare(query).
		ExpectQuery().
		WithArgs(false, 9, 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "entity_id", "attempts", "resolved"}).
			AddRow("f-1", "CONTRACT_ISSUE", "bid-1", 2, false))

	got, err := repo.GetUnresolved(context.Background(), 50, 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "f-1", got[0].ID)
	assert.Equal(t, 2, got[0].Attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
