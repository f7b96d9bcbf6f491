package repository_test

import (
	"context"
	"regexp"
	"sitepro/infras/otel/mocks"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/machine/model"
	"sitepro/internal/domains/machine/repository"
	"sitepro/shared/failure"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_SetStatus(t *testing.T) {
	project := "project-1"
	assignee := "operator-1"
	change := model.StatusChange{
		MachineID:         "machine-1",
		Status:            model.StatusAssigned,
		CurrentProjectID:  &project,
		CurrentAssignedTo: &assignee,
		ModifiedBy:        "pm-1",
	}

	query := regexp.QuoteMeta("UPDATE machines SET current_assigned_to = $1, current_project_id = $2, modified_at = $3, modified_by = $4, status = $5 WHERE (machines.id = $6)")

	tests := []struct {
		name     string
		affected int64
		wantErr  bool
	}{
		{name: "machine updated", affected: 1},
		{name: "machine missing", affected: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			conn := &postgres.Connection{Read: sqlx.NewDb(db, "postgres"), Write: sqlx.NewDb(db, "postgres")}
			repo := repository.New(conn, mocks.NewOtel())

			mock.ExpectExec(query).
				WithArgs("operator-1", "project-1", sqlmock.AnyArg(), "pm-1", "ASSIGNED", "machine-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err = repo.SetStatus(context.Background(), change)

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.KindNotFound))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
