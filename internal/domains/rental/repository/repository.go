package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/rental/model"
	"sitepro/shared"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	gRepo "sitepro/shared/repository"

	"github.com/rs/zerolog/log"
)

type Rental interface {
	Insert(ctx context.Context, model model.Rental) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rental, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	LogUsage(ctx context.Context, usage model.UsageLog) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rental]
	usage gRepo.Repository[model.UsageLog]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rental](model.EntityName, model.TableName, db, otel),
		usage:      gRepo.NewRepository[model.UsageLog](model.UsageLogEntityName, model.UsageLogTableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LogUsage appends usage and adds its hours to the rental total in one transaction.
// It reports false, writing nothing, when the rental does not exist.
func (r *repositoryImpl) LogUsage(ctx context.Context, usage model.UsageLog) (ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.LogUsage")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin usage transaction: %w", err)
	}

	defer func() {
		if err != nil || !ok {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Str("rental_id", usage.RentalID).Msg("failed to rollback usage transaction")
			}
		}
	}()

	increment := shared.WithModified(map[string]any{
		model.FieldTotalHoursUsed: gRepo.Expr{
			SQL:  model.FieldTotalHoursUsed + " + :hours_delta",
			Args: map[string]any{"hours_delta": usage.HoursUsed},
		},
	}, usage.LoggedBy)

	affected, err := r.UpdateAffectedTx(ctx, tx, increment, shared.FilterByID(usage.RentalID, model.FieldID, model.TableName))
	if err != nil {
		return false, err
	}

	if affected == 0 {
		return false, nil
	}

	if err = r.usage.InsertTx(ctx, tx, usage); err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit usage transaction: %w", err)
	}

	return true, nil
}
