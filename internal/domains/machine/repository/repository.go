package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/machine/model"
	"sitepro/shared"
	gDto "sitepro/shared/dto"
	"sitepro/shared/failure"
	gRepo "sitepro/shared/repository"
)

type Machine interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Machine, error)
	SetStatus(ctx context.Context, change model.StatusChange) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Machine]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Machine {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Machine](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) SetStatus(ctx context.Context, change model.StatusChange) error {
	affected, err := r.UpdateAffected(ctx, shared.WithModified(change.Fields(), change.ModifiedBy), shared.FilterByID(change.MachineID, model.FieldID, model.TableName))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(fmt.Sprintf("machine %s not found", change.MachineID)) //nolint:wrapcheck
	}

	return nil
}
