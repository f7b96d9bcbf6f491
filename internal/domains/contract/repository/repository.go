package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/contract/model"
	gDto "sitepro/shared/dto"
	gRepo "sitepro/shared/repository"
)

type Contract interface {
	InsertOnce(ctx context.Context, contract model.Contract) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Contract, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Contract]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Contract {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Contract](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertOnce writes the contract unless its bid already has one. It reports whether a row was created.
func (r *repositoryImpl) InsertOnce(ctx context.Context, contract model.Contract) (bool, error) {
	return r.InsertIgnore(ctx, contract, model.FieldBidID) //nolint:wrapcheck
}
