package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/bid/model"
	gDto "sitepro/shared/dto"
	gRepo "sitepro/shared/repository"
)

type Bid interface {
	Insert(ctx context.Context, model model.Bid) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bid, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Bid]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Bid {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bid](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}
