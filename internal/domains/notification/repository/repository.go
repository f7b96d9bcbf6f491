package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/notification/model"
	gRepo "sitepro/shared/repository"
)

type Notification interface {
	InsertBulk(ctx context.Context, models []model.Notification) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}
