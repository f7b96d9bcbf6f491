package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/audit/model"
	gRepo "sitepro/shared/repository"
)

type AuditLog interface {
	Insert(ctx context.Context, model model.AuditLog) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AuditLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AuditLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AuditLog](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}
