package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/member/model"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	gRepo "sitepro/shared/repository"
)

var (
	conflictColumns = []string{model.FieldProjectID, model.FieldUserID}
	updateColumns   = []string{model.FieldRole, constant.FieldModifiedAt, constant.FieldModifiedBy}
)

type Member interface {
	Upsert(ctx context.Context, member model.Member) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Member, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Member]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Member {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Member](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert keeps a single row per (project, user); a repeated call refreshes the role.
func (r *repositoryImpl) Upsert(ctx context.Context, member model.Member) error {
	return r.Repository.Upsert(ctx, member, conflictColumns, updateColumns) //nolint:wrapcheck
}
