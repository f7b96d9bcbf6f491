package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/internal/domains/sideeffect/model"
	"sitepro/shared"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	gRepo "sitepro/shared/repository"
	"sitepro/shared/timezone"
)

type Failure interface {
	Insert(ctx context.Context, model model.Failure) error
	GetUnresolved(ctx context.Context, limit, maxAttempt int) ([]model.Failure, error)
	MarkResolved(ctx context.Context, id, resolvedBy string) error
	MarkFailed(ctx context.Context, id string, attempts int, cause error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Failure]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Failure {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Failure](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetUnresolved returns the oldest open failures that still have attempts left.
func (r *repositoryImpl) GetUnresolved(ctx context.Context, limit, maxAttempt int) ([]model.Failure, error) {
	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.TableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Eq(model.TableName, model.FieldResolved, false),
			gDto.Filter{Field: model.FieldAttempts, Value: maxAttempt - 1, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		},
	}

	return r.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) MarkResolved(ctx context.Context, id, resolvedBy string) error {
	fields := shared.WithModified(map[string]any{
		model.FieldResolved:   true,
		model.FieldResolvedAt: timezone.Now(),
	}, resolvedBy)

	return r.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) MarkFailed(ctx context.Context, id string, attempts int, cause error) error {
	fields := shared.WithModified(map[string]any{
		model.FieldAttempts: attempts,
		model.FieldError:    cause.Error(),
	}, constant.ActorSystem)

	return r.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
