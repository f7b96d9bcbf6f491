package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sitepro/infras/otel"
	"sitepro/internal/domains/audit/model"
	"sitepro/internal/domains/audit/repository"
	"sitepro/shared/constant"

	"github.com/rs/zerolog/log"
)

type AuditLog interface {
	Log(ctx context.Context, entry model.Entry) error
}

type serviceImpl struct {
	repo repository.AuditLog
	otel otel.Otel
}

func New(repo repository.AuditLog, otel otel.Otel) AuditLog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Log(ctx context.Context, entry model.Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".audit.Log")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Insert(ctx, entry.ToModel()); err != nil {
		log.Error().Err(err).Str("entity_type", entry.EntityType).Str("entity_id", entry.EntityID).Str("action", entry.Action).Msg("failed to write audit log")

		return fmt.Errorf("failed to write audit log: %w", err)
	}

	return nil
}
