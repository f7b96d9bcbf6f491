package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sitepro/config"
	"sitepro/infras/kafka"
	"sitepro/infras/otel"
	"sitepro/infras/socket"
	"sitepro/internal/domains/notification/model"
	"sitepro/internal/domains/notification/model/dto"
	"sitepro/internal/domains/notification/repository"
	"sitepro/shared/constant"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Dispatch(ctx context.Context, notifications ...model.Notification) error
}

type serviceImpl struct {
	repo      repository.Notification
	hub       socket.Hub
	publisher kafka.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Notification, hub socket.Hub, publisher kafka.Publisher, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:      repo,
		hub:       hub,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

// Dispatch stores the notifications, then pushes them to connected clients and the notifications topic.
// Only the store write can fail the call; delivery is best-effort.
func (s *serviceImpl) Dispatch(ctx context.Context, notifications ...model.Notification) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Dispatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(notifications) == 0 {
		return nil
	}

	if err = s.repo.InsertBulk(ctx, notifications); err != nil {
		log.Error().Err(err).Int("count", len(notifications)).Msg("failed to store notifications")

		return fmt.Errorf("failed to store notifications: %w", err)
	}

	messages := make([]kafka.Message, 0, len(notifications))

	for _, n := range notifications {
		var res dto.NotificationResponse
		res.FromModel(n)

		payload, err := json.Marshal(res)
		if err != nil {
			log.Error().Err(err).Str("notification_id", n.ID).Msg("failed to encode notification")

			continue
		}

		if err := s.hub.Send(ctx, n.UserID, payload); err != nil {
			log.Warn().Err(err).Str("user_id", n.UserID).Msg("failed to push notification")
		}

		messages = append(messages, kafka.Message{Key: n.UserID, Value: res})
	}

	if err := s.publisher.Publish(ctx, s.cfg.NotificationsTopic(), messages...); err != nil {
		log.Warn().Err(err).Int("count", len(messages)).Msg("failed to publish notifications")
	}

	return nil
}
