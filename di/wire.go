//go:build wireinject
// +build wireinject

package di

import (
	"sitepro/config"
	"sitepro/infras/jwt"
	"sitepro/infras/kafka"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/infras/redis"
	"sitepro/infras/socket"
	"sitepro/internal/orchestrator"
	"sitepro/permissions"
	"sitepro/shared/cache"
	"sitepro/transport/http"
	"sitepro/transport/http/middleware"
	"sitepro/transport/http/router"

	auditRepository "sitepro/internal/domains/audit/repository"
	auditService "sitepro/internal/domains/audit/service"
	bidRepository "sitepro/internal/domains/bid/repository"
	bidService "sitepro/internal/domains/bid/service"
	contractRepository "sitepro/internal/domains/contract/repository"
	machineRepository "sitepro/internal/domains/machine/repository"
	memberRepository "sitepro/internal/domains/member/repository"
	notificationRepository "sitepro/internal/domains/notification/repository"
	notificationService "sitepro/internal/domains/notification/service"
	rentalRepository "sitepro/internal/domains/rental/repository"
	rentalService "sitepro/internal/domains/rental/service"
	sideEffectRepository "sitepro/internal/domains/sideeffect/repository"

	bidHandler "sitepro/internal/handlers/bid"
	notificationHandler "sitepro/internal/handlers/notification"
	rentalHandler "sitepro/internal/handlers/rental"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	socket.NewHub,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	bidRepository.New,
	rentalRepository.New,
	machineRepository.New,
	memberRepository.New,
	contractRepository.New,
	notificationRepository.New,
	auditRepository.New,
	sideEffectRepository.New,
)

var sideEffects = wire.NewSet(
	notificationService.New,
	auditService.New,
	orchestrator.New,
)

var domains = wire.NewSet(
	bidService.New,
	rentalService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bidHandler.New,
	rentalHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		sideEffects,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeReconciler() *orchestrator.Reconciler {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		memberRepository.New,
		contractRepository.New,
		machineRepository.New,
		rentalRepository.New,
		sideEffectRepository.New,
		orchestrator.NewReconciler,
	)

	return &orchestrator.Reconciler{}
}
