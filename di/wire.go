//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/infras/sms"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	authService "lodge/internal/domains/auth/service"
	dashboardRepository "lodge/internal/domains/dashboard/repository"
	dashboardService "lodge/internal/domains/dashboard/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	notificationRepository "lodge/internal/domains/notification/repository"
	notificationService "lodge/internal/domains/notification/service"
	paymentRepository "lodge/internal/domains/payment/repository"
	paymentService "lodge/internal/domains/payment/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	settingsRepository "lodge/internal/domains/settings/repository"
	settingsService "lodge/internal/domains/settings/service"
	userRepository "lodge/internal/domains/user/repository"
	userService "lodge/internal/domains/user/service"

	authHandler "lodge/internal/handlers/auth"
	dashboardHandler "lodge/internal/handlers/dashboard"
	guestHandler "lodge/internal/handlers/guest"
	notificationHandler "lodge/internal/handlers/notification"
	paymentHandler "lodge/internal/handlers/payment"
	roomHandler "lodge/internal/handlers/room"
	settingsHandler "lodge/internal/handlers/settings"
	userHandler "lodge/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	sms.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	guestDomain,
	paymentDomain,
	settingsDomain,
	notificationDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	dashboardHandler.New,
	guestHandler.New,
	notificationHandler.New,
	paymentHandler.New,
	roomHandler.New,
	settingsHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
