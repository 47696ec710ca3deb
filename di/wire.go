//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/internal/events"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	authService "lodge/internal/domains/auth/service"
	chainService "lodge/internal/domains/chain/service"
	clientService "lodge/internal/domains/client/service"
	employeeService "lodge/internal/domains/employee/service"
	hotelService "lodge/internal/domains/hotel/service"
	paymentService "lodge/internal/domains/payment/service"
	rentalService "lodge/internal/domains/rental/service"
	reservationService "lodge/internal/domains/reservation/service"
	roomService "lodge/internal/domains/room/service"

	authHandler "lodge/internal/handlers/auth"
	chainHandler "lodge/internal/handlers/chain"
	clientHandler "lodge/internal/handlers/client"
	employeeHandler "lodge/internal/handlers/employee"
	hotelHandler "lodge/internal/handlers/hotel"
	paymentHandler "lodge/internal/handlers/payment"
	rentalHandler "lodge/internal/handlers/rental"
	reservationHandler "lodge/internal/handlers/reservation"
	roomHandler "lodge/internal/handlers/room"
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
	s3.New,
	ProvideStore,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var repositories = wire.NewSet(
	ProvideChainRepository,
	ProvideHotelRepository,
	ProvideRoomRepository,
	ProvideClientRepository,
	ProvideEmployeeRepository,
	ProvideUserRepository,
	ProvideReservationRepository,
	ProvideRentalRepository,
	ProvidePaymentRepository,
)

var services = wire.NewSet(
	authService.New,
	chainService.New,
	hotelService.New,
	roomService.New,
	clientService.New,
	employeeService.New,
	reservationService.New,
	rentalService.New,
	paymentService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	chainHandler.New,
	hotelHandler.New,
	roomHandler.New,
	clientHandler.New,
	employeeHandler.New,
	reservationHandler.New,
	rentalHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
