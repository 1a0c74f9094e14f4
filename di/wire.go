//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	"github.com/google/wire"

	authService "lodge/internal/domains/auth/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	chainRepository "lodge/internal/domains/chain/repository"
	chainService "lodge/internal/domains/chain/service"
	customerRepository "lodge/internal/domains/customer/repository"
	customerService "lodge/internal/domains/customer/service"
	employeeRepository "lodge/internal/domains/employee/repository"
	employeeService "lodge/internal/domains/employee/service"
	hotelRepository "lodge/internal/domains/hotel/repository"
	hotelService "lodge/internal/domains/hotel/service"
	rentingRepository "lodge/internal/domains/renting/repository"
	rentingService "lodge/internal/domains/renting/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"

	authHandler "lodge/internal/handlers/auth"
	bookingHandler "lodge/internal/handlers/booking"
	chainHandler "lodge/internal/handlers/chain"
	customerHandler "lodge/internal/handlers/customer"
	employeeHandler "lodge/internal/handlers/employee"
	hotelHandler "lodge/internal/handlers/hotel"
	rentingHandler "lodge/internal/handlers/renting"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var chainDomain = wire.NewSet(
	chainRepository.New,
	chainService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var rentingDomain = wire.NewSet(
	rentingRepository.New,
	rentingService.New,
)

var domains = wire.NewSet(
	chainDomain,
	hotelDomain,
	roomDomain,
	customerDomain,
	employeeDomain,
	authDomain,
	bookingDomain,
	rentingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	chainHandler.New,
	hotelHandler.New,
	roomHandler.New,
	customerHandler.New,
	employeeHandler.New,
	bookingHandler.New,
	rentingHandler.New,
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
