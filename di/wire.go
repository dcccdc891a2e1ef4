//go:build wireinject
// +build wireinject

package di

import (
	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/infras/redis"
	"ehotel/shared/cache"
	"ehotel/transport/http"
	"ehotel/transport/http/middleware"
	"ehotel/transport/http/router"

	bookingRepository "ehotel/internal/domains/booking/repository"
	bookingService "ehotel/internal/domains/booking/service"
	catalogRepository "ehotel/internal/domains/catalog/repository"
	catalogService "ehotel/internal/domains/catalog/service"
	customerRepository "ehotel/internal/domains/customer/repository"
	customerService "ehotel/internal/domains/customer/service"
	employeeRepository "ehotel/internal/domains/employee/repository"
	employeeService "ehotel/internal/domains/employee/service"
	hotelRepository "ehotel/internal/domains/hotel/repository"
	hotelService "ehotel/internal/domains/hotel/service"
	hotelchainRepository "ehotel/internal/domains/hotelchain/repository"
	hotelchainService "ehotel/internal/domains/hotelchain/service"
	paymentRepository "ehotel/internal/domains/payment/repository"
	paymentService "ehotel/internal/domains/payment/service"
	rentalRepository "ehotel/internal/domains/rental/repository"
	rentalService "ehotel/internal/domains/rental/service"
	roomRepository "ehotel/internal/domains/room/repository"
	roomService "ehotel/internal/domains/room/service"

	bookingHandler "ehotel/internal/handlers/booking"
	catalogHandler "ehotel/internal/handlers/catalog"
	customerHandler "ehotel/internal/handlers/customer"
	employeeHandler "ehotel/internal/handlers/employee"
	hotelHandler "ehotel/internal/handlers/hotel"
	hotelchainHandler "ehotel/internal/handlers/hotelchain"
	paymentHandler "ehotel/internal/handlers/payment"
	rentalHandler "ehotel/internal/handlers/rental"
	roomHandler "ehotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelChainDomain = wire.NewSet(
	hotelchainRepository.New,
	hotelchainService.New,
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

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var rentalDomain = wire.NewSet(
	rentalRepository.New,
	rentalService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var domains = wire.NewSet(
	hotelChainDomain,
	hotelDomain,
	roomDomain,
	customerDomain,
	employeeDomain,
	bookingDomain,
	rentalDomain,
	paymentDomain,
	catalogDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelchainHandler.New,
	hotelHandler.New,
	roomHandler.New,
	customerHandler.New,
	employeeHandler.New,
	bookingHandler.New,
	rentalHandler.New,
	paymentHandler.New,
	catalogHandler.New,
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
