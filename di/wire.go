//go:build wireinject
// +build wireinject

package di

import (
	"github.com/minhquach8/hotel-booking/config"
	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/infras/postgres"
	"github.com/minhquach8/hotel-booking/infras/redis"
	"github.com/minhquach8/hotel-booking/shared/cache"
	"github.com/minhquach8/hotel-booking/transport/http"
	"github.com/minhquach8/hotel-booking/transport/http/middleware"
	"github.com/minhquach8/hotel-booking/transport/http/router"

	bookingRepository "github.com/minhquach8/hotel-booking/internal/domains/booking/repository"
	bookingService "github.com/minhquach8/hotel-booking/internal/domains/booking/service"
	roomRepository "github.com/minhquach8/hotel-booking/internal/domains/room/repository"
	roomService "github.com/minhquach8/hotel-booking/internal/domains/room/service"

	bookingHandler "github.com/minhquach8/hotel-booking/internal/handlers/booking"
	healthHandler "github.com/minhquach8/hotel-booking/internal/handlers/health"
	roomHandler "github.com/minhquach8/hotel-booking/internal/handlers/room"

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

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	roomHandler.New,
	bookingHandler.New,
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
