package service

import (
	"context"

	"github.com/minhquach8/hotel-booking/config"
	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/internal/domains/room/model/dto"
	"github.com/minhquach8/hotel-booking/internal/domains/room/repository"
	"github.com/minhquach8/hotel-booking/shared/cache"
	"github.com/minhquach8/hotel-booking/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRoom = "room:gets"
)

type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll returns the full catalog ordered ascending by nightly price. The
// catalog is seed data, so a cache hit can never be stale within its TTL.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllRoom, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllRoom).Msg("cache hit for rooms")

		return res, nil
	}

	rooms, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, err
	}

	res.FromModels(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllRoom, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}
