package service

import (
	"context"

	"github.com/minhquach8/hotel-booking/config"
	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/model/dto"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/repository"
	"github.com/minhquach8/hotel-booking/shared/cache"
	"github.com/minhquach8/hotel-booking/shared/constant"
	"github.com/minhquach8/hotel-booking/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"

	confirmationMessage = "Booking created successfully."
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Create validates the submission and persists it. Rejections never touch the
// store; persistence failures are returned to the caller without retrying.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.Validate(timezone.Today())
	if err != nil {
		log.Warn().Err(err).Msg("booking submission rejected")

		return res, err
	}

	inserted, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetAllBooking); err != nil {
			log.Error().Err(err).Msg("failed to invalidate bookings cache")
		}
	}()

	scope.AddEvent("Booking persisted")

	return dto.CreateBookingResponse{
		Message:   confirmationMessage,
		BookingID: inserted.ID,
	}, nil
}

// GetAll returns the most recent bookings, newest first, capped at the
// configured listing limit.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllBooking, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllBooking).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx, constant.DefaultBookingListLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, err
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllBooking, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}
