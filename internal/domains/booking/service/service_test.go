package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/minhquach8/hotel-booking/config"
	otelMocks "github.com/minhquach8/hotel-booking/infras/otel/mocks"
	bookingMocks "github.com/minhquach8/hotel-booking/internal/domains/booking/mocks"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/model"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/model/dto"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/service"
	cacheMocks "github.com/minhquach8/hotel-booking/shared/cache/mocks"
	"github.com/minhquach8/hotel-booking/shared/failure"
	"github.com/minhquach8/hotel-booking/shared/timezone"
)

func futureDate(days int) string {
	return timezone.Today().AddDate(0, 0, days).Format("2006-01-02")
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewCache()
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("successful creation returns the generated id", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			FullName: "Minh Quach",
			Email:    "minh@example.com",
			RoomSlug: "standard",
			Checkin:  futureDate(5),
			Checkout: futureDate(7),
		}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
				assert.Equal(t, "Minh Quach", booking.FullName)
				assert.Zero(t, booking.ID)

				booking.ID = 7

				return booking, nil
			})

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "Booking created successfully.", res.Message)
		assert.Equal(t, int64(7), res.BookingID)
	})

	t.Run("validation failure never reaches the repository", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			FullName: "Minh Quach",
			Email:    "minh@example.com",
			RoomSlug: "standard",
			Checkin:  futureDate(7),
			Checkout: futureDate(5),
		}

		res, err := svc.Create(context.Background(), req)
		require.Error(t, err)

		assert.Equal(t, failure.CodeCheckoutBeforeCheckin, failure.GetCode(err))
		assert.Zero(t, res.BookingID)
	})

	t.Run("repository error is passed through", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			FullName: "Minh Quach",
			Email:    "minh@example.com",
			RoomSlug: "no-such-room",
			Checkin:  futureDate(5),
			Checkout: futureDate(7),
		}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, failure.InsertFailedFromString("insert rejected"))

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)

		assert.Equal(t, failure.CodeInsertFailed, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewCache()
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("successful get all", func(t *testing.T) {
		bookings := []model.Booking{
			{
				ID:        2,
				FullName:  "Newest",
				Email:     "newest@example.com",
				RoomSlug:  "ocean-view",
				Checkin:   time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
				Checkout:  time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
				Notes:     sql.NullString{String: "late arrival", Valid: true},
				CreatedAt: time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:        1,
				FullName:  "Oldest",
				Email:     "oldest@example.com",
				RoomSlug:  "standard",
				Checkin:   time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
				Checkout:  time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC),
				CreatedAt: time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC),
			},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), 100).
			Return(bookings, nil)

		res, err := svc.GetAll(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, res.Count)
		require.Len(t, res.Bookings, 2)
		assert.Equal(t, int64(2), res.Bookings[0].ID)
		assert.Equal(t, "2026-09-10", res.Bookings[0].Checkin)
		require.NotNil(t, res.Bookings[0].Notes)
		assert.Equal(t, "late arrival", *res.Bookings[0].Notes)
		assert.Nil(t, res.Bookings[1].Notes)
	})

	t.Run("empty store yields an empty listing", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), 100).
			Return([]model.Booking{}, nil)

		res, err := svc.GetAll(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 0, res.Count)
		assert.Empty(t, res.Bookings)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), 100).
			Return(nil, failure.QueryFailed(errors.New("database error")))

		_, err := svc.GetAll(context.Background())
		require.Error(t, err)

		assert.Equal(t, failure.CodeQueryFailed, failure.GetCode(err))
	})
}
