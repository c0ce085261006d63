package dto_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhquach8/hotel-booking/internal/domains/booking/model"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/model/dto"
	"github.com/minhquach8/hotel-booking/shared/failure"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		FullName: "Minh Quach",
		Email:    "minh@example.com",
		RoomSlug: "ocean-view",
		Checkin:  "2026-09-10",
		Checkout: "2026-09-12",
	}
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	today := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid request yields a persistable booking", func(t *testing.T) {
		req := validRequest()
		req.Notes = "  late arrival  "

		booking, err := req.Validate(today)
		require.NoError(t, err)

		assert.Equal(t, "Minh Quach", booking.FullName)
		assert.Equal(t, "minh@example.com", booking.Email)
		assert.Equal(t, "ocean-view", booking.RoomSlug)
		assert.Equal(t, time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), booking.Checkin)
		assert.Equal(t, time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC), booking.Checkout)
		assert.Equal(t, sql.NullString{String: "late arrival", Valid: true}, booking.Notes)
	})

	t.Run("blank notes become an explicit null", func(t *testing.T) {
		req := validRequest()
		req.Notes = "   "

		booking, err := req.Validate(today)
		require.NoError(t, err)

		assert.False(t, booking.Notes.Valid)
	})

	t.Run("checkin on today is accepted", func(t *testing.T) {
		req := validRequest()
		req.Checkin = "2026-09-01"
		req.Checkout = "2026-09-02"

		_, err := req.Validate(today)
		assert.NoError(t, err)
	})

	tests := []struct {
		name     string
		mutate   func(req *dto.CreateBookingRequest)
		wantCode string
		wantMsg  string
	}{
		{
			name: "single missing field is named",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Email = ""
			},
			wantCode: failure.CodeMissingFields,
			wantMsg:  "required fields are missing: email",
		},
		{
			name: "whitespace-only field counts as missing",
			mutate: func(req *dto.CreateBookingRequest) {
				req.FullName = "   "
			},
			wantCode: failure.CodeMissingFields,
			wantMsg:  "required fields are missing: full_name",
		},
		{
			name: "all missing fields are listed in declaration order",
			mutate: func(req *dto.CreateBookingRequest) {
				req.FullName = ""
				req.RoomSlug = ""
				req.Checkout = ""
			},
			wantCode: failure.CodeMissingFields,
			wantMsg:  "required fields are missing: full_name, room_slug, checkout",
		},
		{
			name: "presence outranks date parsing",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Email = ""
				req.Checkin = "not-a-date"
			},
			wantCode: failure.CodeMissingFields,
		},
		{
			name: "unparseable checkin",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Checkin = "10/09/2026"
			},
			wantCode: failure.CodeInvalidDate,
			wantMsg:  "checkin must be a calendar date in YYYY-MM-DD format",
		},
		{
			name: "unparseable checkout",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Checkout = "2026-13-40"
			},
			wantCode: failure.CodeInvalidDate,
			wantMsg:  "checkout must be a calendar date in YYYY-MM-DD format",
		},
		{
			name: "checkin parse error reported before checkout's",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Checkin = "garbage"
				req.Checkout = "garbage"
			},
			wantCode: failure.CodeInvalidDate,
			wantMsg:  "checkin must be a calendar date in YYYY-MM-DD format",
		},
		{
			name: "checkout equal to checkin is rejected",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Checkout = req.Checkin
			},
			wantCode: failure.CodeCheckoutBeforeCheckin,
		},
		{
			name: "checkout before checkin is rejected",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Checkin = "2026-09-12"
				req.Checkout = "2026-09-10"
			},
			wantCode: failure.CodeCheckoutBeforeCheckin,
		},
		{
			name: "inverted range outranks past checkin",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Checkin = "2026-08-20"
				req.Checkout = "2026-08-10"
			},
			wantCode: failure.CodeCheckoutBeforeCheckin,
		},
		{
			name: "checkin before today is rejected",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Checkin = "2026-08-30"
				req.Checkout = "2026-09-02"
			},
			wantCode: failure.CodeCheckinInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			booking, err := req.Validate(today)
			require.Error(t, err)

			assert.Equal(t, model.Booking{}, booking)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, 400, failure.GetStatus(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	created := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)

	booking := model.Booking{
		ID:        42,
		FullName:  "Minh Quach",
		Email:     "minh@example.com",
		RoomSlug:  "standard",
		Checkin:   time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		Checkout:  time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		Notes:     sql.NullString{String: "ground floor", Valid: true},
		CreatedAt: created,
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, int64(42), response.ID)
	assert.Equal(t, "2026-09-10", response.Checkin)
	assert.Equal(t, "2026-09-12", response.Checkout)
	require.NotNil(t, response.Notes)
	assert.Equal(t, "ground floor", *response.Notes)
	assert.Equal(t, created, response.CreatedAt)
}

func TestBookingResponse_FromModel_NullNotes(t *testing.T) {
	var response dto.BookingResponse
	response.FromModel(model.Booking{Notes: sql.NullString{}})

	assert.Nil(t, response.Notes)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: 2, FullName: "Second"},
		{ID: 1, FullName: "First"},
	}

	var response dto.GetBookingsResponse
	response.FromModels(models)

	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Bookings, 2)
	assert.Equal(t, int64(2), response.Bookings[0].ID)
	assert.Equal(t, int64(1), response.Bookings[1].ID)
}

func TestGetBookingsResponse_FromModels_Empty(t *testing.T) {
	var response dto.GetBookingsResponse
	response.FromModels(nil)

	assert.Equal(t, 0, response.Count)
	assert.NotNil(t, response.Bookings)
	assert.Empty(t, response.Bookings)
}
