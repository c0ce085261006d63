package booking

import (
	"net/http"

	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/model/dto"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/service"
	"github.com/minhquach8/hotel-booking/shared/constant"
	"github.com/minhquach8/hotel-booking/shared/validator"
	"github.com/minhquach8/hotel-booking/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/booking", handler.CreateBooking)
	router.Get("/bookings", handler.GetBookings)
}

// CreateBooking handles a reservation submission.
// @Summary Create a booking
// @Description Validate and persist a reservation for a room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse "Booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings returns the most recent bookings, newest first.
// @Summary List bookings
// @Description Retrieve the most recent bookings, newest first, capped at 100.
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.GetBookingsResponse "Booking listing"
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
