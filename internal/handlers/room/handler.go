package room

import (
	"net/http"

	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/internal/domains/room/service"
	"github.com/minhquach8/hotel-booking/shared/constant"
	"github.com/minhquach8/hotel-booking/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
}

// GetRooms returns the room catalog.
// @Summary Get the room catalog
// @Description Retrieve every room, ordered ascending by nightly price.
// @Tags Room
// @Produce json
// @Success 200 {object} dto.GetRoomsResponse "Room catalog"
// @Failure 500 {object} response.Error
// @Router /api/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
