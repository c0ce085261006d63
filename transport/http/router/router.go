package router

import (
	"net/http"

	"github.com/minhquach8/hotel-booking/internal/handlers/booking"
	"github.com/minhquach8/hotel-booking/internal/handlers/health"
	"github.com/minhquach8/hotel-booking/internal/handlers/room"
	"github.com/minhquach8/hotel-booking/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const banner = "Hotel Booking API. Endpoints: GET /api/health, GET /api/rooms, POST /api/booking, GET /api/bookings"

type DomainHandlers struct {
	Health  health.Handler
	Room    room.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/", func(writer http.ResponseWriter, _ *http.Request) {
		response.WithPlainText(writer, http.StatusOK, banner)
	})

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
