package health

import (
	"net/http"
	"time"

	"github.com/minhquach8/hotel-booking/config"
	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/infras/postgres"
	"github.com/minhquach8/hotel-booking/shared/constant"
	"github.com/minhquach8/hotel-booking/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Status struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

type Handler struct {
	db   *postgres.Connection
	cfg  *config.Config
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		db:   db,
		cfg:  cfg,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.GetHealth)
}

// GetHealth reports service liveness, including datastore reachability.
// @Summary Health check
// @Description Report whether the service and its datastore are reachable.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service healthy"
// @Failure 503 {object} response.Message "Service unhealthy"
// @Router /api/health [get]
func (handler *Handler) GetHealth(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHealth")
	defer scope.End()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("datastore unreachable")

		response.WithUnhealthy(writer)

		return
	}

	response.WithJSON(writer, http.StatusOK, Status{
		Status:      "OK",
		Service:     handler.cfg.App.Name,
		Environment: handler.cfg.Server.Env,
		Timestamp:   time.Now().UTC(),
	})
}
