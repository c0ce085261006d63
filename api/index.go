package handler

import (
	"net/http"

	"github.com/minhquach8/hotel-booking/config"
	"github.com/minhquach8/hotel-booking/di"
	"github.com/minhquach8/hotel-booking/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
