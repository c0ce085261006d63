package main

import (
	"github.com/minhquach8/hotel-booking/config"
	"github.com/minhquach8/hotel-booking/di"
	"github.com/minhquach8/hotel-booking/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
