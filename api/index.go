package handler

import (
	"net/http"

	"ehotel/config"
	"ehotel/di"
	"ehotel/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Adaptor().ServeHTTP(w, r)
}
