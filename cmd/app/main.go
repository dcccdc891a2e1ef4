package main

import (
	"ehotel/config"
	"ehotel/di"
	"ehotel/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
