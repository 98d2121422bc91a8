package main

import (
	"cookie-consent-api/internal/app/server"
	"cookie-consent-api/internal/config"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg.Server.LogLevel)
	server.Run(cfg)
}
