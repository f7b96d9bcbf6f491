package main

import (
	"sitepro/di"
	"sitepro/helper"

	"github.com/rs/zerolog/log"
)

// @title Sitepro API
// @version 1.0
// @description Bid review and machine rental lifecycle for construction projects.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := helper.Bootstrap()

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Migrate(cfg, helper.DirectionUp); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
