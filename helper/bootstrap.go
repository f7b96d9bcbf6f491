package helper

import (
	"sitepro/config"
	"sitepro/shared/logger"
	"sitepro/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Bootstrap loads the configuration and sets up logging and the application clock.
func Bootstrap() *config.Config {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("falling back to UTC")
	}

	return cfg
}
