package main

import (
	"os"
	"sitepro/helper"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	cfg := helper.Bootstrap()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up, down, step-up, drop or version) is required")
	}

	direction, err := helper.ParseDirection(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid migration direction")
	}

	if err := helper.Migrate(cfg, direction); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
