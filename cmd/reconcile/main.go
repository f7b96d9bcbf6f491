package main

import (
	"context"
	"os"
	"os/signal"
	"sitepro/di"
	"sitepro/helper"
	"sitepro/internal/scheduler"
	"sitepro/shared/timezone"
	"syscall"

	"github.com/rs/zerolog/log"
)

const (
	argOnce = "once"
	jobName = "side-effect-reconciler"
)

func main() {
	cfg := helper.Bootstrap()

	reconciler := di.InitializeReconciler()

	if len(os.Args) > 1 && os.Args[1] == argOnce {
		res, err := reconciler.Run(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("reconciliation failed")
		}

		log.Info().Int("resolved", res.Resolved).Int("failed", res.Failed).Msg("reconciliation done")

		return
	}

	s := scheduler.New(timezone.GetLocation())

	err := s.Add(jobName, cfg.ReconcilerSchedule(), func(ctx context.Context) error {
		_, err := reconciler.Run(ctx)

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to schedule reconciler")
	}

	s.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	s.Stop()
}
