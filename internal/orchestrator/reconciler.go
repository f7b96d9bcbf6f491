package orchestrator

import (
	"context"
	"fmt"
	"sitepro/config"
	"sitepro/infras/otel"
	contractModel "sitepro/internal/domains/contract/model"
	contractRepo "sitepro/internal/domains/contract/repository"
	machineModel "sitepro/internal/domains/machine/model"
	machineRepo "sitepro/internal/domains/machine/repository"
	memberModel "sitepro/internal/domains/member/model"
	memberRepo "sitepro/internal/domains/member/repository"
	rentalModel "sitepro/internal/domains/rental/model"
	rentalRepo "sitepro/internal/domains/rental/repository"
	sideEffectModel "sitepro/internal/domains/sideeffect/model"
	sideEffectRepo "sitepro/internal/domains/sideeffect/repository"
	"sitepro/shared"
	"sitepro/shared/constant"

	"github.com/rs/zerolog/log"
)

// ReconcileResult counts the outcome of one reconciliation pass.
type ReconcileResult struct {
	Resolved int
	Failed   int
}

// Reconciler replays side effects that failed after their primary transition committed.
type Reconciler struct {
	memberRepo   memberRepo.Member
	contractRepo contractRepo.Contract
	machineRepo  machineRepo.Machine
	rentalRepo   rentalRepo.Rental
	failureRepo  sideEffectRepo.Failure
	cfg          *config.Config
	otel         otel.Otel
}

func NewReconciler(
	memberRepo memberRepo.Member,
	contractRepo contractRepo.Contract,
	machineRepo machineRepo.Machine,
	rentalRepo rentalRepo.Rental,
	failureRepo sideEffectRepo.Failure,
	cfg *config.Config,
	otel otel.Otel,
) *Reconciler {
	return &Reconciler{
		memberRepo:   memberRepo,
		contractRepo: contractRepo,
		machineRepo:  machineRepo,
		rentalRepo:   rentalRepo,
		failureRepo:  failureRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

// Run makes one pass over the oldest unresolved failures.
func (r *Reconciler) Run(ctx context.Context) (res ReconcileResult, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reconciler.Run")
	defer scope.End()
	defer scope.TraceIfError(err)

	failures, err := r.failureRepo.GetUnresolved(ctx, r.cfg.ReconcilerBatchSize(), r.cfg.ReconcilerMaxAttempt())
	if err != nil {
		log.Error().Err(err).Msg("failed to load unresolved side effects")

		return res, fmt.Errorf("failed to load unresolved side effects: %w", err)
	}

	for _, f := range failures {
		if ctx.Err() != nil {
			return res, ctx.Err() //nolint:wrapcheck
		}

		replayErr := r.replay(ctx, f)
		if replayErr == nil {
			if err := r.failureRepo.MarkResolved(ctx, f.ID, constant.ActorSystem); err != nil {
				log.Error().Err(err).Str("failure_id", f.ID).Msg("failed to mark side effect resolved")
			}

			res.Resolved++

			continue
		}

		log.Warn().Err(replayErr).
			Str("failure_id", f.ID).
			Str("kind", string(f.Kind)).
			Str("entity_id", f.EntityID).
			Int("attempts", f.Attempts+1).
			Msg("side effect replay failed")

		if err := r.failureRepo.MarkFailed(ctx, f.ID, f.Attempts+1, replayErr); err != nil {
			log.Error().Err(err).Str("failure_id", f.ID).Msg("failed to record replay attempt")
		}

		res.Failed++
	}

	log.Info().Int("resolved", res.Resolved).Int("failed", res.Failed).Msg("reconciliation pass finished")

	return res, nil
}

func (r *Reconciler) replay(ctx context.Context, f sideEffectModel.Failure) error {
	switch f.Kind {
	case sideEffectModel.KindMembershipUpsert:
		var member memberModel.Member
		if err := f.Payload.Unmarshal(&member); err != nil {
			return fmt.Errorf("failed to decode membership payload: %w", err)
		}

		return r.memberRepo.Upsert(ctx, member) //nolint:wrapcheck
	case sideEffectModel.KindContractIssue:
		var contract contractModel.Contract
		if err := f.Payload.Unmarshal(&contract); err != nil {
			return fmt.Errorf("failed to decode contract payload: %w", err)
		}

		_, err := r.contractRepo.InsertOnce(ctx, contract)

		return err //nolint:wrapcheck
	case sideEffectModel.KindMachineStatus:
		var change machineModel.StatusChange
		if err := f.Payload.Unmarshal(&change); err != nil {
			return fmt.Errorf("failed to decode machine payload: %w", err)
		}

		current, err := r.machineWriteCurrent(ctx, f.EntityID, change)
		if err != nil || !current {
			return err
		}

		return r.machineRepo.SetStatus(ctx, change) //nolint:wrapcheck
	default:
		return fmt.Errorf("unknown side effect kind %q", f.Kind)
	}
}

// machineStatusFor is the machine status a rental in status holds its machine at.
func machineStatusFor(status rentalModel.Status) (machineModel.Status, bool) {
	switch status {
	case rentalModel.StatusAssigned, rentalModel.StatusInUse:
		return machineModel.StatusAssigned, true
	case rentalModel.StatusCompleted:
		return machineModel.StatusAvailable, true
	default:
		return "", false
	}
}

// machineWriteCurrent reports whether change still matches the status of the rental that made it.
// A write superseded by a later transition, or whose rental is gone, is not replayed.
func (r *Reconciler) machineWriteCurrent(ctx context.Context, rentalID string, change machineModel.StatusChange) (bool, error) {
	rental, err := r.rentalRepo.Get(ctx, shared.FilterByID(rentalID, rentalModel.FieldID, rentalModel.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to load rental for machine write: %w", err)
	}

	want, ok := machineStatusFor(rental.Status)
	if rental.ID != "" && ok && want == change.Status {
		return true, nil
	}

	log.Info().
		Str("rental_id", rentalID).
		Str("rental_status", string(rental.Status)).
		Str("machine_id", change.MachineID).
		Str("machine_status", string(change.Status)).
		Msg("stale machine write skipped")

	return false, nil
}
