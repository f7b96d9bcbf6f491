package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sitepro/config"
	"sitepro/infras/otel"
	auditModel "sitepro/internal/domains/audit/model"
	machineModel "sitepro/internal/domains/machine/model"
	machineRepo "sitepro/internal/domains/machine/repository"
	notifModel "sitepro/internal/domains/notification/model"
	"sitepro/internal/domains/rental/cost"
	"sitepro/internal/domains/rental/model"
	"sitepro/internal/domains/rental/model/dto"
	"sitepro/internal/domains/rental/repository"
	"sitepro/internal/orchestrator"
	"sitepro/shared"
	"sitepro/shared/cache"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	"sitepro/shared/failure"
	"sitepro/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRental = "rental:get"
)

type Rental interface {
	Request(ctx context.Context, actor gDto.Actor, req dto.CreateRentalRequest) (dto.RentalResponse, error)
	Get(ctx context.Context, id string) (dto.RentalResponse, error)
	Transition(ctx context.Context, id string, actor gDto.Actor, req dto.TransitionRentalRequest) (dto.RentalResponse, error)
	LogUsage(ctx context.Context, id string, actor gDto.Actor, req dto.LogUsageRequest) error
}

type serviceImpl struct {
	repo         repository.Rental
	machineRepo  machineRepo.Machine
	orchestrator orchestrator.Orchestrator
	cache        cache.RedisCache
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Rental,
	machineRepo machineRepo.Machine,
	orchestrator orchestrator.Orchestrator,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Rental {
	return &serviceImpl{
		repo:         repo,
		machineRepo:  machineRepo,
		orchestrator: orchestrator,
		cache:        cache,
		cfg:          cfg,
		otel:         otel,
	}
}

// Request asks the machine's vendor to rent it out to a project.
func (s *serviceImpl) Request(ctx context.Context, actor gDto.Actor, req dto.CreateRentalRequest) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.Request")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !actor.CanReview() {
		return res, failure.Forbidden("only a project manager can request a rental") // nolint:wrapcheck
	}

	machine, err := s.machineRepo.Get(ctx, shared.FilterByID(req.MachineID, machineModel.FieldID, machineModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("machine_id", req.MachineID).Msg("failed to get machine")

		return res, fmt.Errorf("failed to get machine: %w", err)
	}

	if machine.ID == constant.Empty {
		return res, failure.NotFound("machine not found") // nolint:wrapcheck
	}

	rental := req.ToModel(machine, actor.ID)

	if err = s.repo.Insert(ctx, rental); err != nil {
		log.Error().Err(err).Str("machine_id", machine.ID).Msg("failed to request rental")

		return res, fmt.Errorf("failed to request rental: %w", err)
	}

	s.orchestrator.Notify(ctx, notifModel.New(rental.VendorID, notifModel.TypeRentalRequested, notifModel.PriorityNormal,
		"Rental requested", fmt.Sprintf("%s requested machine %s for project %s", actor.Name, rental.MachineCode, rental.ProjectName),
		rentalData(rental), actor.ID))

	s.orchestrator.Audit(ctx, auditModel.Entry{
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserRole:    actor.Role,
		Action:      "REQUEST",
		EntityType:  constant.EntityTypeRental,
		EntityID:    rental.ID,
		EntityName:  rental.MachineCode,
		Description: fmt.Sprintf("rental of machine %s requested for project %s", rental.MachineCode, rental.ProjectID),
		Changes:     auditModel.Changes{After: map[string]any{"status": rental.Status}, Fields: []string{"status"}},
	})

	res.FromModel(rental)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRental, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rental")

		return res, nil
	}

	rental, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(rental)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rental to cache")
		}
	}()

	return res, nil
}

// Transition applies action to the rental on behalf of actor.
// The write is guarded on the action's source status; a rental that moved meanwhile yields InvalidState.
func (s *serviceImpl) Transition(ctx context.Context, id string, actor gDto.Actor, req dto.TransitionRentalRequest) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	rental, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = authorize(rental, actor, req.Action); err != nil {
		return res, err
	}

	next, err := model.Next(rental.Status, req.Action)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	updated, fields := s.apply(rental, next, actor, req)

	affected, err := s.repo.UpdateAffected(ctx,
		shared.WithModified(fields, actor.ID),
		shared.FilterByIDAndStatus(rental.ID, model.FieldID, string(rental.Status), model.FieldStatus, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Str("rental_id", rental.ID).Str("action", string(req.Action)).Msg("failed to update rental status")

		return res, fmt.Errorf("failed to update rental status: %w", err)
	}

	if affected == 0 {
		log.Warn().Str("rental_id", rental.ID).Str("action", string(req.Action)).Msg("rental changed status concurrently")

		return res, failure.InvalidState(fmt.Sprintf("rental is no longer in %s status", rental.Status)) // nolint:wrapcheck
	}

	s.afterTransition(ctx, rental, updated, actor, req.Action, fields)

	s.invalidate(ctx, rental.ID)

	res.FromModel(updated)

	return res, nil
}

// LogUsage records hours worked on the rental and adds them to its running total.
func (s *serviceImpl) LogUsage(ctx context.Context, id string, actor gDto.Actor, req dto.LogUsageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.LogUsage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.HoursUsed <= 0 {
		return failure.BadRequestFromString("hoursUsed must be greater than 0") // nolint:wrapcheck
	}

	usage := req.ToModel(id, actor.ID)

	found, err := s.repo.LogUsage(ctx, usage)
	if err != nil {
		log.Error().Err(err).Str("rental_id", id).Msg("failed to log rental usage")

		return fmt.Errorf("failed to log rental usage: %w", err)
	}

	if !found {
		return failure.NotFound("rental not found") // nolint:wrapcheck
	}

	s.orchestrator.Audit(ctx, auditModel.Entry{
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserRole:    actor.Role,
		Action:      "LOG_USAGE",
		EntityType:  constant.EntityTypeRental,
		EntityID:    id,
		Description: fmt.Sprintf("%.2f hours logged", req.HoursUsed),
		Changes: auditModel.Changes{
			After:  map[string]any{"hoursUsed": req.HoursUsed, "date": usage.Date},
			Fields: []string{model.FieldTotalHoursUsed},
		},
	})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Rental, error) {
	rental, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("rental_id", id).Msg("failed to get rental")

		return rental, fmt.Errorf("failed to get rental: %w", err)
	}

	if rental.ID == constant.Empty {
		return rental, failure.NotFound("rental not found") // nolint:wrapcheck
	}

	return rental, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRental, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete rental from cache")
		}
	}()
}

func authorize(rental model.Rental, actor gDto.Actor, action model.Action) error {
	switch action {
	case model.ActionApprove, model.ActionReject:
		if actor.ID != rental.VendorID {
			return failure.Forbidden(fmt.Sprintf("only the machine's vendor can %s this rental", action)) // nolint:wrapcheck
		}
	case model.ActionAssign:
		if actor.ID != rental.RequestedBy {
			return failure.Forbidden("only the requester can assign this rental") // nolint:wrapcheck
		}
	case model.ActionStart, model.ActionComplete:
		participant := actor.ID == rental.VendorID || actor.ID == rental.RequestedBy ||
			(rental.AssignedToUserID != nil && actor.ID == *rental.AssignedToUserID)

		if !participant && !actor.HasRole(constant.RoleAdmin, constant.RoleSuperAdmin) {
			return failure.Forbidden(fmt.Sprintf("only a rental participant can %s this rental", action)) // nolint:wrapcheck
		}
	default:
		return failure.InvalidAction(fmt.Sprintf("unknown rental action: %q", string(action))) // nolint:wrapcheck
	}

	return nil
}

// apply returns the rental as it is after moving to next, along with the columns that changed.
func (s *serviceImpl) apply(rental model.Rental, next model.Status, actor gDto.Actor, req dto.TransitionRentalRequest) (model.Rental, map[string]any) {
	now := timezone.Now()
	fields := map[string]any{model.FieldStatus: next}

	rental.Status = next
	rental.ModifiedAt = now
	rental.ModifiedBy = actor.ID

	switch next {
	case model.StatusApproved:
		rate := rental.DailyRate

		switch {
		case req.AgreedRate != nil:
			rate = *req.AgreedRate
		case rental.ProposedRate != nil:
			rate = *rental.ProposedRate
		}

		if rental.RequestedDays <= 0 {
			rental.RequestedDays = s.cfg.RequestedDays()
			fields[model.FieldRequestedDays] = rental.RequestedDays
		}

		estimated := cost.Estimated(rate, rental.RequestedDays)
		rental.AgreedRate = &rate
		rental.EstimatedCost = &estimated
		fields[model.FieldAgreedRate] = rate
		fields[model.FieldEstimatedCost] = estimated
	case model.StatusCancelled:
		reason := s.cfg.CancellationReason()
		if req.CancellationReason != nil && *req.CancellationReason != constant.Empty {
			reason = *req.CancellationReason
		}

		rental.CancellationReason = &reason
		fields[model.FieldCancellationReason] = reason
	case model.StatusAssigned:
		rental.AssignedBy = &actor.ID
		rental.AssignedAt = &now
		rental.AssignedToUserID = req.AssignedToUserID
		rental.AssignedToUserName = req.AssignedToUserName
		fields[model.FieldAssignedBy] = actor.ID
		fields[model.FieldAssignedAt] = now
		fields[model.FieldAssignedToUserID] = req.AssignedToUserID
		fields[model.FieldAssignedToUserName] = req.AssignedToUserName
	case model.StatusInUse:
		rental.ActualStartDate = &now
		fields[model.FieldActualStartDate] = now
	case model.StatusCompleted:
		rental.ActualEndDate = &now
		rental.IsAvailableForRent = false
		fields[model.FieldActualEndDate] = now
		fields[model.FieldIsAvailableForRent] = false

		if actual := cost.Actual(rental.EffectiveRate(), rental.ActualStartDate, now); actual != nil {
			rental.ActualCost = actual
			fields[model.FieldActualCost] = *actual
		}
	}

	return rental, fields
}

func (s *serviceImpl) afterTransition(ctx context.Context, before, after model.Rental, actor gDto.Actor, action model.Action, fields map[string]any) {
	switch action {
	case model.ActionAssign:
		s.orchestrator.SyncMachine(ctx, after.ID, machineModel.StatusChange{
			MachineID:         after.MachineID,
			Status:            machineModel.StatusAssigned,
			CurrentProjectID:  &after.ProjectID,
			CurrentAssignedTo: after.AssignedToUserID,
			ModifiedBy:        actor.ID,
		})
	case model.ActionComplete:
		s.orchestrator.SyncMachine(ctx, after.ID, machineModel.StatusChange{
			MachineID:  after.MachineID,
			Status:     machineModel.StatusAvailable,
			ModifiedBy: actor.ID,
		})
	}

	if notifications := s.notifications(after, actor, action); len(notifications) > 0 {
		s.orchestrator.Notify(ctx, notifications...)
	}

	extra := make(map[string]any, len(fields))

	for k, v := range fields {
		if k != model.FieldStatus {
			extra[k] = v
		}
	}

	s.orchestrator.Audit(ctx, auditModel.Entry{
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserRole:    actor.Role,
		Action:      string(action),
		EntityType:  constant.EntityTypeRental,
		EntityID:    after.ID,
		EntityName:  after.MachineCode,
		Description: fmt.Sprintf("rental %s moved from %s to %s", after.ID, before.Status, after.Status),
		Changes:     auditModel.StatusChange(string(before.Status), string(after.Status), extra),
	})
}

func (s *serviceImpl) notifications(rental model.Rental, actor gDto.Actor, action model.Action) []notifModel.Notification {
	var (
		recipients []string
		typ        notifModel.Type
		title      string
		message    string
	)

	switch action {
	case model.ActionApprove:
		recipients = []string{rental.RequestedBy}
		typ, title = notifModel.TypeRentalApproved, "Rental approved"
		message = fmt.Sprintf("Machine %s was approved for %s at %.2f per day", rental.MachineCode, rental.ProjectName, rental.EffectiveRate())
	case model.ActionReject:
		recipients = []string{rental.RequestedBy}
		typ, title = notifModel.TypeRentalRejected, "Rental rejected"
		message = fmt.Sprintf("Machine %s was not rented to %s: %s", rental.MachineCode, rental.ProjectName, *rental.CancellationReason)
	case model.ActionAssign:
		recipients = shared.CompactIDs(&rental.VendorID, rental.AssignedToUserID)
		typ, title = notifModel.TypeRentalAssigned, "Machine assigned"
		message = fmt.Sprintf("Machine %s is assigned on %s", rental.MachineCode, rental.ProjectName)
	case model.ActionComplete:
		recipients = shared.CompactIDs(&rental.VendorID, &rental.RequestedBy, rental.AssignedToUserID)
		typ, title = notifModel.TypeRentalCompleted, "Rental completed"
		message = fmt.Sprintf("Rental of machine %s on %s is completed", rental.MachineCode, rental.ProjectName)
	default:
		return nil
	}

	res := make([]notifModel.Notification, 0, len(recipients))

	for _, userID := range recipients {
		res = append(res, notifModel.New(userID, typ, notifModel.PriorityNormal, title, message, rentalData(rental), actor.ID))
	}

	return res
}

func rentalData(rental model.Rental) notifModel.Data {
	return notifModel.Data{
		EntityType: constant.EntityTypeRental,
		EntityID:   rental.ID,
		ProjectID:  &rental.ProjectID,
	}
}
