package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sitepro/config"
	"sitepro/infras/otel"
	auditModel "sitepro/internal/domains/audit/model"
	"sitepro/internal/domains/bid/model"
	"sitepro/internal/domains/bid/model/dto"
	"sitepro/internal/domains/bid/repository"
	notifModel "sitepro/internal/domains/notification/model"
	"sitepro/internal/orchestrator"
	"sitepro/shared"
	"sitepro/shared/cache"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	"sitepro/shared/failure"
	"sitepro/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBid = "bid:get"
)

var bidderTypes = map[string]model.BidderType{
	constant.RoleVendor:     model.BidderTypeVendor,
	constant.RoleCompany:    model.BidderTypeCompany,
	constant.RoleSupervisor: model.BidderTypeSupervisor,
}

type Bid interface {
	Submit(ctx context.Context, projectID string, actor gDto.Actor, req dto.CreateBidRequest) (dto.BidResponse, error)
	Get(ctx context.Context, id, viewerID string) (dto.BidResponse, error)
	Transition(ctx context.Context, id string, actor gDto.Actor, req dto.TransitionBidRequest) (dto.BidResponse, error)
}

type serviceImpl struct {
	repo         repository.Bid
	orchestrator orchestrator.Orchestrator
	cache        cache.RedisCache
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Bid, orchestrator orchestrator.Orchestrator, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Bid {
	return &serviceImpl{
		repo:         repo,
		orchestrator: orchestrator,
		cache:        cache,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, projectID string, actor gDto.Actor, req dto.CreateBidRequest) (res dto.BidResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bid.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	bidderType, ok := bidderTypes[actor.Role]
	if !ok {
		return res, failure.Forbidden(fmt.Sprintf("role %q cannot submit bids", actor.Role)) // nolint:wrapcheck
	}

	bid := req.ToModel(projectID, actor.ID, bidderType)

	if err = s.repo.Insert(ctx, bid); err != nil {
		log.Error().Err(err).Str("project_id", projectID).Msg("failed to submit bid")

		return res, fmt.Errorf("failed to submit bid: %w", err)
	}

	s.orchestrator.Audit(ctx, auditModel.Entry{
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserRole:    actor.Role,
		Action:      "SUBMIT",
		EntityType:  constant.EntityTypeBid,
		EntityID:    bid.ID,
		EntityName:  bid.BidderName,
		Description: fmt.Sprintf("bid submitted to project %s", projectID),
		Changes:     auditModel.Changes{After: map[string]any{"status": bid.Status}, Fields: []string{"status"}},
	})

	res.FromModel(bid, actor.ID)

	return res, nil
}

// Get returns the bid with contact details masked for viewerID where required.
func (s *serviceImpl) Get(ctx context.Context, id, viewerID string) (res dto.BidResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bid.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBid, id)

	var bid model.Bid

	if err := s.cache.Get(ctx, cacheKey, &bid); err == nil && bid.ID != constant.Empty {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bid")

		res.FromModel(bid, viewerID)

		return res, nil
	}

	bid, err = s.load(ctx, id)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, bid, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bid to cache")
		}
	}()

	res.FromModel(bid, viewerID)

	return res, nil
}

// Transition applies action to the bid on behalf of actor.
// The status write is guarded on SUBMITTED so only one of two racing transitions lands.
func (s *serviceImpl) Transition(ctx context.Context, id string, actor gDto.Actor, req dto.TransitionBidRequest) (res dto.BidResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bid.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	bid, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = authorize(bid, actor, req.Action); err != nil {
		return res, err
	}

	next, err := model.Next(bid.Status, req.Action)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	fields := s.transitionFields(actor, next, req)

	affected, err := s.repo.UpdateAffected(ctx,
		shared.WithModified(fields, actor.ID),
		shared.FilterByIDAndStatus(bid.ID, model.FieldID, string(bid.Status), model.FieldStatus, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Str("bid_id", bid.ID).Str("action", string(req.Action)).Msg("failed to update bid status")

		return res, fmt.Errorf("failed to update bid status: %w", err)
	}

	if affected == 0 {
		log.Warn().Str("bid_id", bid.ID).Str("action", string(req.Action)).Msg("bid changed status concurrently")

		return res, failure.InvalidState(fmt.Sprintf("bid is no longer in %s status", bid.Status)) // nolint:wrapcheck
	}

	before := bid.Status
	bid = applyFields(bid, fields)
	bid.ModifiedBy = actor.ID

	s.afterTransition(ctx, bid, before, actor, req.Action, fields)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBid, bid.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete bid from cache")
		}
	}()

	res.FromModel(bid, actor.ID)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Bid, error) {
	bid, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bid_id", id).Msg("failed to get bid")

		return bid, fmt.Errorf("failed to get bid: %w", err)
	}

	if bid.ID == constant.Empty {
		return bid, failure.NotFound("bid not found") // nolint:wrapcheck
	}

	return bid, nil
}

func authorize(bid model.Bid, actor gDto.Actor, action model.Action) error {
	switch action {
	case model.ActionApprove, model.ActionReject:
		if !actor.CanReview() {
			return failure.Forbidden(fmt.Sprintf("only a project manager can %s a bid", action)) // nolint:wrapcheck
		}
	case model.ActionWithdraw:
		if actor.ID != bid.BidderID {
			return failure.Forbidden("only the bidder can withdraw a bid") // nolint:wrapcheck
		}
	default:
		return failure.InvalidAction(fmt.Sprintf("unknown bid action: %q", string(action))) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) transitionFields(actor gDto.Actor, next model.Status, req dto.TransitionBidRequest) map[string]any {
	fields := map[string]any{model.FieldStatus: next}

	switch next {
	case model.StatusApproved:
		fields[model.FieldReviewedBy] = actor.ID
		fields[model.FieldReviewedAt] = timezone.Now()
		fields[model.FieldReviewNotes] = req.ReviewNotes
		fields[model.FieldContactVisible] = true
	case model.StatusRejected:
		reason := s.cfg.RejectionReason()
		if req.RejectionReason != nil && *req.RejectionReason != constant.Empty {
			reason = *req.RejectionReason
		}

		fields[model.FieldReviewedBy] = actor.ID
		fields[model.FieldReviewedAt] = timezone.Now()
		fields[model.FieldReviewNotes] = req.ReviewNotes
		fields[model.FieldRejectionReason] = reason
		fields[model.FieldContactVisible] = false
	}

	return fields
}

func applyFields(bid model.Bid, fields map[string]any) model.Bid {
	for k, v := range fields {
		switch k {
		case model.FieldStatus:
			bid.Status, _ = v.(model.Status)
		case model.FieldReviewedBy:
			bid.ReviewedBy = shared.Ptr(v.(string))
		case model.FieldReviewedAt:
			reviewedAt, _ := v.(time.Time)
			bid.ReviewedAt = &reviewedAt
		case model.FieldReviewNotes:
			bid.ReviewNotes, _ = v.(*string)
		case model.FieldRejectionReason:
			bid.RejectionReason = shared.Ptr(v.(string))
		case model.FieldContactVisible:
			bid.ContactVisible, _ = v.(bool)
		}
	}

	return bid
}

func (s *serviceImpl) afterTransition(ctx context.Context, bid model.Bid, before model.Status, actor gDto.Actor, action model.Action, fields map[string]any) {
	if action == model.ActionApprove {
		s.orchestrator.ProvisionApprovedBid(ctx, bid, actor)
	}

	data := notifModel.Data{EntityType: constant.EntityTypeBid, EntityID: bid.ID, ProjectID: &bid.ProjectID}

	switch action {
	case model.ActionApprove:
		s.orchestrator.Notify(ctx, notifModel.New(bid.BidderID, notifModel.TypeBidApproved, notifModel.PriorityHigh,
			"Bid approved", fmt.Sprintf("Your bid for project %s has been approved", bid.ProjectID), data, actor.ID))
	case model.ActionReject:
		s.orchestrator.Notify(ctx, notifModel.New(bid.BidderID, notifModel.TypeBidRejected, notifModel.PriorityNormal,
			"Bid rejected", fmt.Sprintf("Your bid for project %s was rejected: %s", bid.ProjectID, *bid.RejectionReason), data, actor.ID))
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
		EntityType:  constant.EntityTypeBid,
		EntityID:    bid.ID,
		EntityName:  bid.BidderName,
		Description: fmt.Sprintf("bid %s moved from %s to %s", bid.ID, before, bid.Status),
		Changes:     auditModel.StatusChange(string(before), string(bid.Status), extra),
	})
}
