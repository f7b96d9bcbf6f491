package orchestrator

//go:generate go run go.uber.org/mock/mockgen -source=./orchestrator.go -destination=./mocks/orchestrator_mock.go -package=mocks

import (
	"context"
	"sitepro/config"
	"sitepro/infras/otel"
	auditModel "sitepro/internal/domains/audit/model"
	auditService "sitepro/internal/domains/audit/service"
	bidModel "sitepro/internal/domains/bid/model"
	"sitepro/internal/domains/bid/policy"
	contractModel "sitepro/internal/domains/contract/model"
	contractRepo "sitepro/internal/domains/contract/repository"
	machineModel "sitepro/internal/domains/machine/model"
	machineRepo "sitepro/internal/domains/machine/repository"
	memberModel "sitepro/internal/domains/member/model"
	memberRepo "sitepro/internal/domains/member/repository"
	notifModel "sitepro/internal/domains/notification/model"
	notifService "sitepro/internal/domains/notification/service"
	sideEffectModel "sitepro/internal/domains/sideeffect/model"
	sideEffectRepo "sitepro/internal/domains/sideeffect/repository"
	"sitepro/shared/constant"
	gDto "sitepro/shared/dto"
	gModel "sitepro/shared/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProvisionResult reports which best-effort steps of a bid approval landed.
type ProvisionResult struct {
	Member   *memberModel.Member
	Contract *contractModel.Contract
	// ContractCreated is false when the bid already had a contract.
	ContractCreated bool
}

// Orchestrator runs the writes that follow a committed status change.
// None of its operations fail the caller; failed writes are logged and kept in the failure ledger.
type Orchestrator interface {
	ProvisionApprovedBid(ctx context.Context, bid bidModel.Bid, actor gDto.Actor) ProvisionResult
	SyncMachine(ctx context.Context, entityID string, change machineModel.StatusChange) bool
	Notify(ctx context.Context, notifications ...notifModel.Notification)
	Audit(ctx context.Context, entry auditModel.Entry)
}

type orchestratorImpl struct {
	memberRepo   memberRepo.Member
	contractRepo contractRepo.Contract
	machineRepo  machineRepo.Machine
	failureRepo  sideEffectRepo.Failure
	notifService notifService.Notification
	auditService auditService.AuditLog
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	memberRepo memberRepo.Member,
	contractRepo contractRepo.Contract,
	machineRepo machineRepo.Machine,
	failureRepo sideEffectRepo.Failure,
	notifService notifService.Notification,
	auditService auditService.AuditLog,
	cfg *config.Config,
	otel otel.Otel,
) Orchestrator {
	return &orchestratorImpl{
		memberRepo:   memberRepo,
		contractRepo: contractRepo,
		machineRepo:  machineRepo,
		failureRepo:  failureRepo,
		notifService: notifService,
		auditService: auditService,
		cfg:          cfg,
		otel:         otel,
	}
}

// ProvisionApprovedBid enrolls the bidder on the project team and issues the bid's contract.
func (o *orchestratorImpl) ProvisionApprovedBid(ctx context.Context, bid bidModel.Bid, actor gDto.Actor) ProvisionResult {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".orchestrator.ProvisionApprovedBid")
	defer scope.End()

	var res ProvisionResult

	member := BuildMember(bid, actor.ID)
	if err := o.memberRepo.Upsert(ctx, member); err != nil {
		o.recordFailure(ctx, sideEffectModel.KindMembershipUpsert, constant.EntityTypeBid, bid.ID, member, err, actor.ID)
	} else {
		res.Member = &member
	}

	contract := BuildContract(bid, o.cfg.ContractDays(), actor.ID)

	created, err := o.contractRepo.InsertOnce(ctx, contract)
	if err != nil {
		o.recordFailure(ctx, sideEffectModel.KindContractIssue, constant.EntityTypeBid, bid.ID, contract, err, actor.ID)

		return res
	}

	res.Contract = &contract
	res.ContractCreated = created

	if !created {
		log.Info().Str("bid_id", bid.ID).Msg("contract already issued for bid")
	}

	return res
}

// SyncMachine writes a machine's status and links on behalf of entityID. It reports whether the write landed.
func (o *orchestratorImpl) SyncMachine(ctx context.Context, entityID string, change machineModel.StatusChange) bool {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".orchestrator.SyncMachine")
	defer scope.End()

	if err := o.machineRepo.SetStatus(ctx, change); err != nil {
		o.recordFailure(ctx, sideEffectModel.KindMachineStatus, constant.EntityTypeRental, entityID, change, err, change.ModifiedBy)

		return false
	}

	return true
}

func (o *orchestratorImpl) Notify(ctx context.Context, notifications ...notifModel.Notification) {
	if len(notifications) == 0 {
		return
	}

	if err := o.notifService.Dispatch(ctx, notifications...); err != nil {
		log.Error().Err(err).Int("count", len(notifications)).Msg("failed to dispatch notifications")
	}
}

func (o *orchestratorImpl) Audit(ctx context.Context, entry auditModel.Entry) {
	if err := o.auditService.Log(ctx, entry); err != nil {
		log.Error().Err(err).
			Str("entity_type", entry.EntityType).
			Str("entity_id", entry.EntityID).
			Str("action", entry.Action).
			Msg("failed to write audit log")
	}
}

func (o *orchestratorImpl) recordFailure(ctx context.Context, kind sideEffectModel.Kind, entityType, entityID string, payload any, cause error, actorID string) {
	log.Error().Err(cause).
		Str("kind", string(kind)).
		Str("entity_type", entityType).
		Str("entity_id", entityID).
		Msg("side effect failed")

	failure, err := sideEffectModel.New(kind, entityType, entityID, payload, cause, actorID)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Str("entity_id", entityID).Msg("failed to build side effect failure")

		return
	}

	if err := o.failureRepo.Insert(ctx, failure); err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Str("entity_id", entityID).Msg("failed to record side effect failure")
	}
}

// BuildMember is the team membership an approved bid grants its bidder.
func BuildMember(bid bidModel.Bid, createdBy string) memberModel.Member {
	return memberModel.Member{
		ID:        uuid.NewString(),
		ProjectID: bid.ProjectID,
		UserID:    bid.BidderID,
		Role:      policy.MembershipRole(bid.BidderType),
		Metadata:  gModel.NewMetadata(createdBy),
	}
}

// BuildContract derives the contract for an approved bid. Without an end date the contract runs for defaultDays.
func BuildContract(bid bidModel.Bid, defaultDays int, createdBy string) contractModel.Contract {
	terms := policy.Terms(bid.BidderType, bid.HasMachines())

	endDate := bid.StartDate.AddDate(0, 0, defaultDays)
	if bid.EndDate != nil {
		endDate = *bid.EndDate
	}

	return contractModel.Contract{
		ID:         uuid.NewString(),
		BidID:      bid.ID,
		ProjectID:  bid.ProjectID,
		VendorID:   bid.BidderID,
		Role:       terms.Role,
		ScopeType:  terms.ScopeType,
		StartDate:  bid.StartDate,
		EndDate:    endDate,
		AgreedRate: bid.ProposedAmount,
		Currency:   bid.Currency,
		Status:     contractModel.StatusActive,
		Metadata:   gModel.NewMetadata(createdBy),
	}
}
