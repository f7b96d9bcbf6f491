package model

import (
	"encoding/json"
	"fmt"
	"sitepro/shared/model"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "side_effect_failures"
	EntityName = "side_effect_failure"

	FieldID         = "id"
	FieldResolved   = "resolved"
	FieldResolvedAt = "resolved_at"
	FieldAttempts   = "attempts"
	FieldError      = "error"
	FieldCreatedAt  = "created_at"
)

type Kind string

const (
	KindMembershipUpsert Kind = "MEMBERSHIP_UPSERT"
	KindContractIssue    Kind = "CONTRACT_ISSUE"
	KindMachineStatus    Kind = "MACHINE_STATUS"
)

// Failure records a best-effort write that did not land, with enough payload to replay it.
type Failure struct {
	ID         string         `db:"id"`
	Kind       Kind           `db:"kind"`
	EntityType string         `db:"entity_type"`
	EntityID   string         `db:"entity_id"`
	Payload    types.JSONText `db:"payload"`
	Error      string         `db:"error"`
	Attempts   int            `db:"attempts"`
	Resolved   bool           `db:"resolved"`
	ResolvedAt *time.Time     `db:"resolved_at"`
	model.Metadata
}

func New(kind Kind, entityType, entityID string, payload any, cause error, createdBy string) (Failure, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Failure{}, fmt.Errorf("failed to encode side effect payload: %w", err)
	}

	return Failure{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    types.JSONText(raw),
		Error:      cause.Error(),
		Attempts:   1,
		Metadata:   model.NewMetadata(createdBy),
	}, nil
}
