package model

import (
	"encoding/json"
	"maps"
	"sitepro/shared/model"
	"slices"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID       = "id"
	FieldEntityID = "entity_id"
)

type Changes struct {
	Before map[string]any `json:"before,omitempty"`
	After  map[string]any `json:"after,omitempty"`
	Fields []string       `json:"fields,omitempty"`
}

type AuditLog struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	UserName    string         `db:"user_name"`
	UserRole    string         `db:"user_role"`
	Action      string         `db:"action"`
	EntityType  string         `db:"entity_type"`
	EntityID    string         `db:"entity_id"`
	EntityName  string         `db:"entity_name"`
	Description string         `db:"description"`
	Changes     types.JSONText `db:"changes"`
	model.Metadata
}

// Entry is what callers describe; Log stamps identity and serializes changes.
type Entry struct {
	UserID      string
	UserName    string
	UserRole    string
	Action      string
	EntityType  string
	EntityID    string
	EntityName  string
	Description string
	Changes     Changes
}

func (e Entry) ToModel() AuditLog {
	raw, err := json.Marshal(e.Changes)
	if err != nil {
		raw = []byte("{}")
	}

	return AuditLog{
		ID:          uuid.NewString(),
		UserID:      e.UserID,
		UserName:    e.UserName,
		UserRole:    e.UserRole,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		EntityName:  e.EntityName,
		Description: e.Description,
		Changes:     types.JSONText(raw),
		Metadata:    model.NewMetadata(e.UserID),
	}
}

// StatusChange describes a single status move with any extra fields the transition wrote.
func StatusChange(before, after string, extra map[string]any) Changes {
	fields := []string{"status"}
	afterMap := map[string]any{"status": after}

	for _, k := range slices.Sorted(maps.Keys(extra)) {
		afterMap[k] = extra[k]
		fields = append(fields, k)
	}

	return Changes{
		Before: map[string]any{"status": before},
		After:  afterMap,
		Fields: fields,
	}
}
