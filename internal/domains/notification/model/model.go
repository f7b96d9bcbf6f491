package model

import (
	"encoding/json"
	"sitepro/shared/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID     = "id"
	FieldUserID = "user_id"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityNormal Priority = "NORMAL"
)

type Type string

const (
	TypeBidApproved     Type = "BID_APPROVED"
	TypeBidRejected     Type = "BID_REJECTED"
	TypeRentalRequested Type = "RENTAL_REQUESTED"
	TypeRentalApproved  Type = "RENTAL_APPROVED"
	TypeRentalRejected  Type = "RENTAL_REJECTED"
	TypeRentalAssigned  Type = "RENTAL_ASSIGNED"
	TypeRentalCompleted Type = "RENTAL_COMPLETED"
)

// Data links a notification back to the entity it is about.
type Data struct {
	EntityType string  `json:"entityType"`
	EntityID   string  `json:"entityId"`
	ProjectID  *string `json:"projectId,omitempty"`
}

type Notification struct {
	ID       string         `db:"id"`
	UserID   string         `db:"user_id"`
	Type     Type           `db:"type"`
	Title    string         `db:"title"`
	Message  string         `db:"message"`
	Priority Priority       `db:"priority"`
	Data     types.JSONText `db:"data"`
	IsRead   bool           `db:"is_read"`
	model.Metadata
}

// New builds an unread notification for userID. Data is stored as JSONB.
func New(userID string, typ Type, priority Priority, title, message string, data Data, createdBy string) Notification {
	raw, _ := json.Marshal(data) //nolint:errchkjson

	return Notification{
		ID:       uuid.NewString(),
		UserID:   userID,
		Type:     typ,
		Title:    title,
		Message:  message,
		Priority: priority,
		Data:     types.JSONText(raw),
		Metadata: model.NewMetadata(createdBy),
	}
}

// Payload decodes Data. A malformed document yields the zero value.
func (n Notification) Payload() Data {
	var data Data

	_ = n.Data.Unmarshal(&data)

	return data
}
