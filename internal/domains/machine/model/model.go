package model

import "sitepro/shared/model"

const (
	TableName  = "machines"
	EntityName = "machine"

	FieldID                = "id"
	FieldStatus            = "status"
	FieldCurrentProjectID  = "current_project_id"
	FieldCurrentAssignedTo = "current_assigned_to"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusAssigned  Status = "ASSIGNED"
)

type Machine struct {
	ID                string  `db:"id"`
	Code              string  `db:"code"`
	VendorID          string  `db:"vendor_id"`
	Name              string  `db:"name"`
	DailyRate         float64 `db:"daily_rate"`
	Status            Status  `db:"status"`
	CurrentProjectID  *string `db:"current_project_id"`
	CurrentAssignedTo *string `db:"current_assigned_to"`
	model.Metadata
}

// StatusChange is the write a rental transition makes on its machine.
// Nil links are stored as NULL, clearing them.
type StatusChange struct {
	MachineID         string  `json:"machineId"`
	Status            Status  `json:"status"`
	CurrentProjectID  *string `json:"currentProjectId,omitempty"`
	CurrentAssignedTo *string `json:"currentAssignedTo,omitempty"`
	ModifiedBy        string  `json:"modifiedBy"`
}

func (c StatusChange) Fields() map[string]any {
	return map[string]any{
		FieldStatus:            c.Status,
		FieldCurrentProjectID:  c.CurrentProjectID,
		FieldCurrentAssignedTo: c.CurrentAssignedTo,
	}
}
