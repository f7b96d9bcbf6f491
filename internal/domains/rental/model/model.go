package model

import (
	"sitepro/shared/model"
	"time"
)

const (
	TableName  = "machine_rentals"
	EntityName = "rental"

	FieldID                 = "id"
	FieldStatus             = "status"
	FieldAgreedRate         = "agreed_rate"
	FieldRequestedDays      = "requested_days"
	FieldEstimatedCost      = "estimated_cost"
	FieldActualCost         = "actual_cost"
	FieldCancellationReason = "cancellation_reason"
	FieldAssignedBy         = "assigned_by"
	FieldAssignedAt         = "assigned_at"
	FieldAssignedToUserID   = "assigned_to_user_id"
	FieldAssignedToUserName = "assigned_to_user_name"
	FieldActualStartDate    = "actual_start_date"
	FieldActualEndDate      = "actual_end_date"
	FieldIsAvailableForRent = "is_available_for_rent"
	FieldTotalHoursUsed     = "total_hours_used"
)

type Status string

const (
	StatusRequested Status = "REQUESTED"
	StatusApproved  Status = "APPROVED"
	StatusCancelled Status = "CANCELLED"
	StatusAssigned  Status = "ASSIGNED"
	StatusInUse     Status = "IN_USE"
	StatusCompleted Status = "COMPLETED"
)

type Rental struct {
	ID                 string     `db:"id"`
	MachineID          string     `db:"machine_id"`
	MachineCode        string     `db:"machine_code"`
	VendorID           string     `db:"vendor_id"`
	RequestedBy        string     `db:"requested_by"`
	ProjectID          string     `db:"project_id"`
	ProjectName        string     `db:"project_name"`
	DailyRate          float64    `db:"daily_rate"`
	ProposedRate       *float64   `db:"proposed_rate"`
	AgreedRate         *float64   `db:"agreed_rate"`
	RequestedDays      int        `db:"requested_days"`
	EstimatedCost      *float64   `db:"estimated_cost"`
	ActualCost         *float64   `db:"actual_cost"`
	Status             Status     `db:"status"`
	CancellationReason *string    `db:"cancellation_reason"`
	AssignedBy         *string    `db:"assigned_by"`
	AssignedAt         *time.Time `db:"assigned_at"`
	AssignedToUserID   *string    `db:"assigned_to_user_id"`
	AssignedToUserName *string    `db:"assigned_to_user_name"`
	ActualStartDate    *time.Time `db:"actual_start_date"`
	ActualEndDate      *time.Time `db:"actual_end_date"`
	IsAvailableForRent bool       `db:"is_available_for_rent"`
	TotalHoursUsed     float64    `db:"total_hours_used"`
	model.Metadata
}

// EffectiveRate is the agreed rate once negotiated, the daily list rate before that.
func (r Rental) EffectiveRate() float64 {
	if r.AgreedRate != nil {
		return *r.AgreedRate
	}

	return r.DailyRate
}

const (
	UsageLogTableName  = "rental_usage_logs"
	UsageLogEntityName = "rental_usage_log"

	FieldUsageLogRentalID = "rental_id"
)

type UsageLog struct {
	ID        string    `db:"id"`
	RentalID  string    `db:"rental_id"`
	Date      time.Time `db:"date"`
	HoursUsed float64   `db:"hours_used"`
	Notes     string    `db:"notes"`
	LoggedBy  string    `db:"logged_by"`
	model.Metadata
}
