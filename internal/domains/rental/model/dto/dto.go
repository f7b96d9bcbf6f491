package dto

import (
	machineModel "sitepro/internal/domains/machine/model"
	"sitepro/internal/domains/rental/model"
	gModel "sitepro/shared/model"
	"sitepro/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	MachineID     string   `json:"machineId"     validate:"required"`
	ProjectID     string   `json:"projectId"     validate:"required"`
	ProjectName   string   `json:"projectName"   validate:"required,max=150"`
	ProposedRate  *float64 `json:"proposedRate"  validate:"omitempty,gt=0"`
	RequestedDays int      `json:"requestedDays" validate:"min=0"`
}

// ToModel builds a rental request for machine. Rate and vendor are copied from the machine.
func (c *CreateRentalRequest) ToModel(machine machineModel.Machine, requestedBy string) model.Rental {
	return model.Rental{
		ID:                 uuid.NewString(),
		MachineID:          machine.ID,
		MachineCode:        machine.Code,
		VendorID:           machine.VendorID,
		RequestedBy:        requestedBy,
		ProjectID:          c.ProjectID,
		ProjectName:        c.ProjectName,
		DailyRate:          machine.DailyRate,
		ProposedRate:       c.ProposedRate,
		RequestedDays:      c.RequestedDays,
		Status:             model.StatusRequested,
		IsAvailableForRent: true,
		Metadata:           gModel.NewMetadata(requestedBy),
	}
}

type TransitionRentalRequest struct {
	Action             model.Action `json:"action"             validate:"notblank"`
	AgreedRate         *float64     `json:"agreedRate"         validate:"omitempty,gt=0"`
	CancellationReason *string      `json:"cancellationReason" validate:"omitempty,max=500"`
	AssignedToUserID   *string      `json:"assignedToUserId"   validate:"omitempty,max=64"`
	AssignedToUserName *string      `json:"assignedToUserName" validate:"omitempty,max=150"`
}

type LogUsageRequest struct {
	HoursUsed float64    `json:"hoursUsed" validate:"gt=0"`
	Notes     string     `json:"notes"     validate:"max=1000"`
	Date      *time.Time `json:"date"`
}

// ToModel builds the usage row. Without a date the usage is logged for now.
func (l *LogUsageRequest) ToModel(rentalID, loggedBy string) model.UsageLog {
	date := timezone.Now()
	if l.Date != nil {
		date = *l.Date
	}

	return model.UsageLog{
		ID:        uuid.NewString(),
		RentalID:  rentalID,
		Date:      date,
		HoursUsed: l.HoursUsed,
		Notes:     l.Notes,
		LoggedBy:  loggedBy,
		Metadata:  gModel.NewMetadata(loggedBy),
	}
}

type RentalResponse struct {
	ID                 string       `json:"id"`
	MachineID          string       `json:"machineId"`
	MachineCode        string       `json:"machineCode"`
	VendorID           string       `json:"vendorId"`
	RequestedBy        string       `json:"requestedBy"`
	ProjectID          string       `json:"projectId"`
	ProjectName        string       `json:"projectName"`
	DailyRate          float64      `json:"dailyRate"`
	ProposedRate       *float64     `json:"proposedRate,omitempty"`
	AgreedRate         *float64     `json:"agreedRate,omitempty"`
	RequestedDays      int          `json:"requestedDays"`
	EstimatedCost      *float64     `json:"estimatedCost,omitempty"`
	ActualCost         *float64     `json:"actualCost,omitempty"`
	Status             model.Status `json:"status"`
	CancellationReason *string      `json:"cancellationReason,omitempty"`
	AssignedBy         *string      `json:"assignedBy,omitempty"`
	AssignedAt         *time.Time   `json:"assignedAt,omitempty"`
	AssignedToUserID   *string      `json:"assignedToUserId,omitempty"`
	AssignedToUserName *string      `json:"assignedToUserName,omitempty"`
	ActualStartDate    *time.Time   `json:"actualStartDate,omitempty"`
	ActualEndDate      *time.Time   `json:"actualEndDate,omitempty"`
	IsAvailableForRent bool         `json:"isAvailableForRent"`
	TotalHoursUsed     float64      `json:"totalHoursUsed"`
	CreatedAt          time.Time    `json:"createdAt"`
	ModifiedAt         time.Time    `json:"modifiedAt"`
}

func (r *RentalResponse) FromModel(m model.Rental) {
	r.ID = m.ID
	r.MachineID = m.MachineID
	r.MachineCode = m.MachineCode
	r.VendorID = m.VendorID
	r.RequestedBy = m.RequestedBy
	r.ProjectID = m.ProjectID
	r.ProjectName = m.ProjectName
	r.DailyRate = m.DailyRate
	r.ProposedRate = m.ProposedRate
	r.AgreedRate = m.AgreedRate
	r.RequestedDays = m.RequestedDays
	r.EstimatedCost = m.EstimatedCost
	r.ActualCost = m.ActualCost
	r.Status = m.Status
	r.CancellationReason = m.CancellationReason
	r.AssignedBy = m.AssignedBy
	r.AssignedAt = m.AssignedAt
	r.AssignedToUserID = m.AssignedToUserID
	r.AssignedToUserName = m.AssignedToUserName
	r.ActualStartDate = m.ActualStartDate
	r.ActualEndDate = m.ActualEndDate
	r.IsAvailableForRent = m.IsAvailableForRent
	r.TotalHoursUsed = m.TotalHoursUsed
	r.CreatedAt = m.CreatedAt
	r.ModifiedAt = m.ModifiedAt
}
