package dto

import (
	"sitepro/internal/domains/bid/model"
	"sitepro/internal/domains/bid/policy"
	gModel "sitepro/shared/model"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateBidRequest struct {
	BidderName      string     `json:"bidderName"      validate:"required,max=150"`
	ProposedAmount  float64    `json:"proposedAmount"  validate:"gt=0"`
	Currency        string     `json:"currency"        validate:"required,max=10"`
	StartDate       time.Time  `json:"startDate"       validate:"required"`
	EndDate         *time.Time `json:"endDate"         validate:"omitempty,gtfield=StartDate"`
	ManpowerOffered int        `json:"manpowerOffered" validate:"min=0"`
	MachinesOffered []string   `json:"machinesOffered" validate:"omitempty,dive,notblank"`
	BidderEmail     string     `json:"bidderEmail"     validate:"required,email"`
	BidderPhone     string     `json:"bidderPhone"     validate:"required,max=30"`
}

// ToModel builds a freshly submitted bid. Contact details stay hidden until approval.
func (c *CreateBidRequest) ToModel(projectID, bidderID string, bidderType model.BidderType) model.Bid {
	machines := pq.StringArray{}
	if len(c.MachinesOffered) > 0 {
		machines = append(machines, c.MachinesOffered...)
	}

	return model.Bid{
		ID:              uuid.NewString(),
		ProjectID:       projectID,
		BidderID:        bidderID,
		BidderType:      bidderType,
		BidderName:      c.BidderName,
		ProposedAmount:  c.ProposedAmount,
		Currency:        c.Currency,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		ManpowerOffered: c.ManpowerOffered,
		MachinesOffered: machines,
		BidderEmail:     c.BidderEmail,
		BidderPhone:     c.BidderPhone,
		Status:          model.StatusSubmitted,
		ContactVisible:  false,
		Metadata:        gModel.NewMetadata(bidderID),
	}
}

type TransitionBidRequest struct {
	Action          model.Action `json:"action"          validate:"notblank"`
	ReviewNotes     *string      `json:"reviewNotes"     validate:"omitempty,max=2000"`
	RejectionReason *string      `json:"rejectionReason" validate:"omitempty,max=500"`
}

type BidResponse struct {
	ID              string           `json:"id"`
	ProjectID       string           `json:"projectId"`
	BidderID        string           `json:"bidderId"`
	BidderType      model.BidderType `json:"bidderType"`
	BidderName      string           `json:"bidderName"`
	ProposedAmount  float64          `json:"proposedAmount"`
	Currency        string           `json:"currency"`
	StartDate       time.Time        `json:"startDate"`
	EndDate         *time.Time       `json:"endDate,omitempty"`
	ManpowerOffered int              `json:"manpowerOffered"`
	MachinesOffered []string         `json:"machinesOffered"`
	BidderEmail     string           `json:"bidderEmail"`
	BidderPhone     string           `json:"bidderPhone"`
	Status          model.Status     `json:"status"`
	ReviewedBy      *string          `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time       `json:"reviewedAt,omitempty"`
	ReviewNotes     *string          `json:"reviewNotes,omitempty"`
	RejectionReason *string          `json:"rejectionReason,omitempty"`
	ContactVisible  bool             `json:"contactVisible"`
	CreatedAt       time.Time        `json:"createdAt"`
	ModifiedAt      time.Time        `json:"modifiedAt"`
}

// FromModel fills the view of bid as viewerID is allowed to see it.
func (r *BidResponse) FromModel(bid model.Bid, viewerID string) {
	r.ID = bid.ID
	r.ProjectID = bid.ProjectID
	r.BidderID = bid.BidderID
	r.BidderType = bid.BidderType
	r.BidderName = bid.BidderName
	r.ProposedAmount = bid.ProposedAmount
	r.Currency = bid.Currency
	r.StartDate = bid.StartDate
	r.EndDate = bid.EndDate
	r.ManpowerOffered = bid.ManpowerOffered
	r.MachinesOffered = append([]string{}, bid.MachinesOffered...)
	r.BidderEmail, r.BidderPhone = policy.Contact(bid, viewerID)
	r.Status = bid.Status
	r.ReviewedBy = bid.ReviewedBy
	r.ReviewedAt = bid.ReviewedAt
	r.ReviewNotes = bid.ReviewNotes
	r.RejectionReason = bid.RejectionReason
	r.ContactVisible = bid.ContactVisible
	r.CreatedAt = bid.CreatedAt
	r.ModifiedAt = bid.ModifiedAt
}
