package model

import (
	"sitepro/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bids"
	EntityName = "bid"

	FieldID              = "id"
	FieldProjectID       = "project_id"
	FieldBidderID        = "bidder_id"
	FieldStatus          = "status"
	FieldReviewedBy      = "reviewed_by"
	FieldReviewedAt      = "reviewed_at"
	FieldReviewNotes     = "review_notes"
	FieldRejectionReason = "rejection_reason"
	FieldContactVisible  = "contact_visible"
)

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusWithdrawn Status = "WITHDRAWN"
)

// IsTerminal reports whether no action can move the bid out of s.
func (s Status) IsTerminal() bool {
	return s != StatusSubmitted
}

type BidderType string

const (
	BidderTypeVendor     BidderType = "VENDOR"
	BidderTypeCompany    BidderType = "COMPANY"
	BidderTypeSupervisor BidderType = "SUPERVISOR"
)

type Bid struct {
	ID              string         `db:"id"`
	ProjectID       string         `db:"project_id"`
	BidderID        string         `db:"bidder_id"`
	BidderType      BidderType     `db:"bidder_type"`
	BidderName      string         `db:"bidder_name"`
	ProposedAmount  float64        `db:"proposed_amount"`
	Currency        string         `db:"currency"`
	StartDate       time.Time      `db:"start_date"`
	EndDate         *time.Time     `db:"end_date"`
	ManpowerOffered int            `db:"manpower_offered"`
	MachinesOffered pq.StringArray `db:"machines_offered"`
	BidderEmail     string         `db:"bidder_email"`
	BidderPhone     string         `db:"bidder_phone"`
	Status          Status         `db:"status"`
	ReviewedBy      *string        `db:"reviewed_by"`
	ReviewedAt      *time.Time     `db:"reviewed_at"`
	ReviewNotes     *string        `db:"review_notes"`
	RejectionReason *string        `db:"rejection_reason"`
	ContactVisible  bool           `db:"contact_visible"`
	model.Metadata
}

func (b Bid) HasMachines() bool {
	return len(b.MachinesOffered) > 0
}
