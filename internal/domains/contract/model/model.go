package model

import (
	"sitepro/shared/model"
	"time"
)

const (
	TableName  = "contracts"
	EntityName = "contract"

	FieldID    = "id"
	FieldBidID = "bid_id"
)

type Role string

const (
	RoleSupplier      Role = "SUPPLIER"
	RoleSubcontractor Role = "SUBCONTRACTOR"
)

type ScopeType string

const (
	ScopeMachine     ScopeType = "MACHINE"
	ScopeWorkPackage ScopeType = "WORK_PACKAGE"
)

type Status string

const (
	StatusActive Status = "ACTIVE"
)

type Contract struct {
	ID         string    `db:"id"          json:"id"`
	BidID      string    `db:"bid_id"      json:"bidId"`
	ProjectID  string    `db:"project_id"  json:"projectId"`
	VendorID   string    `db:"vendor_id"   json:"vendorId"`
	Role       Role      `db:"role"        json:"role"`
	ScopeType  ScopeType `db:"scope_type"  json:"scopeType"`
	StartDate  time.Time `db:"start_date"  json:"startDate"`
	EndDate    time.Time `db:"end_date"    json:"endDate"`
	AgreedRate float64   `db:"agreed_rate" json:"agreedRate"`
	Currency   string    `db:"currency"    json:"currency"`
	Status     Status    `db:"status"      json:"status"`
	model.Metadata
}
