package policy

import (
	"sitepro/internal/domains/bid/model"
	contractModel "sitepro/internal/domains/contract/model"
	memberModel "sitepro/internal/domains/member/model"
)

type ContractTerms struct {
	Role      contractModel.Role
	ScopeType contractModel.ScopeType
}

var (
	supplyMachines = ContractTerms{Role: contractModel.RoleSupplier, ScopeType: contractModel.ScopeMachine}
	workPackage    = ContractTerms{Role: contractModel.RoleSubcontractor, ScopeType: contractModel.ScopeWorkPackage}
)

// MembershipRole is the project team role an approved bidder joins with.
func MembershipRole(bidderType model.BidderType) memberModel.Role {
	if bidderType == model.BidderTypeSupervisor {
		return memberModel.RoleSupervisor
	}

	return memberModel.RoleVendor
}

// Terms picks the contract role and scope for an approved bid.
// Supervisors always subcontract a work package; anyone else supplies machines when they offered some.
func Terms(bidderType model.BidderType, hasMachines bool) ContractTerms {
	if bidderType != model.BidderTypeSupervisor && hasMachines {
		return supplyMachines
	}

	return workPackage
}
