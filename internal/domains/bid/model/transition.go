package model

import (
	"fmt"
	"sitepro/shared/failure"
)

type Action string

const (
	ActionApprove  Action = "APPROVE"
	ActionReject   Action = "REJECT"
	ActionWithdraw Action = "WITHDRAW"
)

var ErrWithdrawApproved = failure.Forbidden("cannot withdraw an approved bid")

// Next returns the status a bid in current moves to under action.
// Actor checks are not made here; only the status machine is.
func Next(current Status, action Action) (Status, error) {
	switch action {
	case ActionApprove:
		if current != StatusSubmitted {
			return current, failure.InvalidState(fmt.Sprintf("cannot approve a bid in %s status", current))
		}

		return StatusApproved, nil
	case ActionReject:
		if current != StatusSubmitted {
			return current, failure.InvalidState(fmt.Sprintf("cannot reject a bid in %s status", current))
		}

		return StatusRejected, nil
	case ActionWithdraw:
		switch current {
		case StatusSubmitted:
			return StatusWithdrawn, nil
		case StatusApproved:
			return current, ErrWithdrawApproved
		default:
			return current, failure.InvalidState(fmt.Sprintf("cannot withdraw a bid in %s status", current))
		}
	default:
		return current, failure.InvalidAction(fmt.Sprintf("unknown bid action: %q", string(action)))
	}
}
