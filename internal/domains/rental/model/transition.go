package model

import (
	"fmt"
	"sitepro/shared/failure"
)

type Action string

const (
	ActionApprove  Action = "APPROVE"
	ActionReject   Action = "REJECT"
	ActionAssign   Action = "ASSIGN"
	ActionStart    Action = "START"
	ActionComplete Action = "COMPLETE"
)

var transitions = map[Action]struct {
	from Status
	to   Status
}{
	ActionApprove:  {from: StatusRequested, to: StatusApproved},
	ActionReject:   {from: StatusRequested, to: StatusCancelled},
	ActionAssign:   {from: StatusApproved, to: StatusAssigned},
	ActionStart:    {from: StatusAssigned, to: StatusInUse},
	ActionComplete: {from: StatusInUse, to: StatusCompleted},
}

// Source is the only status action may be applied from.
func Source(action Action) (Status, bool) {
	t, ok := transitions[action]

	return t.from, ok
}

// Next returns the status a rental in current moves to under action.
func Next(current Status, action Action) (Status, error) {
	t, ok := transitions[action]
	if !ok {
		return current, failure.InvalidAction(fmt.Sprintf("unknown rental action: %q", string(action)))
	}

	if current != t.from {
		return current, failure.InvalidState(fmt.Sprintf("cannot %s a rental in %s status, expected %s", action, current, t.from))
	}

	return t.to, nil
}
