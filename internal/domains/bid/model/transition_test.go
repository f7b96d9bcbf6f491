package model_test

import (
	"sitepro/internal/domains/bid/model"
	"sitepro/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		current  model.Status
		action   model.Action
		want     model.Status
		wantKind failure.Kind
	}{
		{name: "approve submitted", current: model.StatusSubmitted, action: model.ActionApprove, want: model.StatusApproved},
		{name: "reject submitted", current: model.StatusSubmitted, action: model.ActionReject, want: model.StatusRejected},
		{name: "withdraw submitted", current: model.StatusSubmitted, action: model.ActionWithdraw, want: model.StatusWithdrawn},
		{name: "approve approved", current: model.StatusApproved, action: model.ActionApprove, want: model.StatusApproved, wantKind: failure.KindInvalidState},
		{name: "reject withdrawn", current: model.StatusWithdrawn, action: model.ActionReject, want: model.StatusWithdrawn, wantKind: failure.KindInvalidState},
		{name: "withdraw approved", current: model.StatusApproved, action: model.ActionWithdraw, want: model.StatusApproved, wantKind: failure.KindForbidden},
		{name: "withdraw rejected", current: model.StatusRejected, action: model.ActionWithdraw, want: model.StatusRejected, wantKind: failure.KindInvalidState},
		{name: "withdraw twice", current: model.StatusWithdrawn, action: model.ActionWithdraw, want: model.StatusWithdrawn, wantKind: failure.KindInvalidState},
		{name: "lower case action", current: model.StatusSubmitted, action: "approve", want: model.StatusSubmitted, wantKind: failure.KindInvalidAction},
		{name: "unknown action", current: model.StatusSubmitted, action: "ARCHIVE", want: model.StatusSubmitted, wantKind: failure.KindInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.Next(tt.current, tt.action)

			assert.Equal(t, tt.want, got)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}

			assert.True(t, failure.Is(err, tt.wantKind), "expected %s, got %v", tt.wantKind, err)
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, model.StatusSubmitted.IsTerminal())
	assert.True(t, model.StatusApproved.IsTerminal())
	assert.True(t, model.StatusRejected.IsTerminal())
	assert.True(t, model.StatusWithdrawn.IsTerminal())
}
