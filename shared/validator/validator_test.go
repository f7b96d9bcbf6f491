package validator_test

import (
	"sitepro/shared/failure"
	"sitepro/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionBody struct {
	Action string  `validate:"notblank" json:"action"`
	Reason *string `validate:"omitempty,notblank" json:"reason"`
	Days   int     `validate:"gte=0,lte=365" json:"days"`
	Role   string  `validate:"omitempty,oneof=vendor project_manager" json:"role"`
}

func TestValidateStruct(t *testing.T) {
	blank := "   "
	reason := "over budget"

	tests := []struct {
		name        string
		data        *transitionBody
		expectError bool
		message     string
	}{
		{
			name:        "valid body",
			data:        &transitionBody{Action: "APPROVE", Reason: &reason, Days: 3},
			expectError: false,
		},
		{
			name:        "blank action",
			data:        &transitionBody{Action: "  "},
			expectError: true,
			message:     "action must not be blank",
		},
		{
			name:        "blank reason pointer",
			data:        &transitionBody{Action: "REJECT", Reason: &blank},
			expectError: true,
			message:     "reason must not be blank",
		},
		{
			name:        "days out of range",
			data:        &transitionBody{Action: "LOG_USAGE", Days: 400},
			expectError: true,
			message:     "days must be less than or equal to 365",
		},
		{
			name:        "role not allowed",
			data:        &transitionBody{Action: "APPROVE", Role: "guest"},
			expectError: true,
			message:     "role must be one of vendor project_manager",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.True(t, failure.Is(err, failure.KindBadRequest))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid uuid", field: "2b7f4b5e-8a7c-4d43-9a3c-6f1f58a1b0de", tag: "uuid", expectError: false},
		{name: "invalid uuid", field: "bid-1", tag: "uuid", expectError: true},
		{name: "not blank", field: "x", tag: "notblank", expectError: false},
		{name: "blank", field: " ", tag: "notblank", expectError: true},
		{name: "empty zero value", field: 0, tag: "empty", expectError: false},
		{name: "empty non zero value", field: 5, tag: "empty", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"action":"APPROVE","days":1}`, expectError: false},
		{name: "invalid field", jsonBody: `{"action":"","days":1}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"action":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data transitionBody
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "APPROVE", data.Action)
			}
		})
	}
}

func TestValidateStruct_JoinsFieldErrors(t *testing.T) {
	err := validator.ValidateStruct(&transitionBody{Action: "", Days: -1})

	require.Error(t, err)
	assert.Equal(t, "action must not be blank; days must be greater than or equal to 0", err.Error())
}
