// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamereview/internal/platform/apperr"
	"github.com/taibuivan/gamereview/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "body", "Great game", false},
		{"empty_string", "body", "", true},
		{"whitespace_only", "body", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.ErrWithMessage("Validation failed")
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.ErrWithMessage("Validation failed"))
			}
		})
	}
}

/*
TestValidator_ExactKeys checks the strict key-set rule.
*/
func TestValidator_ExactKeys(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		hasError bool
	}{
		{"exact_keys", `{"username":"mallionaire","body":"hi"}`, false},
		{"missing_key", `{"username":"mallionaire"}`, true},
		{"extra_key", `{"username":"mallionaire","body":"hi","extra":1}`, true},
		{"empty_object", `{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &payload))

			v := &validate.Validator{}
			v.ExactKeys(payload, "username", "body")
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Struct checks that struct tags are reported under JSON names.
*/
func TestValidator_Struct(t *testing.T) {
	type payload struct {
		Username string `json:"username" validate:"required"`
		Body     string `json:"body" validate:"required"`
	}

	v := &validate.Validator{}
	err := v.Struct(payload{Username: "mallionaire"}).ErrWithMessage("Validation failed")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "body", ae.Details[0].Field)

	assert.NoError(t, (&validate.Validator{}).Struct(payload{Username: "a", Body: "b"}).ErrWithMessage("Validation failed"))
}

/*
TestValidator_Present distinguishes absence from a zero value.
*/
func TestValidator_Present(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Present("inc_votes", true).HasErrors())
	assert.True(t, (&validate.Validator{}).Present("inc_votes", false).HasErrors())
}

/*
TestValidator_ErrWithMessage checks the top-level message override.
*/
func TestValidator_ErrWithMessage(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").
		OneOf("order", "up", "asc", "desc").
		ErrWithMessage("Invalid payload")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Equal(t, "Invalid payload", ae.Message)
	assert.Len(t, ae.Details, 2)
}

/*
TestID separates malformed identifiers from valid ones.
*/
func TestID(t *testing.T) {
	id, err := validate.ID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, raw := range []string{"not-a-number", "1.5", "", "3000000000"} {
		_, err := validate.ID(raw)
		assert.ErrorIs(t, err, apperr.TypeMismatch(), raw)
	}
}
