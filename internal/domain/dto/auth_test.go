package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		request  LoginRequest
		errorMsg string
	}{
		{
			name:    "valid request",
			request: LoginRequest{Username: "admin", Password: "long-enough"},
		},
		{
			name:     "empty username",
			request:  LoginRequest{Password: "long-enough"},
			errorMsg: "username: username is required",
		},
		{
			name:     "short password",
			request:  LoginRequest{Username: "admin", Password: "short"},
			errorMsg: "password: password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errorMsg)
		})
	}
}
