package validator_test

import (
	"strings"
	"testing"

	"lodge/shared/validator"
)

type sampleRequest struct {
	Name  string `json:"name"  validate:"required,max=10"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role"  validate:"omitempty,oneof=manager receptionist"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sampleRequest
		wantErr bool
	}{
		{
			name:    "valid struct",
			input:   sampleRequest{Name: "front desk", Email: "desk@example.com", Role: "manager"},
			wantErr: false,
		},
		{
			name:    "missing required field",
			input:   sampleRequest{Email: "desk@example.com"},
			wantErr: true,
		},
		{
			name:    "invalid email",
			input:   sampleRequest{Name: "front desk", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "invalid role",
			input:   sampleRequest{Name: "front desk", Role: "janitor"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.input)

			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	var req sampleRequest

	err := validator.Validate(strings.NewReader(`{"name":"lobby"}`), &req)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if req.Name != "lobby" {
		t.Errorf("expected decoded name 'lobby', got %q", req.Name)
	}
}

func TestValidate_RejectsMalformedJSON(t *testing.T) {
	var req sampleRequest

	err := validator.Validate(strings.NewReader(`{"name":`), &req)
	if err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("900000001", "required,len=9,numeric"); err != nil {
		t.Errorf("unexpected error for valid SSN: %v", err)
	}

	if err := validator.ValidateVar("12345", "required,len=9,numeric"); err == nil {
		t.Error("expected error for short SSN, got nil")
	}
}
