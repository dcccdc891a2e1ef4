package validator_test

import (
	"strings"
	"testing"

	"ehotel/shared/validator"
)

func TestValidateVar_SIN(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "valid sin",
			value:   "123-456-789",
			wantErr: false,
		},
		{
			name:    "missing dashes",
			value:   "123456789",
			wantErr: true,
		},
		{
			name:    "too short",
			value:   "123-456-78",
			wantErr: true,
		},
		{
			name:    "letters",
			value:   "abc-def-ghi",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "sin")
			if tt.wantErr && err == nil {
				t.Errorf("expected %q to be rejected", tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected %q to be accepted, got %v", tt.value, err)
			}
		})
	}
}

func TestValidateVar_PostalCode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "valid with space",
			value:   "K1A 0B1",
			wantErr: false,
		},
		{
			name:    "valid without space",
			value:   "K1A0B1",
			wantErr: false,
		},
		{
			name:    "invalid leading letter",
			value:   "D1A 0B1",
			wantErr: true,
		},
		{
			name:    "lowercase",
			value:   "k1a 0b1",
			wantErr: true,
		},
		{
			name:    "digits only",
			value:   "123 456",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "postal_code")
			if tt.wantErr && err == nil {
				t.Errorf("expected %q to be rejected", tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected %q to be accepted, got %v", tt.value, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	type createRequest struct {
		Name string `json:"name" validate:"required"`
		SIN  string `json:"sin"  validate:"required,sin"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"name":"John","sin":"123-456-789"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"sin":"123-456-789"}`,
			wantErr: true,
		},
		{
			name:    "malformed sin",
			body:    `{"name":"John","sin":"123456789"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
