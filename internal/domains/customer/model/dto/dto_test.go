package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/internal/domains/customer/model/dto"
	"ehotel/shared/validator"
)

func validRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		SIN:          "123-456-789",
		Firstname:    "John",
		Lastname:     "Doe",
		StreetNumber: 42,
		StreetName:   "Laurier Ave",
		City:         "Ottawa",
		PostalCode:   "K1A 0B1",
		Country:      "Canada",
	}
}

func TestCreateCustomerRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateCustomerRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *dto.CreateCustomerRequest) {},
			wantErr: false,
		},
		{
			name:    "single-char firstname",
			mutate:  func(r *dto.CreateCustomerRequest) { r.Firstname = "J" },
			wantErr: true,
		},
		{
			name:    "firstname over fifty chars",
			mutate:  func(r *dto.CreateCustomerRequest) { r.Firstname = strings.Repeat("a", 51) },
			wantErr: true,
		},
		{
			name:    "single-char city",
			mutate:  func(r *dto.CreateCustomerRequest) { r.City = "O" },
			wantErr: true,
		},
		{
			name:    "malformed sin",
			mutate:  func(r *dto.CreateCustomerRequest) { r.SIN = "123456789" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCustomerRequest_ToModel(t *testing.T) {
	req := validRequest()
	req.CheckInDate = "2026-09-01"

	customer, err := req.ToModel()

	assert.NoError(t, err)
	assert.Equal(t, req.SIN, customer.SIN)
	assert.NotNil(t, customer.CheckInDate)
	assert.False(t, customer.Metadata.CreatedAt.IsZero())
}
