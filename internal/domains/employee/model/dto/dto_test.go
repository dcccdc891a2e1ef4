package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/internal/domains/employee/model/dto"
	"ehotel/shared/validator"
)

func validRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		SIN:          "987-654-321",
		Firstname:    "Jane",
		Lastname:     "Smith",
		Role:         "receptionist",
		StreetNumber: 10,
		StreetName:   "Bank St",
		City:         "Ottawa",
		PostalCode:   "K2P 1L4",
		Country:      "Canada",
	}
}

func TestCreateEmployeeRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateEmployeeRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *dto.CreateEmployeeRequest) {},
			wantErr: false,
		},
		{
			name:    "single-char firstname",
			mutate:  func(r *dto.CreateEmployeeRequest) { r.Firstname = "J" },
			wantErr: true,
		},
		{
			name:    "lastname over fifty chars",
			mutate:  func(r *dto.CreateEmployeeRequest) { r.Lastname = strings.Repeat("a", 51) },
			wantErr: true,
		},
		{
			name:    "single-char street name",
			mutate:  func(r *dto.CreateEmployeeRequest) { r.StreetName = "B" },
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

func TestCreateEmployeeRequest_ToModel(t *testing.T) {
	req := validRequest()
	req.HotelID = 3

	employee := req.ToModel()

	assert.Equal(t, req.SIN, employee.SIN)
	assert.NotNil(t, employee.HotelID)
	assert.Equal(t, 3, *employee.HotelID)
}

func TestCreateEmployeeRequest_ToModel_NoHotel(t *testing.T) {
	req := validRequest()
	employee := req.ToModel()

	assert.Nil(t, employee.HotelID)
}
