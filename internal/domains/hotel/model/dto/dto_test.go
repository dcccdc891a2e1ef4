package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/internal/domains/hotel/model/dto"
	"ehotel/shared/validator"
)

func validRequest() dto.CreateHotelRequest {
	return dto.CreateHotelRequest{
		Name:         "Downtown Plaza",
		RoomsNumber:  60,
		StarRating:   4,
		Email:        "plaza@example.com",
		StreetNumber: 12,
		StreetName:   "Rideau St",
		City:         "Ottawa",
		PostalCode:   "K1N 5W8",
		Country:      "Canada",
		ChainID:      1,
	}
}

func TestCreateHotelRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateHotelRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *dto.CreateHotelRequest) {},
			wantErr: false,
		},
		{
			name:    "single-char name",
			mutate:  func(r *dto.CreateHotelRequest) { r.Name = "P" },
			wantErr: true,
		},
		{
			name:    "name over fifty chars",
			mutate:  func(r *dto.CreateHotelRequest) { r.Name = strings.Repeat("a", 51) },
			wantErr: true,
		},
		{
			name:    "single-char city",
			mutate:  func(r *dto.CreateHotelRequest) { r.City = "O" },
			wantErr: true,
		},
		{
			name:    "star rating out of range",
			mutate:  func(r *dto.CreateHotelRequest) { r.StarRating = 6 },
			wantErr: true,
		},
		{
			name:    "malformed manager sin",
			mutate:  func(r *dto.CreateHotelRequest) { r.ManagerSIN = "987654321" },
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

func TestCreateHotelRequest_ToModel(t *testing.T) {
	req := validRequest()
	req.ManagerSIN = "987-654-321"

	hotel := req.ToModel(5)

	assert.Equal(t, 5, hotel.ID)
	assert.NotNil(t, hotel.ManagerSIN)
	assert.Equal(t, "987-654-321", *hotel.ManagerSIN)
}

func TestCreateHotelRequest_ToModel_NoManager(t *testing.T) {
	req := validRequest()
	hotel := req.ToModel(6)

	assert.Nil(t, hotel.ManagerSIN)
}
