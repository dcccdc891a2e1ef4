package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/internal/domains/booking/model/dto"
	"ehotel/shared/validator"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CustomerSIN:  "123-456-789",
		Firstname:    "John",
		Lastname:     "Doe",
		StreetNumber: 42,
		StreetName:   "Laurier Ave",
		City:         "Ottawa",
		PostalCode:   "K1A 0B1",
		Country:      "Canada",
		RoomID:       7,
		StartDate:    "2026-09-01",
		EndDate:      "2026-09-05",
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.CreateBookingRequest)
		wantErr   bool
		wantStart string
	}{
		{
			name:      "valid range",
			mutate:    func(r *dto.CreateBookingRequest) {},
			wantErr:   false,
			wantStart: "2026-09-01",
		},
		{
			name: "single day stay",
			mutate: func(r *dto.CreateBookingRequest) {
				r.EndDate = r.StartDate
			},
			wantErr: false,
		},
		{
			name: "reversed range",
			mutate: func(r *dto.CreateBookingRequest) {
				r.StartDate = "2026-09-05"
				r.EndDate = "2026-09-01"
			},
			wantErr: true,
		},
		{
			name: "malformed start date",
			mutate: func(r *dto.CreateBookingRequest) {
				r.StartDate = "01/09/2026"
			},
			wantErr: true,
		},
		{
			name: "malformed end date",
			mutate: func(r *dto.CreateBookingRequest) {
				r.EndDate = "not-a-date"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			booking, err := req.ToModel()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, req.CustomerSIN, booking.CustomerSIN)
			assert.Equal(t, req.RoomID, booking.RoomID)
			assert.False(t, booking.EndDate.Before(booking.StartDate))
		})
	}
}

func TestCreateBookingRequest_NameLengthBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateBookingRequest)
		wantErr bool
	}{
		{
			name:    "two-char names are the floor",
			mutate:  func(r *dto.CreateBookingRequest) { r.Firstname = "Jo" },
			wantErr: false,
		},
		{
			name:    "fifty-char name is the ceiling",
			mutate:  func(r *dto.CreateBookingRequest) { r.Firstname = strings.Repeat("a", 50) },
			wantErr: false,
		},
		{
			name:    "single-char firstname",
			mutate:  func(r *dto.CreateBookingRequest) { r.Firstname = "J" },
			wantErr: true,
		},
		{
			name:    "sixty-char firstname",
			mutate:  func(r *dto.CreateBookingRequest) { r.Firstname = strings.Repeat("a", 60) },
			wantErr: true,
		},
		{
			name:    "single-char lastname",
			mutate:  func(r *dto.CreateBookingRequest) { r.Lastname = "D" },
			wantErr: true,
		},
		{
			name:    "single-char city",
			mutate:  func(r *dto.CreateBookingRequest) { r.City = "O" },
			wantErr: true,
		},
		{
			name:    "single-char street name",
			mutate:  func(r *dto.CreateBookingRequest) { r.StreetName = "L" },
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

func TestCreateBookingRequest_ToCustomerModel(t *testing.T) {
	req := validRequest()

	customer := req.ToCustomerModel()

	assert.Equal(t, req.CustomerSIN, customer.SIN)
	assert.Equal(t, req.Firstname, customer.Firstname)
	assert.Equal(t, req.Lastname, customer.Lastname)
	assert.Equal(t, req.StreetNumber, customer.StreetNumber)
	assert.Equal(t, req.StreetName, customer.StreetName)
	assert.Equal(t, req.City, customer.City)
	assert.Equal(t, req.PostalCode, customer.PostalCode)
	assert.Equal(t, req.Country, customer.Country)
	assert.False(t, customer.Metadata.CreatedAt.IsZero())
}
