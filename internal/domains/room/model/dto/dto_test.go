package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/internal/domains/room/model/dto"
	"ehotel/shared/validator"
)

func validSearch() dto.SearchRoomsRequest {
	return dto.SearchRoomsRequest{
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-05",
		Capacity:    "double",
		Price:       250,
		ChainID:     1,
		StarRating:  3,
		RoomsNumber: 20,
	}
}

func TestSearchRoomsRequest_ToCriteria(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.SearchRoomsRequest)
		wantErr bool
	}{
		{
			name:    "valid range",
			mutate:  func(r *dto.SearchRoomsRequest) {},
			wantErr: false,
		},
		{
			name: "single day stay is allowed",
			mutate: func(r *dto.SearchRoomsRequest) {
				r.EndDate = r.StartDate
			},
			wantErr: false,
		},
		{
			name: "reversed range",
			mutate: func(r *dto.SearchRoomsRequest) {
				r.StartDate = "2026-09-05"
				r.EndDate = "2026-09-01"
			},
			wantErr: true,
		},
		{
			name: "malformed date",
			mutate: func(r *dto.SearchRoomsRequest) {
				r.StartDate = "September 1st"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearch()
			tt.mutate(&req)

			criteria, err := req.ToCriteria()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, req.Capacity, criteria.Capacity)
			assert.Equal(t, req.Price, criteria.Price)
			assert.Equal(t, req.ChainID, criteria.ChainID)
			assert.Equal(t, req.StarRating, criteria.StarRating)
			assert.Equal(t, req.RoomsNumber, criteria.RoomsNumber)
			assert.False(t, criteria.EndDate.Before(criteria.StartDate))
		})
	}
}

// A zero price ceiling is a legal search; only negative ceilings are rejected.
func TestSearchRoomsRequest_PriceCeiling(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		wantErr bool
	}{
		{
			name:    "zero ceiling",
			price:   0,
			wantErr: false,
		},
		{
			name:    "positive ceiling",
			price:   250,
			wantErr: false,
		},
		{
			name:    "negative ceiling",
			price:   -1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearch()
			req.Price = tt.price

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRoomRequest_ToModel(t *testing.T) {
	availability := true
	req := dto.CreateRoomRequest{
		RoomNumber:   101,
		Availability: &availability,
		Price:        180,
		View:         "sea",
		Extensible:   true,
		Capacity:     "double",
		HotelID:      4,
	}

	room := req.ToModel(9)

	assert.Equal(t, 9, room.ID)
	assert.Equal(t, 101, room.RoomNumber)
	assert.True(t, room.Availability)
	assert.NotNil(t, room.View)
	assert.Equal(t, "sea", *room.View)
	assert.Equal(t, 4, room.HotelID)
}

func TestCreateRoomRequest_ToModel_NoView(t *testing.T) {
	availability := false
	req := dto.CreateRoomRequest{
		RoomNumber:   102,
		Availability: &availability,
		Price:        90,
		Capacity:     "simple",
		HotelID:      4,
	}

	room := req.ToModel(10)

	assert.Nil(t, room.View)
	assert.False(t, room.Availability)
}
