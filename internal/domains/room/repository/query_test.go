package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/internal/domains/room/model/dto"
	"ehotel/shared/constant"
	"ehotel/shared/timezone"
)

func TestBuildAvailabilityQuery(t *testing.T) {
	start, err := timezone.Parse(constant.DateOnlyFormat, "2026-09-01")
	assert.NoError(t, err)

	end, err := timezone.Parse(constant.DateOnlyFormat, "2026-09-05")
	assert.NoError(t, err)

	criteria := dto.SearchRoomsCriteria{
		StartDate:   start,
		EndDate:     end,
		Capacity:    "double",
		Price:       250,
		ChainID:     1,
		StarRating:  3,
		RoomsNumber: 20,
	}

	query, args := buildAvailabilityQuery(criteria)

	assert.Contains(t, query, "JOIN hotels ON hotels.id = rooms.hotel_id")
	assert.Contains(t, query, "rooms.availability = TRUE")
	assert.Contains(t, query, "rooms.capacity = :capacity")
	assert.Contains(t, query, "rooms.price <= :price")
	assert.Contains(t, query, "hotels.chain_id = :chain_id")
	assert.Contains(t, query, "hotels.star_rating >= :star_rating")
	assert.Contains(t, query, "hotels.rooms_number >= :rooms_number")

	// Inclusive overlap on both ends: a booking touching either boundary date
	// makes the room unavailable.
	assert.Contains(t, query, "bookings.start_date <= :end_date")
	assert.Contains(t, query, "bookings.end_date >= :start_date")
	assert.True(t, strings.Contains(query, "NOT EXISTS"))

	assert.Equal(t, "double", args["capacity"])
	assert.Equal(t, float64(250), args["price"])
	assert.Equal(t, 1, args["chain_id"])
	assert.Equal(t, 3, args["star_rating"])
	assert.Equal(t, 20, args["rooms_number"])
	assert.Equal(t, start, args["start_date"])
	assert.Equal(t, end, args["end_date"])
}
