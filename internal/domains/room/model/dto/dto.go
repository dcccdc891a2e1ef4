package dto

import (
	"errors"
	"time"

	"ehotel/internal/domains/room/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber   int     `json:"room_number"  validate:"required,min=1"`
	Availability *bool   `json:"availability" validate:"required"`
	Price        float64 `json:"price"        validate:"required,gt=0"`
	View         string  `json:"view"         validate:"omitempty,max=100"`
	Extensible   bool    `json:"extensible"`
	Capacity     string  `json:"capacity"     validate:"required,oneof=simple double triple quadruple"`
	HotelID      int     `json:"hotel_id"     validate:"required"`
}

func (c *CreateRoomRequest) ToModel(id int) model.Room {
	var view *string
	if c.View != "" {
		view = &c.View
	}

	return model.Room{
		ID:           id,
		RoomNumber:   c.RoomNumber,
		Availability: *c.Availability,
		Price:        c.Price,
		View:         view,
		Extensible:   c.Extensible,
		Capacity:     c.Capacity,
		HotelID:      c.HotelID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber   int     `db:"room_number"  json:"room_number"  validate:"omitempty,min=1"`
	Availability *bool   `db:"availability" json:"availability" validate:"omitempty"`
	Price        float64 `db:"price"        json:"price"        validate:"omitempty,gt=0"`
	View         string  `db:"view"         json:"view"         validate:"omitempty,max=100"`
	Extensible   *bool   `db:"extensible"   json:"extensible"   validate:"omitempty"`
	Capacity     string  `db:"capacity"     json:"capacity"     validate:"omitempty,oneof=simple double triple quadruple"`
}

// SearchRoomsRequest carries the availability search criteria. The whole set
// is ANDed; a zero price ceiling is a legal (if fruitless) search.
type SearchRoomsRequest struct {
	StartDate   string  `json:"start_date"   validate:"required"`
	EndDate     string  `json:"end_date"     validate:"required"`
	Capacity    string  `json:"capacity"     validate:"required,oneof=simple double triple quadruple"`
	Price       float64 `json:"price"        validate:"min=0"`
	ChainID     int     `json:"chain_id"     validate:"required"`
	StarRating  int     `json:"star_rating"  validate:"required,min=1,max=5"`
	RoomsNumber int     `json:"rooms_number" validate:"required,min=1"`
}

// SearchRoomsCriteria is the parsed form of SearchRoomsRequest.
type SearchRoomsCriteria struct {
	StartDate   time.Time
	EndDate     time.Time
	Capacity    string
	Price       float64
	ChainID     int
	StarRating  int
	RoomsNumber int
}

var errEndBeforeStart = errors.New("end date must not be before start date")

// ToCriteria parses the stay range and rejects a reversed one. A single-day
// stay (start == end) is allowed.
func (c *SearchRoomsRequest) ToCriteria() (SearchRoomsCriteria, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return SearchRoomsCriteria{}, err //nolint:wrapcheck
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return SearchRoomsCriteria{}, err //nolint:wrapcheck
	}

	if endDate.Before(startDate) {
		return SearchRoomsCriteria{}, errEndBeforeStart
	}

	return SearchRoomsCriteria{
		StartDate:   startDate,
		EndDate:     endDate,
		Capacity:    c.Capacity,
		Price:       c.Price,
		ChainID:     c.ChainID,
		StarRating:  c.StarRating,
		RoomsNumber: c.RoomsNumber,
	}, nil
}

type RoomResponse struct {
	ID           int     `json:"id"`
	RoomNumber   int     `json:"room_number"`
	Availability bool    `json:"availability"`
	Price        float64 `json:"price"`
	View         string  `json:"view,omitempty"`
	Extensible   bool    `json:"extensible"`
	Capacity     string  `json:"capacity"`
	HotelID      int     `json:"hotel_id"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Availability = model.Availability
	r.Price = model.Price

	if model.View != nil {
		r.View = *model.View
	}

	r.Extensible = model.Extensible
	r.Capacity = model.Capacity
	r.HotelID = model.HotelID
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// SearchRoomsResponse is unordered and unpaginated; an empty search yields an
// empty list, not an error.
type SearchRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *SearchRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
