package model

import (
	"ehotel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldRoomNumber   = "room_number"
	FieldAvailability = "availability"
	FieldPrice        = "price"
	FieldView         = "view"
	FieldExtensible   = "extensible"
	FieldCapacity     = "capacity"
	FieldHotelID      = "hotel_id"
)

const (
	CapacitySimple    = "simple"
	CapacityDouble    = "double"
	CapacityTriple    = "triple"
	CapacityQuadruple = "quadruple"
)

type Room struct {
	ID           int     `db:"id"`
	RoomNumber   int     `db:"room_number"`
	Availability bool    `db:"availability"`
	Price        float64 `db:"price"`
	View         *string `db:"view"`
	Extensible   bool    `db:"extensible"`
	Capacity     string  `db:"capacity"`
	HotelID      int     `db:"hotel_id"`
	model.Metadata
}
