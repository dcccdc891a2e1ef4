package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldCustomerSIN = "customer_sin"
	FieldRoomID      = "room_id"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
)

// Booking ids come from the table's sequence; the zero ID is never inserted.
type Booking struct {
	ID          int       `db:"id"`
	CustomerSIN string    `db:"customer_sin"`
	RoomID      int       `db:"room_id"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	model.Metadata
}
