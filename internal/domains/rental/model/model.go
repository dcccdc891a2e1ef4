package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "rentals"
	EntityName = "rental"

	FieldID          = "id"
	FieldCustomerSIN = "customer_sin"
	FieldRoomID      = "room_id"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
)

// Rental ids come from the table's sequence; a rental never inherits the id of
// the booking it was created from.
type Rental struct {
	ID          int       `db:"id"`
	CustomerSIN string    `db:"customer_sin"`
	RoomID      int       `db:"room_id"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	model.Metadata
}
