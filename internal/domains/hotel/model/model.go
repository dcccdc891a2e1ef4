package model

import (
	"ehotel/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID          = "id"
	FieldName        = "name"
	FieldCity        = "city"
	FieldPostalCode  = "postal_code"
	FieldChainID     = "chain_id"
	FieldManagerSIN  = "manager_sin"
	FieldStarRating  = "star_rating"
	FieldRoomsNumber = "rooms_number"
)

const (
	PhoneTableName  = "hotel_phones"
	PhoneEntityName = "hotel_phone"

	FieldPhoneNumber = "phone_number"
	FieldHotelID     = "hotel_id"
)

type Hotel struct {
	ID           int     `db:"id"`
	Name         string  `db:"name"`
	RoomsNumber  int     `db:"rooms_number"`
	StarRating   int     `db:"star_rating"`
	Email        string  `db:"email"`
	StreetNumber int     `db:"street_number"`
	StreetName   string  `db:"street_name"`
	City         string  `db:"city"`
	PostalCode   string  `db:"postal_code"`
	Country      string  `db:"country"`
	ChainID      int     `db:"chain_id"`
	ManagerSIN   *string `db:"manager_sin"`
	model.Metadata
}

type HotelPhone struct {
	PhoneNumber string `db:"phone_number"`
	HotelID     int    `db:"hotel_id"`
	model.Metadata
}
