package model

import (
	"ehotel/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldSIN       = "sin"
	FieldFirstname = "firstname"
	FieldLastname  = "lastname"
	FieldRole      = "role"
	FieldHotelID   = "hotel_id"
)

type Employee struct {
	SIN          string `db:"sin"`
	Firstname    string `db:"firstname"`
	Lastname     string `db:"lastname"`
	Role         string `db:"role"`
	StreetNumber int    `db:"street_number"`
	StreetName   string `db:"street_name"`
	City         string `db:"city"`
	PostalCode   string `db:"postal_code"`
	Country      string `db:"country"`
	HotelID      *int   `db:"hotel_id"`
	model.Metadata
}
