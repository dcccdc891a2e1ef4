package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldSIN         = "sin"
	FieldFirstname   = "firstname"
	FieldLastname    = "lastname"
	FieldCheckInDate = "check_in_date"
	FieldCity        = "city"
)

type Customer struct {
	SIN          string     `db:"sin"`
	Firstname    string     `db:"firstname"`
	Lastname     string     `db:"lastname"`
	CheckInDate  *time.Time `db:"check_in_date"`
	StreetNumber int        `db:"street_number"`
	StreetName   string     `db:"street_name"`
	City         string     `db:"city"`
	PostalCode   string     `db:"postal_code"`
	Country      string     `db:"country"`
	model.Metadata
}
