package model

import (
	"ehotel/shared/model"
)

const (
	TableName  = "hotel_chains"
	EntityName = "hotel_chain"

	FieldID           = "id"
	FieldName         = "name"
	FieldHotelsNumber = "hotels_number"
)

const (
	EmailTableName  = "chain_emails"
	EmailEntityName = "chain_email"

	PhoneTableName  = "chain_phones"
	PhoneEntityName = "chain_phone"

	OfficeTableName  = "chain_offices"
	OfficeEntityName = "chain_office"

	FieldChainID     = "chain_id"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
)

type HotelChain struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	HotelsNumber int    `db:"hotels_number"`
	model.Metadata
}

// ChainEmail and ChainPhone are keyed by their natural value, not a surrogate.
type ChainEmail struct {
	Email   string `db:"email"`
	ChainID int    `db:"chain_id"`
	model.Metadata
}

type ChainPhone struct {
	PhoneNumber string `db:"phone_number"`
	ChainID     int    `db:"chain_id"`
	model.Metadata
}

type ChainOffice struct {
	ID           int    `db:"id"`
	StreetNumber int    `db:"street_number"`
	StreetName   string `db:"street_name"`
	City         string `db:"city"`
	PostalCode   string `db:"postal_code"`
	Country      string `db:"country"`
	ChainID      int    `db:"chain_id"`
	model.Metadata
}
