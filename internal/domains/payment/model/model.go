package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldRentalID      = "rental_id"
	FieldPaymentDate   = "payment_date"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
	FieldPaymentStatus = "payment_status"
)

type Payment struct {
	ID            int       `db:"id"`
	RentalID      int       `db:"rental_id"`
	PaymentDate   time.Time `db:"payment_date"`
	Amount        float64   `db:"amount"`
	PaymentMethod string    `db:"payment_method"`
	PaymentStatus string    `db:"payment_status"`
	model.Metadata
}
