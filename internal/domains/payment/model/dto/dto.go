package dto

import (
	"errors"

	"ehotel/internal/domains/payment/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

var errPaymentDateInPast = errors.New("payment date must be today or later")

type CreatePaymentRequest struct {
	RentalID      int     `json:"rental_id"      validate:"required"`
	PaymentDate   string  `json:"payment_date"   validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
	PaymentStatus string  `json:"payment_status" validate:"required,max=50"`
}

// ToModel parses the payment date and rejects one already in the past,
// midnight-to-midnight in the application timezone.
func (c *CreatePaymentRequest) ToModel() (model.Payment, error) {
	paymentDate, err := timezone.Parse(constant.DateOnlyFormat, c.PaymentDate)
	if err != nil {
		return model.Payment{}, err //nolint:wrapcheck
	}

	if paymentDate.Before(timezone.Today()) {
		return model.Payment{}, errPaymentDateInPast
	}

	return model.Payment{
		RentalID:      c.RentalID,
		PaymentDate:   paymentDate,
		Amount:        c.Amount,
		PaymentMethod: c.PaymentMethod,
		PaymentStatus: c.PaymentStatus,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type PaymentResponse struct {
	ID            int     `json:"id"`
	RentalID      int     `json:"rental_id"`
	PaymentDate   string  `json:"payment_date"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.RentalID = model.RentalID
	r.PaymentDate = timezone.Format(model.PaymentDate, constant.DateOnlyFormat)
	r.Amount = model.Amount
	r.PaymentMethod = model.PaymentMethod
	r.PaymentStatus = model.PaymentStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
