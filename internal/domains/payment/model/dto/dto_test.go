package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/internal/domains/payment/model/dto"
	"ehotel/shared/constant"
	"ehotel/shared/timezone"
	"ehotel/shared/validator"
)

// Payment status is free text; the store records whatever the front desk typed.
func TestCreatePaymentRequest_StatusIsFreeText(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{
			name:    "accented status",
			status:  "Payé",
			wantErr: false,
		},
		{
			name:    "arbitrary status",
			status:  "awaiting wire transfer",
			wantErr: false,
		},
		{
			name:    "empty status",
			status:  "",
			wantErr: true,
		},
		{
			name:    "status over fifty chars",
			status:  strings.Repeat("a", 51),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreatePaymentRequest{
				RentalID:      3,
				PaymentDate:   timezone.Format(timezone.Today(), constant.DateOnlyFormat),
				Amount:        100,
				PaymentMethod: "cash",
				PaymentStatus: tt.status,
			}

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePaymentRequest_ToModel(t *testing.T) {
	today := timezone.Format(timezone.Today(), constant.DateOnlyFormat)
	future := timezone.Format(timezone.Today().AddDate(0, 0, 7), constant.DateOnlyFormat)
	past := timezone.Format(timezone.Today().AddDate(0, 0, -1), constant.DateOnlyFormat)

	tests := []struct {
		name        string
		paymentDate string
		wantErr     bool
	}{
		{
			name:        "today is accepted",
			paymentDate: today,
			wantErr:     false,
		},
		{
			name:        "future date is accepted",
			paymentDate: future,
			wantErr:     false,
		},
		{
			name:        "past date is rejected",
			paymentDate: past,
			wantErr:     true,
		},
		{
			name:        "malformed date is rejected",
			paymentDate: "07-12-2026",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreatePaymentRequest{
				RentalID:      3,
				PaymentDate:   tt.paymentDate,
				Amount:        420.50,
				PaymentMethod: "credit_card",
				PaymentStatus: "pending",
			}

			payment, err := req.ToModel()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 3, payment.RentalID)
			assert.Equal(t, 420.50, payment.Amount)
			assert.Equal(t, "pending", payment.PaymentStatus)
			assert.False(t, payment.PaymentDate.Before(timezone.Today()))
		})
	}
}
