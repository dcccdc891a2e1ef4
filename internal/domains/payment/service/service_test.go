package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ehotel/config"
	"ehotel/infras/otel/mocks"
	paymentMocks "ehotel/internal/domains/payment/mocks"
	"ehotel/internal/domains/payment/model/dto"
	"ehotel/internal/domains/payment/service"
	rentalMocks "ehotel/internal/domains/rental/mocks"
	cacheMocks "ehotel/shared/cache/mocks"
	"ehotel/shared/constant"
	"ehotel/shared/failure"
	"ehotel/shared/timezone"
)

func TestPaymentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockRentalRepo := rentalMocks.NewMockRental(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRentalRepo, cfg, mockCache, mockOtel)

	today := timezone.Format(timezone.Today(), constant.DateOnlyFormat)
	past := timezone.Format(timezone.Today().AddDate(0, 0, -3), constant.DateOnlyFormat)

	validReq := dto.CreatePaymentRequest{
		RentalID:      3,
		PaymentDate:   today,
		Amount:        420.50,
		PaymentMethod: "credit_card",
		PaymentStatus: "pending",
	}

	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "payment recorded",
			req:  validReq,
			setupMock: func() {
				mockRentalRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "rental not found",
			req:  validReq,
			setupMock: func() {
				mockRentalRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "backdated payment is rejected",
			req: func() dto.CreatePaymentRequest {
				req := validReq
				req.PaymentDate = past

				return req
			}(),
			setupMock: func() {
				mockRentalRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func() {
				mockRentalRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}
