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
	customerMocks "ehotel/internal/domains/customer/mocks"
	"ehotel/internal/domains/customer/model/dto"
	"ehotel/internal/domains/customer/service"
	cacheMocks "ehotel/shared/cache/mocks"
	"ehotel/shared/failure"
)

func validCreateCustomerRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		SIN:          "123-456-789",
		Firstname:    "John",
		Lastname:     "Doe",
		StreetNumber: 42,
		StreetName:   "Laurier Ave",
		City:         "Ottawa",
		PostalCode:   "K1A 0B1",
		Country:      "Canada",
	}
}

func TestCustomerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "new customer",
			req:  validCreateCustomerRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

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
			name: "duplicate sin conflicts",
			req:  validCreateCustomerRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
		{
			name: "malformed check-in date",
			req: func() dto.CreateCustomerRequest {
				req := validCreateCustomerRequest()
				req.CheckInDate = "12/07/2026"

				return req
			}(),
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "insert error",
			req:  validCreateCustomerRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

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
