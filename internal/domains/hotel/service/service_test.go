package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ehotel/config"
	"ehotel/infras/otel/mocks"
	employeeMocks "ehotel/internal/domains/employee/mocks"
	hotelMocks "ehotel/internal/domains/hotel/mocks"
	"ehotel/internal/domains/hotel/model/dto"
	"ehotel/internal/domains/hotel/service"
	chainMocks "ehotel/internal/domains/hotelchain/mocks"
	cacheMocks "ehotel/shared/cache/mocks"
)

func intPtr(v int) *int {
	return &v
}

func validCreateHotelRequest() dto.CreateHotelRequest {
	return dto.CreateHotelRequest{
		Name:         "Downtown Plaza",
		RoomsNumber:  60,
		StarRating:   4,
		Email:        "plaza@example.com",
		StreetNumber: 12,
		StreetName:   "Rideau St",
		City:         "Ottawa",
		PostalCode:   "K1N 5W8",
		Country:      "Canada",
		ChainID:      1,
	}
}

func TestHotelService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockChainRepo := chainMocks.NewMockHotelChain(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockChainRepo, mockEmployeeRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateHotelRequest
		setupMock func()
		wantID    int
		wantErr   bool
	}{
		{
			name: "without manager skips the employee check",
			req:  validCreateHotelRequest(),
			setupMock: func() {
				mockChainRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetIDs(gomock.Any()).
					Return([]*int{intPtr(2), intPtr(4)}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID:  5,
			wantErr: false,
		},
		{
			name: "with manager that exists",
			req: func() dto.CreateHotelRequest {
				req := validCreateHotelRequest()
				req.ManagerSIN = "987-654-321"

				return req
			}(),
			setupMock: func() {
				mockChainRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetIDs(gomock.Any()).
					Return([]*int{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID:  1,
			wantErr: false,
		},
		{
			name: "manager does not exist",
			req: func() dto.CreateHotelRequest {
				req := validCreateHotelRequest()
				req.ManagerSIN = "987-654-321"

				return req
			}(),
			setupMock: func() {
				mockChainRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "hotel chain does not exist",
			req:  validCreateHotelRequest(),
			setupMock: func() {
				mockChainRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  validCreateHotelRequest(),
			setupMock: func() {
				mockChainRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetIDs(gomock.Any()).
					Return([]*int{intPtr(1)}, nil)

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

			id, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
