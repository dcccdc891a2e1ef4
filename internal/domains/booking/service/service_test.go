package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ehotel/config"
	"ehotel/infras/otel/mocks"
	bookingMocks "ehotel/internal/domains/booking/mocks"
	"ehotel/internal/domains/booking/model"
	"ehotel/internal/domains/booking/model/dto"
	"ehotel/internal/domains/booking/service"
	customerMocks "ehotel/internal/domains/customer/mocks"
	roomMocks "ehotel/internal/domains/room/mocks"
	cacheMocks "ehotel/shared/cache/mocks"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CustomerSIN:  "123-456-789",
		Firstname:    "John",
		Lastname:     "Doe",
		StreetNumber: 42,
		StreetName:   "Laurier Ave",
		City:         "Ottawa",
		PostalCode:   "K1A 0B1",
		Country:      "Canada",
		RoomID:       7,
		StartDate:    "2026-09-01",
		EndDate:      "2026-09-05",
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "existing customer keeps stored record",
			req:  validCreateRequest(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					InsertWithCustomer(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unknown customer is created inline",
			req:  validCreateRequest(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertWithCustomer(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room does not exist",
			req:  validCreateRequest(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "reversed stay range",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartDate = "2026-09-05"
				req.EndDate = "2026-09-01"

				return req
			}(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  validCreateRequest(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					InsertWithCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	booking := model.Booking{
		ID:          12,
		CustomerSIN: "123-456-789",
		RoomID:      7,
		StartDate:   timezone.Today(),
		EndDate:     timezone.Today().AddDate(0, 0, 4),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantCheckedIn bool
		wantErr       bool
	}{
		{
			name: "booking found and converted",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					TransformToRental(gomock.Any(), booking).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantCheckedIn: true,
			wantErr:       false,
		},
		{
			name: "missing booking is a quiet no-op",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantCheckedIn: false,
			wantErr:       false,
		},
		{
			name: "get error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantCheckedIn: false,
			wantErr:       true,
		},
		{
			name: "transform error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					TransformToRental(gomock.Any(), booking).
					Return(errors.New("transaction failed"))
			},
			wantCheckedIn: false,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			checkedIn, err := svc.CheckIn(context.Background(), 12)

			assert.Equal(t, tt.wantCheckedIn, checkedIn)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache miss, found in db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: 12, CustomerSIN: "123-456-789", RoomID: 7}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), 12)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
