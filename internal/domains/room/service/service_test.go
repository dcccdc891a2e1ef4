package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ehotel/config"
	"ehotel/infras/otel/mocks"
	hotelMocks "ehotel/internal/domains/hotel/mocks"
	roomMocks "ehotel/internal/domains/room/mocks"
	"ehotel/internal/domains/room/model"
	"ehotel/internal/domains/room/model/dto"
	"ehotel/internal/domains/room/service"
	cacheMocks "ehotel/shared/cache/mocks"
)

func intPtr(v int) *int {
	return &v
}

func validCreateRoomRequest() dto.CreateRoomRequest {
	availability := true

	return dto.CreateRoomRequest{
		RoomNumber:   101,
		Availability: &availability,
		Price:        180,
		View:         "sea",
		Extensible:   true,
		Capacity:     "double",
		HotelID:      4,
	}
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockHotelRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantID    int
		wantErr   bool
	}{
		{
			name: "id is one past the highest in use",
			setupMock: func() {
				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetIDs(gomock.Any()).
					Return([]*int{intPtr(3), intPtr(7), intPtr(5)}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, 8, room.ID)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID:  8,
			wantErr: false,
		},
		{
			name: "first room gets id 1",
			setupMock: func() {
				mockHotelRepo.EXPECT().
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
			name: "hotel does not exist",
			setupMock: func() {
				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "id scan error",
			setupMock: func() {
				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetIDs(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockHotelRepo.EXPECT().
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

			id, err := svc.Create(context.Background(), validCreateRoomRequest())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestRoomService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockHotelRepo, cfg, mockCache, mockOtel)

	validReq := dto.SearchRoomsRequest{
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-05",
		Capacity:    "double",
		Price:       250,
		ChainID:     1,
		StarRating:  3,
		RoomsNumber: 20,
	}

	tests := []struct {
		name      string
		req       dto.SearchRoomsRequest
		setupMock func()
		wantLen   int
		wantErr   bool
	}{
		{
			name: "available rooms are returned",
			req:  validReq,
			setupMock: func() {
				view := "sea"
				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), gomock.Any()).
					Return([]model.Room{
						{ID: 1, RoomNumber: 101, Price: 180, Capacity: "double", HotelID: 4, View: &view},
						{ID: 2, RoomNumber: 102, Price: 200, Capacity: "double", HotelID: 4},
					}, nil)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "no rooms match",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), gomock.Any()).
					Return([]model.Room{}, nil)
			},
			wantLen: 0,
			wantErr: false,
		},
		{
			name: "reversed range never reaches the repository",
			req: func() dto.SearchRoomsRequest {
				req := validReq
				req.StartDate = "2026-09-05"
				req.EndDate = "2026-09-01"

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Search(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Rooms, tt.wantLen)
		})
	}
}
