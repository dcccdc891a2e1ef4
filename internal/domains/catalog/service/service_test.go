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
	catalogMocks "ehotel/internal/domains/catalog/mocks"
	"ehotel/internal/domains/catalog/model/dto"
	"ehotel/internal/domains/catalog/service"
	roomMocks "ehotel/internal/domains/room/mocks"
	"ehotel/shared/failure"
)

func TestCatalogService_AttachCommodity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockOtel)

	req := dto.AttachCommodityRequest{CommodityName: "wifi"}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "commodity attached",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					CommodityExists(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					RoomCommodityExists(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertRoomCommodity(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "unknown commodity",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					CommodityExists(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "already attached",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					CommodityExists(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					RoomCommodityExists(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.AttachCommodity(context.Background(), req, 7)

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

func TestCatalogService_DetachCommodity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "commodity detached",
			setupMock: func() {
				mockRepo.EXPECT().
					RoomCommodityExists(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					DeleteRoomCommodity(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "not attached",
			setupMock: func() {
				mockRepo.EXPECT().
					RoomCommodityExists(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "delete error",
			setupMock: func() {
				mockRepo.EXPECT().
					RoomCommodityExists(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					DeleteRoomCommodity(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.DetachCommodity(context.Background(), 7, "wifi")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_ReportProblem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockOtel)

	req := dto.ReportProblemRequest{ProblemID: 2}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "problem reported",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					ProblemExists(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					RoomProblemExists(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertRoomProblem(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown problem",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					ProblemExists(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "already reported",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					ProblemExists(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					RoomProblemExists(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ReportProblem(context.Background(), req, 7)

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
