package service

import (
	"context"
	"fmt"

	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/internal/domains/catalog/model"
	"ehotel/internal/domains/catalog/model/dto"
	"ehotel/internal/domains/catalog/repository"
	roomModel "ehotel/internal/domains/room/model"
	roomRepo "ehotel/internal/domains/room/repository"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	GetCommodities(ctx context.Context, req gDto.QueryParams) (dto.GetCommoditiesResponse, error)
	CreateCommodity(ctx context.Context, req dto.CreateCommodityRequest) error
	GetProblems(ctx context.Context, req gDto.QueryParams) (dto.GetProblemsResponse, error)
	CreateProblem(ctx context.Context, req dto.CreateProblemRequest) error
	GetRoomCommodities(ctx context.Context, roomID int) (dto.GetRoomCommoditiesResponse, error)
	AttachCommodity(ctx context.Context, req dto.AttachCommodityRequest, roomID int) error
	DetachCommodity(ctx context.Context, roomID int, commodityName string) error
	GetRoomProblems(ctx context.Context, roomID int) (dto.GetRoomProblemsResponse, error)
	ReportProblem(ctx context.Context, req dto.ReportProblemRequest, roomID int) error
}

type serviceImpl struct {
	repo     repository.Catalog
	roomRepo roomRepo.Room
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Catalog, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) GetCommodities(ctx context.Context, req gDto.QueryParams) (res dto.GetCommoditiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCommodities")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetCommodities(ctx, req, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get commodities")

		return res, fmt.Errorf("failed to get commodities: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) CreateCommodity(ctx context.Context, req dto.CreateCommodityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCommodity")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.CommodityExists(ctx, shared.FilterByID(req.Name, model.FieldName, model.CommodityTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if commodity exists")

		return fmt.Errorf("failed to check if commodity exists: %w", err)
	}

	if exist {
		return failure.Conflict("commodity already exists") //nolint:wrapcheck
	}

	if err = s.repo.InsertCommodity(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create commodity")

		return fmt.Errorf("failed to create commodity: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetProblems(ctx context.Context, req gDto.QueryParams) (res dto.GetProblemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProblems")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetProblems(ctx, req, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get problems")

		return res, fmt.Errorf("failed to get problems: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) CreateProblem(ctx context.Context, req dto.CreateProblemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateProblem")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.ProblemExists(ctx, shared.FilterByID(req.Name, model.FieldName, model.ProblemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if problem exists")

		return fmt.Errorf("failed to check if problem exists: %w", err)
	}

	if exist {
		return failure.Conflict("problem already exists") //nolint:wrapcheck
	}

	if err = s.repo.InsertProblem(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create problem")

		return fmt.Errorf("failed to create problem: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetRoomCommodities(ctx context.Context, roomID int) (res dto.GetRoomCommoditiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomCommodities")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetRoomCommodities(ctx, shared.FilterByID(roomID, model.FieldRoomID, model.RoomCommodityTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room commodities")

		return res, fmt.Errorf("failed to get room commodities: %w", err)
	}

	res.FromModels(roomID, models)

	return res, nil
}

func (s *serviceImpl) AttachCommodity(ctx context.Context, req dto.AttachCommodityRequest, roomID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachCommodity")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	commodityExists, err := s.repo.CommodityExists(ctx, shared.FilterByID(req.CommodityName, model.FieldName, model.CommodityTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if commodity exists")

		return fmt.Errorf("failed to check if commodity exists: %w", err)
	}

	if !commodityExists {
		return failure.BadRequestFromString("commodity does not exist") //nolint:wrapcheck
	}

	filter := roomCommodityFilter(roomID, req.CommodityName)

	attached, err := s.repo.RoomCommodityExists(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if commodity is attached")

		return fmt.Errorf("failed to check if commodity is attached: %w", err)
	}

	if attached {
		return failure.Conflict("commodity already attached to room") //nolint:wrapcheck
	}

	row := model.RoomCommodity{
		RoomID:        roomID,
		CommodityName: req.CommodityName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.InsertRoomCommodity(ctx, row); err != nil {
		log.Error().Err(err).Msg("failed to attach commodity")

		return fmt.Errorf("failed to attach commodity: %w", err)
	}

	return nil
}

func (s *serviceImpl) DetachCommodity(ctx context.Context, roomID int, commodityName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DetachCommodity")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := roomCommodityFilter(roomID, commodityName)

	attached, err := s.repo.RoomCommodityExists(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if commodity is attached")

		return fmt.Errorf("failed to check if commodity is attached: %w", err)
	}

	if !attached {
		return failure.NotFound("commodity not attached to room") //nolint:wrapcheck
	}

	if err = s.repo.DeleteRoomCommodity(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to detach commodity")

		return fmt.Errorf("failed to detach commodity: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetRoomProblems(ctx context.Context, roomID int) (res dto.GetRoomProblemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomProblems")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetRoomProblems(ctx, shared.FilterByID(roomID, model.FieldRoomID, model.RoomProblemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room problems")

		return res, fmt.Errorf("failed to get room problems: %w", err)
	}

	res.FromModels(roomID, models)

	return res, nil
}

func (s *serviceImpl) ReportProblem(ctx context.Context, req dto.ReportProblemRequest, roomID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReportProblem")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	problemExists, err := s.repo.ProblemExists(ctx, shared.FilterByID(req.ProblemID, model.FieldID, model.ProblemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if problem exists")

		return fmt.Errorf("failed to check if problem exists: %w", err)
	}

	if !problemExists {
		return failure.BadRequestFromString("problem does not exist") //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.RoomProblemTableName,
			},
			gDto.Filter{
				Field:    model.FieldProblemID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.ProblemID,
				Table:    model.RoomProblemTableName,
			},
		},
	}

	reported, err := s.repo.RoomProblemExists(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if problem is reported")

		return fmt.Errorf("failed to check if problem is reported: %w", err)
	}

	if reported {
		return failure.Conflict("problem already reported for room") //nolint:wrapcheck
	}

	row := model.RoomProblem{
		RoomID:    roomID,
		ProblemID: req.ProblemID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if err = s.repo.InsertRoomProblem(ctx, row); err != nil {
		log.Error().Err(err).Msg("failed to report problem")

		return fmt.Errorf("failed to report problem: %w", err)
	}

	return nil
}

func roomCommodityFilter(roomID int, commodityName string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.RoomCommodityTableName,
			},
			gDto.Filter{
				Field:    model.FieldCommodityName,
				Operator: gDto.FilterOperatorEq,
				Value:    commodityName,
				Table:    model.RoomCommodityTableName,
			},
		},
	}
}
