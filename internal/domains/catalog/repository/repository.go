package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/catalog/model"
	gDto "ehotel/shared/dto"
	gRepo "ehotel/shared/repository"
)

type Catalog interface {
	GetCommodities(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Commodity, error)
	CommodityExists(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertCommodity(ctx context.Context, commodity model.Commodity) error
	GetProblems(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Problem, error)
	ProblemExists(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertProblem(ctx context.Context, problem model.Problem) error
	GetRoomCommodities(ctx context.Context, filter gDto.FilterGroup) ([]model.RoomCommodity, error)
	RoomCommodityExists(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertRoomCommodity(ctx context.Context, row model.RoomCommodity) error
	DeleteRoomCommodity(ctx context.Context, filter gDto.FilterGroup) error
	GetRoomProblems(ctx context.Context, filter gDto.FilterGroup) ([]model.RoomProblem, error)
	RoomProblemExists(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertRoomProblem(ctx context.Context, row model.RoomProblem) error
}

type repositoryImpl struct {
	commodityRepo     gRepo.Repository[model.Commodity]
	problemRepo       gRepo.Repository[model.Problem]
	roomCommodityRepo gRepo.Repository[model.RoomCommodity]
	roomProblemRepo   gRepo.Repository[model.RoomProblem]
	db                *postgres.Connection
	otel              otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Catalog {
	problemRepo := gRepo.NewRepository[model.Problem](model.ProblemEntityName, model.ProblemTableName, model.FieldID, db, otel)
	problemRepo.ExcludeInsertColumns(model.FieldID)

	return &repositoryImpl{
		commodityRepo:     gRepo.NewRepository[model.Commodity](model.CommodityEntityName, model.CommodityTableName, model.FieldName, db, otel),
		problemRepo:       problemRepo,
		roomCommodityRepo: gRepo.NewRepository[model.RoomCommodity](model.RoomCommodityEntityName, model.RoomCommodityTableName, model.FieldRoomID, db, otel),
		roomProblemRepo:   gRepo.NewRepository[model.RoomProblem](model.RoomProblemEntityName, model.RoomProblemTableName, model.FieldRoomID, db, otel),
		db:                db,
		otel:              otel,
	}
}

func (repo *repositoryImpl) GetCommodities(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Commodity, error) {
	return repo.commodityRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CommodityExists(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.commodityRepo.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertCommodity(ctx context.Context, commodity model.Commodity) error {
	return repo.commodityRepo.Insert(ctx, commodity) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetProblems(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Problem, error) {
	return repo.problemRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ProblemExists(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.problemRepo.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertProblem(ctx context.Context, problem model.Problem) error {
	return repo.problemRepo.Insert(ctx, problem) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetRoomCommodities(ctx context.Context, filter gDto.FilterGroup) ([]model.RoomCommodity, error) {
	return repo.roomCommodityRepo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) RoomCommodityExists(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.roomCommodityRepo.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertRoomCommodity(ctx context.Context, row model.RoomCommodity) error {
	return repo.roomCommodityRepo.Insert(ctx, row) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteRoomCommodity(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.roomCommodityRepo.Delete(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetRoomProblems(ctx context.Context, filter gDto.FilterGroup) ([]model.RoomProblem, error) {
	return repo.roomProblemRepo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) RoomProblemExists(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.roomProblemRepo.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertRoomProblem(ctx context.Context, row model.RoomProblem) error {
	return repo.roomProblemRepo.Insert(ctx, row) //nolint:wrapcheck
}
