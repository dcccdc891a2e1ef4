package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/hotel/model"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/logger"
	gRepo "ehotel/shared/repository"
)

type Hotel interface {
	Insert(ctx context.Context, model model.Hotel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetIDs(ctx context.Context) ([]*int, error)
	GetPhones(ctx context.Context, filter gDto.FilterGroup) ([]model.HotelPhone, error)
	InsertPhone(ctx context.Context, phone model.HotelPhone) error
	DeletePhone(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	phoneRepo gRepo.Repository[model.HotelPhone]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		phoneRepo:  gRepo.NewRepository[model.HotelPhone](model.PhoneEntityName, model.PhoneTableName, model.FieldPhoneNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetIDs scans every hotel id so the caller can allocate the next one. The
// column is nullable-scanned to match legacy rows that predate the NOT NULL
// primary key.
func (repo *repositoryImpl) GetIDs(ctx context.Context) (ids []*int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM %s", model.FieldID, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &ids, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get hotel ids: %w", err)
	}

	return ids, nil
}

func (repo *repositoryImpl) GetPhones(ctx context.Context, filter gDto.FilterGroup) ([]model.HotelPhone, error) {
	return repo.phoneRepo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertPhone(ctx context.Context, phone model.HotelPhone) error {
	return repo.phoneRepo.Insert(ctx, phone) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeletePhone(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.phoneRepo.Delete(ctx, filter) //nolint:wrapcheck
}
