package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/hotelchain/model"
	gDto "ehotel/shared/dto"
	gRepo "ehotel/shared/repository"
)

type HotelChain interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HotelChain, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HotelChain, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetEmails(ctx context.Context, filter gDto.FilterGroup) ([]model.ChainEmail, error)
	GetPhones(ctx context.Context, filter gDto.FilterGroup) ([]model.ChainPhone, error)
	GetOffices(ctx context.Context, filter gDto.FilterGroup) ([]model.ChainOffice, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.HotelChain]
	emailRepo  gRepo.Repository[model.ChainEmail]
	phoneRepo  gRepo.Repository[model.ChainPhone]
	officeRepo gRepo.Repository[model.ChainOffice]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) HotelChain {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HotelChain](model.EntityName, model.TableName, model.FieldID, db, otel),
		emailRepo:  gRepo.NewRepository[model.ChainEmail](model.EmailEntityName, model.EmailTableName, model.FieldEmail, db, otel),
		phoneRepo:  gRepo.NewRepository[model.ChainPhone](model.PhoneEntityName, model.PhoneTableName, model.FieldPhoneNumber, db, otel),
		officeRepo: gRepo.NewRepository[model.ChainOffice](model.OfficeEntityName, model.OfficeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetEmails(ctx context.Context, filter gDto.FilterGroup) ([]model.ChainEmail, error) {
	return repo.emailRepo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetPhones(ctx context.Context, filter gDto.FilterGroup) ([]model.ChainPhone, error) {
	return repo.phoneRepo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetOffices(ctx context.Context, filter gDto.FilterGroup) ([]model.ChainOffice, error) {
	return repo.officeRepo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
