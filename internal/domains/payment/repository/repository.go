package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/payment/model"
	gDto "ehotel/shared/dto"
	gRepo "ehotel/shared/repository"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	base := gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel)
	base.ExcludeInsertColumns(model.FieldID)

	return &repositoryImpl{
		Repository: base,
		db:         db,
		otel:       otel,
	}
}
