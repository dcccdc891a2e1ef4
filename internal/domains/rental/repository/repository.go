package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/rental/model"
	gDto "ehotel/shared/dto"
	gRepo "ehotel/shared/repository"
)

// Rentals are written only by the booking check-in transaction; this
// repository is read-only.
type Rental interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rental, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Rental, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rental]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rental](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
