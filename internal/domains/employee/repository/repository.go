package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/employee/model"
	gDto "ehotel/shared/dto"
	gRepo "ehotel/shared/repository"
)

type Employee interface {
	Insert(ctx context.Context, model model.Employee) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Employee, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Employee, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Employee]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Employee {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Employee](model.EntityName, model.TableName, model.FieldSIN, db, otel),
		db:         db,
		otel:       otel,
	}
}
