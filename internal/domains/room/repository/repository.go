package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	bookingModel "ehotel/internal/domains/booking/model"
	hotelModel "ehotel/internal/domains/hotel/model"
	"ehotel/internal/domains/room/model"
	"ehotel/internal/domains/room/model/dto"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/logger"
	gRepo "ehotel/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetIDs(ctx context.Context) ([]*int, error)
	FindAvailable(ctx context.Context, criteria dto.SearchRoomsCriteria) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetIDs scans every room id so the caller can allocate the next one.
func (repo *repositoryImpl) GetIDs(ctx context.Context) (ids []*int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM %s", model.FieldID, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &ids, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get room ids: %w", err)
	}

	return ids, nil
}

func (repo *repositoryImpl) FindAvailable(ctx context.Context, criteria dto.SearchRoomsCriteria) (rooms []model.Room, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args := buildAvailabilityQuery(criteria)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare availability query: %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rooms, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return rooms, nil
}

// buildAvailabilityQuery ANDs every criterion and excludes rooms with any
// booking intersecting the requested stay. Both interval bounds are inclusive,
// so back-to-back stays sharing a boundary date collide.
func buildAvailabilityQuery(criteria dto.SearchRoomsCriteria) (string, map[string]any) {
	query := fmt.Sprintf(`SELECT %[1]s.* FROM %[1]s
		JOIN %[2]s ON %[2]s.id = %[1]s.hotel_id
		WHERE %[1]s.availability = TRUE
		AND %[1]s.capacity = :capacity
		AND %[1]s.price <= :price
		AND %[2]s.chain_id = :chain_id
		AND %[2]s.star_rating >= :star_rating
		AND %[2]s.rooms_number >= :rooms_number
		AND NOT EXISTS (
			SELECT 1 FROM %[3]s
			WHERE %[3]s.room_id = %[1]s.id
			AND %[3]s.start_date <= :end_date
			AND %[3]s.end_date >= :start_date
		)`,
		model.TableName, hotelModel.TableName, bookingModel.TableName)

	args := map[string]any{
		"capacity":     criteria.Capacity,
		"price":        criteria.Price,
		"chain_id":     criteria.ChainID,
		"star_rating":  criteria.StarRating,
		"rooms_number": criteria.RoomsNumber,
		"start_date":   criteria.StartDate,
		"end_date":     criteria.EndDate,
	}

	return query, args
}
