package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/booking/model"
	customerModel "ehotel/internal/domains/customer/model"
	rentalModel "ehotel/internal/domains/rental/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/logger"
	gModel "ehotel/shared/model"
	gRepo "ehotel/shared/repository"
	"ehotel/shared/timezone"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertWithCustomer(ctx context.Context, booking model.Booking, customer *customerModel.Customer) error
	TransformToRental(ctx context.Context, booking model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	customerRepo gRepo.Repository[customerModel.Customer]
	rentalRepo   gRepo.Repository[rentalModel.Rental]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	base := gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel)
	base.ExcludeInsertColumns(model.FieldID)

	rentalRepo := gRepo.NewRepository[rentalModel.Rental](rentalModel.EntityName, rentalModel.TableName, rentalModel.FieldID, db, otel)
	rentalRepo.ExcludeInsertColumns(rentalModel.FieldID)

	return &repositoryImpl{
		Repository:   base,
		customerRepo: gRepo.NewRepository[customerModel.Customer](customerModel.EntityName, customerModel.TableName, customerModel.FieldSIN, db, otel),
		rentalRepo:   rentalRepo,
		db:           db,
		otel:         otel,
	}
}

// InsertWithCustomer writes the booking, and the customer when one is given,
// in a single transaction so a failed booking insert never leaves a stray
// customer behind.
func (repo *repositoryImpl) InsertWithCustomer(ctx context.Context, booking model.Booking, customer *customerModel.Customer) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if customer != nil {
		if err = repo.customerRepo.InsertTx(ctx, tx, *customer); err != nil {
			return fmt.Errorf("failed to insert customer: %w", err)
		}
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// TransformToRental copies the booking's customer, room and stay range into a
// fresh rental and removes the booking, atomically. The rental gets a new id
// from the rentals sequence.
func (repo *repositoryImpl) TransformToRental(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransformToRental")
	defer scope.End()
	defer scope.TraceIfError(err)

	rental := rentalModel.Rental{
		CustomerSIN: booking.CustomerSIN,
		RoomID:      booking.RoomID,
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if err = repo.rentalRepo.InsertTx(ctx, tx, rental); err != nil {
		return fmt.Errorf("failed to insert rental: %w", err)
	}

	if err = repo.DeleteTx(ctx, tx, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
