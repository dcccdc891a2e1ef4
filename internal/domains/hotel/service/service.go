package service

import (
	"context"
	"fmt"
	"strconv"

	"ehotel/config"
	"ehotel/infras/otel"
	employeeModel "ehotel/internal/domains/employee/model"
	employeeRepo "ehotel/internal/domains/employee/repository"
	"ehotel/internal/domains/hotel/model"
	"ehotel/internal/domains/hotel/model/dto"
	"ehotel/internal/domains/hotel/repository"
	chainModel "ehotel/internal/domains/hotelchain/model"
	chainRepo "ehotel/internal/domains/hotelchain/repository"
	"ehotel/shared"
	"ehotel/shared/cache"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = "hotel:get"
	cacheGetAllHotel = "hotel:gets"
	cacheCountHotel  = "hotel:count"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (int, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id int) error
	Delete(ctx context.Context, id int) error
	GetPhones(ctx context.Context, id int) (dto.GetHotelPhonesResponse, error)
	AddPhone(ctx context.Context, req dto.AddHotelPhoneRequest, id int) error
	DeletePhone(ctx context.Context, id int, phoneNumber string) error
}

type serviceImpl struct {
	repo         repository.Hotel
	chainRepo    chainRepo.HotelChain
	employeeRepo employeeRepo.Employee
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Hotel, chainRepo chainRepo.HotelChain, employeeRepo employeeRepo.Employee, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:         repo,
		chainRepo:    chainRepo,
		employeeRepo: employeeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	chainExists, err := s.chainRepo.Exist(ctx, shared.FilterByID(req.ChainID, chainModel.FieldID, chainModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel chain exists")

		return 0, fmt.Errorf("failed to check if hotel chain exists: %w", err)
	}

	if !chainExists {
		return 0, failure.BadRequestFromString("hotel chain does not exist") //nolint:wrapcheck
	}

	if req.ManagerSIN != "" {
		managerExists, err := s.employeeRepo.Exist(ctx, shared.FilterByID(req.ManagerSIN, employeeModel.FieldSIN, employeeModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if manager exists")

			return 0, fmt.Errorf("failed to check if manager exists: %w", err)
		}

		if !managerExists {
			return 0, failure.BadRequestFromString("manager does not exist") //nolint:wrapcheck
		}
	}

	ids, err := s.repo.GetIDs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan hotel ids")

		return 0, fmt.Errorf("failed to scan hotel ids: %w", err)
	}

	id = shared.NextIdentifier(ids)

	if err = s.repo.Insert(ctx, req.ToModel(id)); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return 0, fmt.Errorf("failed to create hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, strconv.Itoa(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == 0 {
		return res, failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id int) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateHotelRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		log.Error().Msg("hotel not found")

		return failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, strconv.Itoa(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		log.Error().Msg("hotel not found")

		return failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	// Rooms and employees referencing the hotel surface as a foreign key
	// violation from the store; there is no pre-check here.
	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, strconv.Itoa(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
	}()

	return nil
}

func (s *serviceImpl) GetPhones(ctx context.Context, id int) (res dto.GetHotelPhonesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPhones")
	defer scope.End()
	defer scope.TraceIfError(err)

	phones, err := s.repo.GetPhones(ctx, shared.FilterByID(id, model.FieldHotelID, model.PhoneTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel phones")

		return res, fmt.Errorf("failed to get hotel phones: %w", err)
	}

	res.FromModels(phones)

	return res, nil
}

func (s *serviceImpl) AddPhone(ctx context.Context, req dto.AddHotelPhoneRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	if err = s.repo.InsertPhone(ctx, req.ToModel(id)); err != nil {
		log.Error().Err(err).Msg("failed to add hotel phone")

		return fmt.Errorf("failed to add hotel phone: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeletePhone(ctx context.Context, id int, phoneNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhoneNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    phoneNumber,
				Table:    model.PhoneTableName,
			},
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.PhoneTableName,
			},
		},
	}

	if err = s.repo.DeletePhone(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel phone")

		return fmt.Errorf("failed to delete hotel phone: %w", err)
	}

	return nil
}
