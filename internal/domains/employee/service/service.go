package service

import (
	"context"
	"fmt"

	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/internal/domains/employee/model"
	"ehotel/internal/domains/employee/model/dto"
	"ehotel/internal/domains/employee/repository"
	hotelModel "ehotel/internal/domains/hotel/model"
	hotelRepo "ehotel/internal/domains/hotel/repository"
	"ehotel/shared"
	"ehotel/shared/cache"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetEmployee    = "employee:get"
	cacheGetAllEmployee = "employee:gets"
	cacheCountEmployee  = "employee:count"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEmployeesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, sin string) (dto.EmployeeResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, sin string) error
	Delete(ctx context.Context, sin string) error
}

type serviceImpl struct {
	repo      repository.Employee
	hotelRepo hotelRepo.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Employee, hotelRepo hotelRepo.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.SIN, model.FieldSIN, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if exist {
		return failure.Conflict("employee already exists") //nolint:wrapcheck
	}

	if req.HotelID != 0 {
		hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if hotel exists")

			return fmt.Errorf("failed to check if hotel exists: %w", err)
		}

		if !hotelExists {
			return failure.BadRequestFromString("hotel does not exist") //nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return fmt.Errorf("failed to create employee: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEmployee)
		shared.InvalidateCaches(c, s.cache, cacheCountEmployee)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEmployee, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employees")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employees to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEmployee, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employee count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employee count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, sin string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEmployee, sin)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employee")

		return res, nil
	}

	employee, err := s.repo.Get(ctx, shared.FilterByID(sin, model.FieldSIN, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.SIN == constant.Empty {
		return res, failure.NotFound("employee not found") //nolint:wrapcheck
	}

	res.FromModel(employee)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employee to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, sin string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateEmployeeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	filter := shared.FilterByID(sin, model.FieldSIN, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		log.Error().Msg("employee not found")

		return failure.NotFound("employee not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update employee")

		return fmt.Errorf("failed to update employee: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEmployee, sin)); err != nil {
			log.Error().Err(err).Msg("failed to delete employee from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEmployee)
		shared.InvalidateCaches(c, s.cache, cacheCountEmployee)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, sin string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(sin, model.FieldSIN, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		log.Error().Msg("employee not found")

		return failure.NotFound("employee not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEmployee, sin)); err != nil {
			log.Error().Err(err).Msg("failed to delete employee from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEmployee)
		shared.InvalidateCaches(c, s.cache, cacheCountEmployee)
	}()

	return nil
}
