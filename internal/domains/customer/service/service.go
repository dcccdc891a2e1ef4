package service

import (
	"context"
	"fmt"

	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/internal/domains/customer/model"
	"ehotel/internal/domains/customer/model/dto"
	"ehotel/internal/domains/customer/repository"
	"ehotel/shared"
	"ehotel/shared/cache"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCustomer    = "customer:get"
	cacheGetAllCustomer = "customer:gets"
	cacheCountCustomer  = "customer:count"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, sin string) (dto.CustomerResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, sin string) error
	Delete(ctx context.Context, sin string) error
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.SIN, model.FieldSIN, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if exist {
		return failure.Conflict("customer already exists") //nolint:wrapcheck
	}

	customer, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse customer request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, customer); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return fmt.Errorf("failed to create customer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, sin string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, sin)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(sin, model.FieldSIN, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.SIN == constant.Empty {
		return res, failure.NotFound("customer not found") //nolint:wrapcheck
	}

	res.FromModel(customer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, sin string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateCustomerRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	filter := shared.FilterByID(sin, model.FieldSIN, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		log.Error().Msg("customer not found")

		return failure.NotFound("customer not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, sin)); err != nil {
			log.Error().Err(err).Msg("failed to delete customer from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, sin string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(sin, model.FieldSIN, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		log.Error().Msg("customer not found")

		return failure.NotFound("customer not found") //nolint:wrapcheck
	}

	// Active bookings or rentals surface as a foreign key violation from the
	// store; there is no pre-check here.
	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, sin)); err != nil {
			log.Error().Err(err).Msg("failed to delete customer from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()

	return nil
}
