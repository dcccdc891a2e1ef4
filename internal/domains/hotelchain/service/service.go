package service

import (
	"context"
	"fmt"
	"strconv"

	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/internal/domains/hotelchain/model"
	"ehotel/internal/domains/hotelchain/model/dto"
	"ehotel/internal/domains/hotelchain/repository"
	"ehotel/shared"
	"ehotel/shared/cache"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetChain    = "hotel_chain:get"
	cacheGetAllChain = "hotel_chain:gets"
	cacheCountChain  = "hotel_chain:count"
)

type HotelChain interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetChainsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int) (dto.ChainDetailResponse, error)
}

type serviceImpl struct {
	repo  repository.HotelChain
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.HotelChain, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) HotelChain {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetChainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllChain, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel chains")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotel chains")

		return res, fmt.Errorf("failed to count hotel chains: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel chains")

		return res, fmt.Errorf("failed to get hotel chains: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel chains to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountChain, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel chain count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotel chains")

		return res, fmt.Errorf("failed to count hotel chains: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel chain count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ChainDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetChain, strconv.Itoa(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel chain")

		return res, nil
	}

	chain, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel chain")

		return res, fmt.Errorf("failed to get hotel chain: %w", err)
	}

	if chain.ID == 0 {
		return res, failure.NotFound("hotel chain not found") //nolint:wrapcheck
	}

	emails, err := s.repo.GetEmails(ctx, shared.FilterByID(id, model.FieldChainID, model.EmailTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel chain emails")

		return res, fmt.Errorf("failed to get hotel chain emails: %w", err)
	}

	phones, err := s.repo.GetPhones(ctx, shared.FilterByID(id, model.FieldChainID, model.PhoneTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel chain phones")

		return res, fmt.Errorf("failed to get hotel chain phones: %w", err)
	}

	offices, err := s.repo.GetOffices(ctx, shared.FilterByID(id, model.FieldChainID, model.OfficeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel chain offices")

		return res, fmt.Errorf("failed to get hotel chain offices: %w", err)
	}

	res.FromModels(chain, emails, phones, offices)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel chain to cache")
		}
	}()

	return res, nil
}
