package hotelchain

import (
	"net/http"
	"strconv"

	"ehotel/infras/otel"
	"ehotel/internal/domains/hotelchain/service"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.HotelChain
	otel    otel.Otel
}

func New(service service.HotelChain, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chains", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetChains)
		routerGroup.Get("/{id}", handler.GetChainByID)
	})
}

// GetChains retrieves all hotel chains.
// @Summary Get all hotel chains
// @Description Retrieve all hotel chains with pagination.
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetChainsResponse] "List of hotel chains"
// @Failure 500 {object} response.Error
// @Router /v1/chains [get]
func (handler *Handler) GetChains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChains")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	chains, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel chains")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chains)
}

// GetChainByID retrieves a hotel chain with its contact details.
// @Summary Get a hotel chain by ID
// @Description Retrieve a hotel chain together with its emails, phones and offices.
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path int true "Hotel Chain ID"
// @Success 200 {object} response.Data[dto.ChainDetailResponse] "Hotel chain details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chains/{id} [get]
func (handler *Handler) GetChainByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChainByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid chain id"))

		return
	}

	chain, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel chain")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chain)
}
