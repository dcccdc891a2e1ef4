package rental

import (
	"net/http"
	"strconv"

	"ehotel/infras/otel"
	"ehotel/internal/domains/rental/model"
	"ehotel/internal/domains/rental/service"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Rentals are created by the booking check-in flow, so this handler only reads.
type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rentals", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRentals)
		routerGroup.Get("/{id}", handler.GetRentalByID)
	})
}

// GetRentals retrieves all rentals.
// @Summary Get all rentals
// @Description Retrieve all rentals with optional filtering by customer and pagination.
// @Tags Rental
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param customer_sin query string false "Filter by customer"
// @Success 200 {object} response.Data[dto.GetRentalsResponse] "List of rentals"
// @Failure 500 {object} response.Error
// @Router /v1/rentals [get]
func (handler *Handler) GetRentals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if customerSIN := r.URL.Query().Get(constant.RequestParamCustomerSIN); customerSIN != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerSIN,
			Operator: gDto.FilterOperatorEq,
			Value:    customerSIN,
			Table:    model.TableName,
		})
	}

	rentals, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rentals")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rentals)
}

// GetRentalByID retrieves a rental by its ID.
// @Summary Get a rental by ID
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path int true "Rental ID"
// @Success 200 {object} response.Data[dto.RentalResponse] "Rental details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id} [get]
func (handler *Handler) GetRentalByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid rental id"))

		return
	}

	rental, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rental)
}
