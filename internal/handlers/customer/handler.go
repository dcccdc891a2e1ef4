package customer

import (
	"net/http"

	"ehotel/infras/otel"
	"ehotel/internal/domains/customer/model/dto"
	"ehotel/internal/domains/customer/service"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/validator"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCustomer)
		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/{sin}", handler.GetCustomerBySIN)
		routerGroup.Patch("/{sin}", handler.UpdateCustomer)
		routerGroup.Delete("/{sin}", handler.DeleteCustomer)
	})
}

// CreateCustomer handles the registration of a new customer.
// @Summary Register a new customer
// @Description Register a new customer keyed by their SIN.
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Create Customer Request"
// @Success 201 {object} response.Message "Customer created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [post]
func (handler *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer created successfully")

	response.WithMessage(w, http.StatusCreated, "Customer created successfully")
}

// GetCustomers retrieves all customers.
// @Summary Get all customers
// @Description Retrieve all customers with pagination.
// @Tags Customer
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCustomersResponse] "List of customers"
// @Failure 500 {object} response.Error
// @Router /v1/customers [get]
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	customers, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customers)
}

// GetCustomerBySIN retrieves a customer by their SIN.
// @Summary Get a customer by SIN
// @Tags Customer
// @Accept json
// @Produce json
// @Param sin path string true "Customer SIN"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Customer details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{sin} [get]
func (handler *Handler) GetCustomerBySIN(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerBySIN")
	defer scope.End()

	sin := chi.URLParam(r, constant.RequestParamSIN)

	customer, err := handler.service.Get(ctx, sin)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer by SIN")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer by their SIN.
// @Summary Update a customer by SIN
// @Tags Customer
// @Accept json
// @Produce json
// @Param sin path string true "Customer SIN"
// @Param request body dto.UpdateCustomerRequest true "Update Customer Request"
// @Success 200 {object} response.Message "Customer updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{sin} [patch]
func (handler *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	sin := chi.URLParam(r, constant.RequestParamSIN)

	req := dto.UpdateCustomerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, sin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Customer updated successfully")
}

// DeleteCustomer deletes a customer by their SIN.
// @Summary Delete a customer by SIN
// @Tags Customer
// @Accept json
// @Produce json
// @Param sin path string true "Customer SIN"
// @Success 200 {object} response.Message "Customer deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{sin} [delete]
func (handler *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomer")
	defer scope.End()

	sin := chi.URLParam(r, constant.RequestParamSIN)

	if err := handler.service.Delete(ctx, sin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete customer")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Customer deleted successfully")
}
