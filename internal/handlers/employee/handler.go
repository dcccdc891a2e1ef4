package employee

import (
	"net/http"

	"ehotel/infras/otel"
	"ehotel/internal/domains/employee/model"
	"ehotel/internal/domains/employee/model/dto"
	"ehotel/internal/domains/employee/service"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/validator"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/{sin}", handler.GetEmployeeBySIN)
		routerGroup.Patch("/{sin}", handler.UpdateEmployee)
		routerGroup.Delete("/{sin}", handler.DeleteEmployee)
	})
}

// CreateEmployee handles the registration of a new employee.
// @Summary Register a new employee
// @Description Register a new employee keyed by their SIN, optionally assigned to a hotel.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Create Employee Request"
// @Success 201 {object} response.Message "Employee created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [post]
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee created successfully")

	response.WithMessage(w, http.StatusCreated, "Employee created successfully")
}

// GetEmployees retrieves all employees.
// @Summary Get all employees
// @Description Retrieve all employees with optional filtering by hotel and pagination.
// @Tags Employee
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query int false "Filter by hotel"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse] "List of employees"
// @Failure 500 {object} response.Error
// @Router /v1/employees [get]
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if hotelID := r.URL.Query().Get(constant.RequestParamHotelID); hotelID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHotelID,
			Operator: gDto.FilterOperatorEq,
			Value:    hotelID,
			Table:    model.TableName,
		})
	}

	employees, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeBySIN retrieves an employee by their SIN.
// @Summary Get an employee by SIN
// @Tags Employee
// @Accept json
// @Produce json
// @Param sin path string true "Employee SIN"
// @Success 200 {object} response.Data[dto.EmployeeResponse] "Employee details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{sin} [get]
func (handler *Handler) GetEmployeeBySIN(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeBySIN")
	defer scope.End()

	sin := chi.URLParam(r, constant.RequestParamSIN)

	employee, err := handler.service.Get(ctx, sin)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by SIN")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee by their SIN.
// @Summary Update an employee by SIN
// @Tags Employee
// @Accept json
// @Produce json
// @Param sin path string true "Employee SIN"
// @Param request body dto.UpdateEmployeeRequest true "Update Employee Request"
// @Success 200 {object} response.Message "Employee updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{sin} [patch]
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	sin := chi.URLParam(r, constant.RequestParamSIN)

	req := dto.UpdateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, sin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

// DeleteEmployee deletes an employee by their SIN.
// @Summary Delete an employee by SIN
// @Tags Employee
// @Accept json
// @Produce json
// @Param sin path string true "Employee SIN"
// @Success 200 {object} response.Message "Employee deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{sin} [delete]
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	sin := chi.URLParam(r, constant.RequestParamSIN)

	if err := handler.service.Delete(ctx, sin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
