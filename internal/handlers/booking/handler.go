package booking

import (
	"net/http"
	"strconv"

	"ehotel/infras/otel"
	"ehotel/internal/domains/booking/model"
	"ehotel/internal/domains/booking/model/dto"
	"ehotel/internal/domains/booking/service"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/shared/validator"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Post("/{id}/checkin", handler.CheckIn)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book a room for a customer. An unknown customer SIN is registered from the submitted details in the same transaction.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Message "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithMessage(w, http.StatusCreated, "Booking created successfully")
}

// GetBookings retrieves all bookings.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering by customer and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param customer_sin query string false "Filter by customer"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
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

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid booking id"))

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking cancels a booking by its ID.
// @Summary Delete a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid booking id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// CheckIn converts a booking into a rental.
// @Summary Check in a booking
// @Description Convert a booking into a rental. Checking in a booking that no longer exists is reported as a no-op, not an error.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.CheckInResponse] "Check-in result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkin [post]
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid booking id"))

		return
	}

	checkedIn, err := handler.service.CheckIn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in booking")

		response.WithError(w, err)

		return
	}

	res := dto.CheckInResponse{CheckedIn: checkedIn}
	if checkedIn {
		scope.AddEvent("Booking checked in successfully")

		res.Message = "Booking checked in successfully"
	} else {
		res.Message = "Booking not found, nothing to check in"
	}

	response.WithJSON(w, http.StatusOK, res)
}
