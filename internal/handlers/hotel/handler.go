package hotel

import (
	"net/http"
	"strconv"

	"ehotel/infras/otel"
	"ehotel/internal/domains/hotel/model"
	"ehotel/internal/domains/hotel/model/dto"
	"ehotel/internal/domains/hotel/service"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/shared/validator"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
		routerGroup.Patch("/{id}", handler.UpdateHotel)
		routerGroup.Delete("/{id}", handler.DeleteHotel)
		routerGroup.Get("/{id}/phones", handler.GetHotelPhones)
		routerGroup.Post("/{id}/phones", handler.AddHotelPhone)
		routerGroup.Delete("/{id}/phones/{phone_number}", handler.DeleteHotelPhone)
	})
}

// CreateHotel handles the creation of a new hotel.
// @Summary Create a new hotel
// @Description Create a new hotel; its id is allocated by the server.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Data[int] "Allocated hotel id"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [post]
func (handler *Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel created successfully")

	response.WithJSON(w, http.StatusCreated, id)
}

// GetHotels retrieves all hotels based on query parameters.
// @Summary Get all hotels
// @Description Retrieve all hotels with optional filtering and pagination.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param chain_id query int false "Filter by hotel chain"
// @Param city query string false "Filter by city"
// @Success 200 {object} response.Data[dto.GetHotelsResponse] "List of hotels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	chainID := r.URL.Query().Get(model.FieldChainID)
	city := r.URL.Query().Get(model.FieldCity)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if chainID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldChainID,
			Operator: gDto.FilterOperatorEq,
			Value:    chainID,
			Table:    model.TableName,
		})
	}

	if city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorEq,
			Value:    city,
			Table:    model.TableName,
		})
	}

	hotels, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByID retrieves a hotel by its ID.
// @Summary Get a hotel by ID
// @Description Retrieve a hotel by its unique identifier.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotel)
}

// UpdateHotel updates an existing hotel by its ID.
// @Summary Update a hotel by ID
// @Description Update the details of an existing hotel; the id itself is immutable.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Message "Hotel updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [patch]
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	req := dto.UpdateHotelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel updated successfully")

	response.WithMessage(w, http.StatusOK, "Hotel updated successfully")
}

// DeleteHotel deletes a hotel by its ID.
// @Summary Delete a hotel by ID
// @Description Delete a hotel; referencing rooms or employees make the store reject it.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} response.Message "Hotel deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [delete]
func (handler *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel deleted successfully")

	response.WithMessage(w, http.StatusOK, "Hotel deleted successfully")
}

// GetHotelPhones lists a hotel's phone numbers.
// @Summary Get hotel phone numbers
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} response.Data[dto.GetHotelPhonesResponse] "Hotel phone numbers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/phones [get]
func (handler *Handler) GetHotelPhones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelPhones")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	phones, err := handler.service.GetPhones(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel phones")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, phones)
}

// AddHotelPhone registers a phone number for a hotel.
// @Summary Add a hotel phone number
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Param request body dto.AddHotelPhoneRequest true "Add Hotel Phone Request"
// @Success 201 {object} response.Message "Hotel phone added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/phones [post]
func (handler *Handler) AddHotelPhone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddHotelPhone")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	req := dto.AddHotelPhoneRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddPhone(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add hotel phone")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Hotel phone added successfully")
}

// DeleteHotelPhone removes a phone number from a hotel.
// @Summary Delete a hotel phone number
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Param phone_number path string true "Phone number"
// @Success 200 {object} response.Message "Hotel phone deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/phones/{phone_number} [delete]
func (handler *Handler) DeleteHotelPhone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotelPhone")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	phoneNumber := chi.URLParam(r, model.FieldPhoneNumber)

	if err := handler.service.DeletePhone(ctx, id, phoneNumber); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel phone")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hotel phone deleted successfully")
}
