package catalog

import (
	"net/http"
	"strconv"

	"ehotel/infras/otel"
	"ehotel/internal/domains/catalog/model/dto"
	"ehotel/internal/domains/catalog/service"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/shared/validator"
	"ehotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamCommodityName = "commodity_name"

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Get("/commodities", handler.GetCommodities)
		routerGroup.Post("/commodities", handler.CreateCommodity)
		routerGroup.Get("/problems", handler.GetProblems)
		routerGroup.Post("/problems", handler.CreateProblem)
		routerGroup.Get("/rooms/{id}/commodities", handler.GetRoomCommodities)
		routerGroup.Post("/rooms/{id}/commodities", handler.AttachCommodity)
		routerGroup.Delete("/rooms/{id}/commodities/{commodity_name}", handler.DetachCommodity)
		routerGroup.Get("/rooms/{id}/problems", handler.GetRoomProblems)
		routerGroup.Post("/rooms/{id}/problems", handler.ReportProblem)
	})
}

// GetCommodities retrieves the commodity catalog.
// @Summary Get all commodities
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCommoditiesResponse] "List of commodities"
// @Failure 500 {object} response.Error
// @Router /v1/catalog/commodities [get]
func (handler *Handler) GetCommodities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCommodities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	commodities, err := handler.service.GetCommodities(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get commodities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, commodities)
}

// CreateCommodity adds a commodity to the catalog.
// @Summary Create a new commodity
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCommodityRequest true "Create Commodity Request"
// @Success 201 {object} response.Message "Commodity created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/commodities [post]
func (handler *Handler) CreateCommodity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCommodity")
	defer scope.End()

	req := dto.CreateCommodityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateCommodity(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create commodity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Commodity created successfully")

	response.WithMessage(w, http.StatusCreated, "Commodity created successfully")
}

// GetProblems retrieves the problem catalog.
// @Summary Get all problems
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetProblemsResponse] "List of problems"
// @Failure 500 {object} response.Error
// @Router /v1/catalog/problems [get]
func (handler *Handler) GetProblems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProblems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	problems, err := handler.service.GetProblems(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get problems")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, problems)
}

// CreateProblem adds a problem to the catalog.
// @Summary Create a new problem
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateProblemRequest true "Create Problem Request"
// @Success 201 {object} response.Message "Problem created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/problems [post]
func (handler *Handler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProblem")
	defer scope.End()

	req := dto.CreateProblemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateProblem(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create problem")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Problem created successfully")

	response.WithMessage(w, http.StatusCreated, "Problem created successfully")
}

// GetRoomCommodities lists the commodities attached to a room.
// @Summary Get commodities of a room
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Data[dto.GetRoomCommoditiesResponse] "Commodities of the room"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/rooms/{id}/commodities [get]
func (handler *Handler) GetRoomCommodities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomCommodities")
	defer scope.End()

	roomID, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid room id"))

		return
	}

	commodities, err := handler.service.GetRoomCommodities(ctx, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room commodities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, commodities)
}

// AttachCommodity attaches a commodity to a room.
// @Summary Attach a commodity to a room
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.AttachCommodityRequest true "Attach Commodity Request"
// @Success 201 {object} response.Message "Commodity attached successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/rooms/{id}/commodities [post]
func (handler *Handler) AttachCommodity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachCommodity")
	defer scope.End()

	roomID, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid room id"))

		return
	}

	req := dto.AttachCommodityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AttachCommodity(ctx, req, roomID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach commodity")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Commodity attached successfully")

	response.WithMessage(w, http.StatusCreated, "Commodity attached successfully")
}

// DetachCommodity removes a commodity from a room.
// @Summary Detach a commodity from a room
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param commodity_name path string true "Commodity name"
// @Success 200 {object} response.Message "Commodity detached successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/rooms/{id}/commodities/{commodity_name} [delete]
func (handler *Handler) DetachCommodity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DetachCommodity")
	defer scope.End()

	roomID, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid room id"))

		return
	}

	commodityName := chi.URLParam(r, requestParamCommodityName)

	if err := handler.service.DetachCommodity(ctx, roomID, commodityName); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to detach commodity")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Commodity detached successfully")
}

// GetRoomProblems lists the problems reported on a room.
// @Summary Get problems of a room
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Data[dto.GetRoomProblemsResponse] "Problems of the room"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/rooms/{id}/problems [get]
func (handler *Handler) GetRoomProblems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomProblems")
	defer scope.End()

	roomID, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid room id"))

		return
	}

	problems, err := handler.service.GetRoomProblems(ctx, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room problems")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, problems)
}

// ReportProblem reports a problem on a room.
// @Summary Report a problem on a room
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.ReportProblemRequest true "Report Problem Request"
// @Success 201 {object} response.Message "Problem reported successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/rooms/{id}/problems [post]
func (handler *Handler) ReportProblem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReportProblem")
	defer scope.End()

	roomID, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid room id"))

		return
	}

	req := dto.ReportProblemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReportProblem(ctx, req, roomID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to report problem")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Problem reported successfully")

	response.WithMessage(w, http.StatusCreated, "Problem reported successfully")
}
