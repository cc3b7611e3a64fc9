package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Patch("/{id}", handler.UpdateGuest)
		routerGroup.Post("/{id}/checkout", handler.CheckoutGuest)
	})
}

// RegisterGuest books a stay for a new guest.
// @Summary Register a guest
// @Description Register a guest and reserve the requested room for the stay.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.RegisterGuestRequest true "Register Guest Request"
// @Success 201 {object} response.Data[dto.GuestResponse] "Guest registered successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [post]
// @Security BearerAuth
func (handler *Handler) RegisterGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterGuest")
	defer scope.End()

	req := dto.RegisterGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest registered successfully")

	response.WithJSON(writer, http.StatusCreated, guest)
}

// GetGuests retrieves all guests based on query parameters.
// @Summary Get all guests
// @Description Retrieve all guests with optional filtering and pagination.
// @Tags Guest
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room"
// @Param phone query string false "Filter by phone"
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "List of guests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldRoomID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldPhone),
				Table:    model.TableName,
			},
		},
	}

	guests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID retrieves a guest by their ID.
// @Summary Get a guest by ID
// @Description Retrieve a guest by their unique identifier.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest updates an existing guest by their ID.
// @Summary Update a guest by ID
// @Description Update contact details of an existing guest.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Message "Guest updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest updated successfully")

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// CheckoutGuest checks a guest out and releases their room.
// @Summary Check out a guest
// @Description Mark the guest as checked out and release the assigned room.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message "Guest checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckoutGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Checkout(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to checkout guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked out successfully")

	response.WithMessage(w, http.StatusOK, "Guest checked out successfully")
}
