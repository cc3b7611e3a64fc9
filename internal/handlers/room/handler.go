package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param room_number formData string true "Room number"
// @Param room_type formData string true "Room type"
// @Param price formData integer true "Nightly price"
// @Param status formData string false "Room status"
// @Param description formData string false "Room description"
// @Param photo formData file false "Room photo"
// @Success 201 {object} response.Data[dto.RoomResponse] "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		RoomNumber:  request.FormValue("room_number"),
		RoomType:    request.FormValue("room_type"),
		Status:      request.FormValue("status"),
		Description: request.FormValue("description"),
	}

	if priceStr := request.FormValue("price"); priceStr != "" {
		if price, err := shared.ConvertStringToInt(priceStr); err == nil {
			req.Price = int64(price)
		}
	}

	file, fileHeader, err := request.FormFile("photo")
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(writer, http.StatusCreated, room)
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_type query string false "Filter by room type"
// @Param room_number query string false "Filter by room number"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
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
				Field:    model.FieldRoomType,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldRoomType),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldRoomNumber),
				Table:    model.TableName,
			},
		},
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailableRooms lists rooms free for the requested interval.
// @Summary Get available rooms
// @Description Retrieve rooms free for the requested check-in/check-out interval.
// @Tags Room
// @Accept json
// @Produce json
// @Param checkin query string true "Check-in date (RFC3339)"
// @Param checkout query string true "Check-out date (RFC3339)"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/available [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	req := dto.AvailableRoomsRequest{
		Checkin:  r.URL.Query().Get("checkin"),
		Checkout: r.URL.Query().Get("checkout"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.Available(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param room_type formData string false "Room type"
// @Param price formData integer false "Nightly price"
// @Param status formData string false "Room status"
// @Param description formData string false "Room description"
// @Param photo formData file false "Room photo"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		RoomType:    r.FormValue("room_type"),
		Status:      r.FormValue("status"),
		Description: r.FormValue("description"),
	}

	if priceStr := r.FormValue("price"); priceStr != "" {
		if price, err := shared.ConvertStringToInt(priceStr); err == nil {
			p := int64(price)
			req.Price = &p
		}
	}

	file, fileHeader, err := r.FormFile("photo")
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Delete a room using its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
