package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/notification/model"
	"lodge/internal/domains/notification/model/dto"
	"lodge/internal/domains/notification/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Dispatcher
	otel    otel.Otel
}

func New(service service.Dispatcher, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SendNotification)
		routerGroup.Get("/", handler.GetNotifications)
	})
}

// SendNotification renders a template and dispatches an SMS.
// @Summary Send a notification
// @Description Render a message template and dispatch it to a phone number.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.SendRequest true "Send Notification Request"
// @Success 200 {object} response.Data[dto.SendResponse] "Notification dispatched"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [post]
// @Security BearerAuth
func (handler *Handler) SendNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendNotification")
	defer scope.End()

	req := dto.SendRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Send(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send notification")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Notification dispatched")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetNotifications retrieves the delivery log.
// @Summary Get notification history
// @Description Retrieve past notification attempts with optional filtering and pagination.
// @Tags Notification
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param phone query string false "Filter by phone"
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "Notification history"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
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
				Field:    model.FieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldPhone),
				Table:    model.TableName,
			},
		},
	}

	notifications, err := handler.service.History(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}
