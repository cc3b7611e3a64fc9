package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/settings/model/dto"
	"lodge/internal/domains/settings/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSettings)
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Patch("/", handler.UpdateSettings)
	})
}

// CreateSettings completes the onboarding configuration.
// @Summary Create settings
// @Description Configure the property during onboarding. Only one active configuration is allowed.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.CreateSettingsRequest true "Create Settings Request"
// @Success 201 {object} response.Data[dto.SettingsResponse] "Settings created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [post]
// @Security BearerAuth
func (handler *Handler) CreateSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSettings")
	defer scope.End()

	req := dto.CreateSettingsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	settings, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create settings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Settings created successfully")

	response.WithJSON(writer, http.StatusCreated, settings)
}

// GetSettings retrieves the active configuration.
// @Summary Get settings
// @Description Retrieve the active property configuration.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SettingsResponse] "Settings details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSettings updates the active configuration.
// @Summary Update settings
// @Description Update the active property configuration.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Message "Settings updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings updated successfully")

	response.WithMessage(w, http.StatusOK, "Settings updated successfully")
}
