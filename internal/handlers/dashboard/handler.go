package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/dashboard/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/inconsistencies", handler.GetInconsistencies)
	})
}

// GetSummary returns the operational overview.
// @Summary Get dashboard summary
// @Description Room counts by status, active guests, pending payments and today's movements.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Dashboard summary"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// GetInconsistencies reports drift between room state and guest records.
// @Summary Get data inconsistencies
// @Description Occupied rooms with no active guest and active guests whose room is not occupied.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.InconsistenciesResponse] "Detected inconsistencies"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/inconsistencies [get]
// @Security BearerAuth
func (handler *Handler) GetInconsistencies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInconsistencies")
	defer scope.End()

	inconsistencies, err := handler.service.Inconsistencies(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard inconsistencies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard inconsistencies retrieved successfully")

	response.WithJSON(w, http.StatusOK, inconsistencies)
}
