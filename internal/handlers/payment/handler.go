package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
		routerGroup.Post("/{id}/pay", handler.MarkPaymentPaid)
	})
}

// CreatePayment records an additional payment for a guest.
// @Summary Create a payment
// @Description Record a payment for an existing guest.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Create Payment Request"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Payment created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [post]
// @Security BearerAuth
func (handler *Handler) CreatePayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayment")
	defer scope.End()

	req := dto.CreatePaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	payment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment created successfully")

	response.WithJSON(writer, http.StatusCreated, payment)
}

// GetPayments retrieves all payments based on query parameters.
// @Summary Get all payments
// @Description Retrieve all payments with optional filtering and pagination.
// @Tags Payment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param guest_id query string false "Filter by guest"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
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
				Field:    model.FieldGuestID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldGuestID),
				Table:    model.TableName,
			},
		},
	}

	payments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentByID retrieves a payment by its ID.
// @Summary Get a payment by ID
// @Description Retrieve a payment by its unique identifier.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment retrieved successfully")

	response.WithJSON(w, http.StatusOK, payment)
}

// MarkPaymentPaid settles a pending payment.
// @Summary Mark a payment as paid
// @Description Settle a pending payment with the given method.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.MarkPaidRequest true "Mark Paid Request"
// @Success 200 {object} response.Message "Payment settled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id}/pay [post]
// @Security BearerAuth
func (handler *Handler) MarkPaymentPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPaymentPaid")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.MarkPaidRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkPaid(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark payment as paid")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment settled successfully")

	response.WithMessage(w, http.StatusOK, "Payment settled successfully")
}
