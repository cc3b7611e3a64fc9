package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	guestModel "lodge/internal/domains/guest/model"
	guestRepo "lodge/internal/domains/guest/repository"
	notifDto "lodge/internal/domains/notification/model/dto"
	notifService "lodge/internal/domains/notification/service"
	"lodge/internal/domains/notification/template"
	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/repository"
	settingsModel "lodge/internal/domains/settings/model"
	settingsRepo "lodge/internal/domains/settings/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

const (
	cacheGetPayment    = "payment:get"
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	MarkPaid(ctx context.Context, req dto.MarkPaidRequest, id string) error
}

type serviceImpl struct {
	repo         repository.Payment
	guestRepo    guestRepo.Guest
	settingsRepo settingsRepo.Settings
	notifier     notifService.Dispatcher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Payment,
	guestRepo guestRepo.Guest,
	settingsRepo settingsRepo.Settings,
	notifier notifService.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:         repo,
		guestRepo:    guestRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextGuest).(string)

	exists, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("guest not found")
	}

	payment := req.ToModel(user)

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment")

		return res, nil
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == "" {
		return res, failure.NotFound("payment not found")
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment to cache")
		}
	}()

	return res, nil
}

// MarkPaid settles a pending payment. Settling twice is a conflict, so a
// double-submitted form cannot silently re-settle.
func (s *serviceImpl) MarkPaid(ctx context.Context, req dto.MarkPaidRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaymentPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextGuest).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	payment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == "" {
		return failure.NotFound("payment not found")
	}

	if payment.Status == model.StatusPaid {
		return failure.Conflict("payment is already settled")
	}

	if err := s.repo.Update(ctx, dto.Paid(req.Method, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to mark payment as paid")

		return fmt.Errorf("failed to mark payment as paid: %w", err)
	}

	go s.notifyPayment(context.WithoutCancel(ctx), payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPayment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete payment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()

	return nil
}

func (s *serviceImpl) notifyPayment(ctx context.Context, payment model.Payment) {
	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(payment.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil || guest.ID == "" {
		log.Warn().Err(err).Str("paymentID", payment.ID).Msg("payment confirmation skipped, guest not found")

		return
	}

	vars := map[string]string{
		"NAME":   guest.Name,
		"AMOUNT": strconv.FormatInt(payment.Amount, 10),
		"LODGE":  s.lodgeName(ctx),
	}

	if _, err := s.notifier.Send(ctx, notifDto.SendRequest{
		TemplateID: template.PaymentConfirmation,
		Phone:      guest.Phone,
		Variables:  vars,
		GuestID:    &guest.ID,
	}); err != nil {
		log.Warn().Err(err).Str("paymentID", payment.ID).Msg("payment confirmation not delivered")
	}
}

func (s *serviceImpl) lodgeName(ctx context.Context) string {
	settings, err := s.settingsRepo.Get(ctx, activeSettingsFilter())
	if err != nil || settings.LodgeName == "" {
		return "our lodge"
	}

	return settings.LodgeName
}

func activeSettingsFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    settingsModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    settingsModel.TableName,
			},
		},
	}
}
