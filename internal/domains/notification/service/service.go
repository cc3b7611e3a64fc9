package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/sms"
	"lodge/internal/domains/notification/model"
	"lodge/internal/domains/notification/model/dto"
	"lodge/internal/domains/notification/ratelimit"
	"lodge/internal/domains/notification/repository"
	"lodge/internal/domains/notification/template"
	settingsModel "lodge/internal/domains/settings/model"
	settingsRepo "lodge/internal/domains/settings/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

const defaultCountryCode = "+91"

// Dispatcher renders a template, throttles per phone, hands the message to
// the SMS channel and records the outcome. Callers that must not block on
// delivery invoke Send from a detached goroutine.
type Dispatcher interface {
	Send(ctx context.Context, req dto.SendRequest) (dto.SendResponse, error)
	History(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
}

type serviceImpl struct {
	repo         repository.NotificationLog
	settingsRepo settingsRepo.Settings
	sender       sms.Sender
	limiter      *ratelimit.Limiter
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.NotificationLog, settingsRepo settingsRepo.Settings, sender sms.Sender, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &serviceImpl{
		repo:         repo,
		settingsRepo: settingsRepo,
		sender:       sender,
		limiter:      ratelimit.New(cfg.App.SMS.RateLimitMax, cfg.App.SMS.RateLimitWindowSec),
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Send(ctx context.Context, req dto.SendRequest) (res dto.SendResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	tpl, err := template.Lookup(req.TemplateID)
	if err != nil {
		return res, err
	}

	message, err := s.render(ctx, tpl, req.Variables)
	if err != nil {
		return res, err
	}

	phone, err := NormalizePhone(req.Phone, s.countryCode())
	if err != nil {
		return res, err
	}

	if !s.limiter.Allow(phone) {
		log.Warn().Str("phone", phone).Msg("notification rate limit hit")

		return res, failure.TooManyRequests("too many messages to this phone number, try again later") //nolint:wrapcheck
	}

	result, sendErr := s.sender.Send(ctx, phone, message)

	status := model.StatusSent
	if sendErr != nil {
		status = model.StatusFailed

		log.Error().Err(sendErr).Str("phone", phone).Str("template", req.TemplateID).Msg("failed to deliver notification")
	}

	s.appendLog(ctx, req.GuestID, phone, message, status)

	if sendErr != nil {
		return res, fmt.Errorf("failed to deliver notification: %w", sendErr)
	}

	return dto.SendResponse{
		Status:    status,
		Phone:     phone,
		MessageID: result.MessageID,
	}, nil
}

func (s *serviceImpl) History(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotificationHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// render applies the fixed template, letting the SMS template configured in
// settings override the booking confirmation body when present.
func (s *serviceImpl) render(ctx context.Context, tpl template.Template, vars map[string]string) (string, error) {
	message, err := tpl.Render(vars)
	if err != nil {
		return "", err
	}

	if tpl.ID != template.BookingConfirmation {
		return message, nil
	}

	settings, err := s.settingsRepo.Get(ctx, activeSettingsFilter())
	if err != nil || settings.SMSTemplate == "" {
		return message, nil
	}

	return template.RenderBody(settings.SMSTemplate, vars), nil
}

func (s *serviceImpl) appendLog(ctx context.Context, guestID *string, phone, message, status string) {
	now := timezone.Now()

	row := model.NotificationLog{
		ID:      uuid.NewString(),
		GuestID: guestID,
		Phone:   phone,
		Message: message,
		Status:  status,
		SentAt:  &now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  model.EntityName,
			ModifiedBy: model.EntityName,
		},
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		log.Error().Err(err).Str("phone", phone).Msg("failed to append notification log")
	}
}

func (s *serviceImpl) countryCode() string {
	if s.cfg.App.SMS.CountryCode != "" {
		return s.cfg.App.SMS.CountryCode
	}

	return defaultCountryCode
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
