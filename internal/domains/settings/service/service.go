package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/settings/model"
	"lodge/internal/domains/settings/model/dto"
	"lodge/internal/domains/settings/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

const cacheGetSettings = "settings:get"

type Settings interface {
	Create(ctx context.Context, req dto.CreateSettingsRequest) (dto.SettingsResponse, error)
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Create completes onboarding. A second active settings row is rejected;
// later changes go through Update.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSettingsRequest) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextGuest).(string)

	exists, err := s.repo.Exist(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to check if settings exist")

		return res, fmt.Errorf("failed to check if settings exist: %w", err)
	}

	if exists {
		return res, failure.Conflict("settings already configured")
	}

	settings := req.ToModel(user)

	if err = s.repo.Insert(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to create settings")

		return res, fmt.Errorf("failed to create settings: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(settings)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSettings, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSettings).Msg("cache hit for settings")

		return res, nil
	}

	settings, err := s.repo.Get(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.ID == "" {
		return res, failure.NotFound("settings not configured")
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSettingsRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextGuest).(string)

	exists, err := s.repo.Exist(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to check if settings exist")

		return fmt.Errorf("failed to check if settings exist: %w", err)
	}

	if !exists {
		return failure.NotFound("settings not configured")
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, activeFilter()); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return fmt.Errorf("failed to update settings: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetSettings); err != nil {
			log.Error().Err(err).Msg("failed to delete settings from cache")
		}
	}()
}

func activeFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}
}
