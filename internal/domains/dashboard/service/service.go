package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/dashboard/model/dto"
	"lodge/internal/domains/dashboard/repository"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/timezone"
)

const cacheSummary = "dashboard:summary"

type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
	Inconsistencies(ctx context.Context) (dto.InconsistenciesResponse, error)
}

type serviceImpl struct {
	repo  repository.Dashboard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dashboard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummary).Msg("cache hit for dashboard summary")

		return res, nil
	}

	counts, err := s.repo.RoomStatusCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms by status")

		return res, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	res.Rooms.FromStatusCounts(counts)

	res.Guests.Active, err = s.repo.ActiveGuestCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active guests")

		return res, fmt.Errorf("failed to count active guests: %w", err)
	}

	res.Payments.PendingCount, res.Payments.PendingAmount, err = s.repo.PendingPayments(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum pending payments")

		return res, fmt.Errorf("failed to sum pending payments: %w", err)
	}

	dayStart, dayEnd := today()

	res.TodayIns, err = s.repo.CheckinsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's check-ins")

		return res, fmt.Errorf("failed to count today's check-ins: %w", err)
	}

	res.TodayOuts, err = s.repo.CheckoutsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's check-outs")

		return res, fmt.Errorf("failed to count today's check-outs: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Inconsistencies(ctx context.Context) (res dto.InconsistenciesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardInconsistencies")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.repo.OccupiedRoomsWithoutGuest(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to find occupied rooms without guests")

		return res, fmt.Errorf("failed to find occupied rooms without guests: %w", err)
	}

	res.FromRooms(rooms)

	guests, err := s.repo.MisplacedActiveGuests(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to find misplaced active guests")

		return res, fmt.Errorf("failed to find misplaced active guests: %w", err)
	}

	res.MisplacedGuests = make([]dto.OrphanGuest, len(guests))
	for i, guest := range guests {
		res.MisplacedGuests[i] = dto.OrphanGuest{
			ID:         guest.ID,
			Name:       guest.Name,
			RoomID:     guest.RoomID,
			RoomStatus: guest.RoomStatus,
		}
	}

	return res, nil
}

// today spans the current calendar day in the application timezone.
func today() (start, end time.Time) {
	now := timezone.Now()
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())

	return start, start.AddDate(0, 0, 1)
}
