package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/availability"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/repository"
	notifDto "lodge/internal/domains/notification/model/dto"
	notifService "lodge/internal/domains/notification/service"
	"lodge/internal/domains/notification/template"
	paymentDto "lodge/internal/domains/payment/model/dto"
	paymentRepo "lodge/internal/domains/payment/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	settingsModel "lodge/internal/domains/settings/model"
	settingsRepo "lodge/internal/domains/settings/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
	cacheGetAllRoom  = "room:gets"
)

type Guest interface {
	Register(ctx context.Context, req dto.RegisterGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	Checkout(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Guest
	roomRepo     roomRepo.Room
	paymentRepo  paymentRepo.Payment
	settingsRepo settingsRepo.Settings
	notifier     notifService.Dispatcher
	db           *postgres.Connection
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Guest,
	roomRepo roomRepo.Room,
	paymentRepo paymentRepo.Payment,
	settingsRepo settingsRepo.Settings,
	notifier notifService.Dispatcher,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Guest {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		db:           db,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextGuest).(string)

	checkin, checkout, err := req.Interval()
	if err != nil {
		return res, err
	}

	var room roomModel.Room

	if req.RoomID != "" {
		room, err = s.bookableRoom(ctx, req.RoomID, checkin, checkout)
		if err != nil {
			return res, err
		}
	}

	days, base, discount, total := req.Bill(room.Price, checkin, checkout)
	guest := req.ToModel(user, checkin, checkout, days, base, discount, total)
	payment := paymentDto.NewPendingPayment(guest.ID, total, user)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if req.RoomID != "" {
			if err := s.roomRepo.LockTx(ctx, tx, req.RoomID); err != nil {
				return err
			}

			taken, err := s.repo.ExistActiveOverlapTx(ctx, tx, req.RoomID, checkin, checkout)
			if err != nil {
				return err
			}

			if taken {
				return failure.Conflict("room is already booked for the requested dates")
			}
		}

		if err := s.repo.InsertTx(ctx, tx, guest); err != nil {
			return err
		}

		if req.RoomID != "" {
			occupied := map[string]any{
				roomModel.FieldStatus:    roomModel.StatusOccupied,
				constant.FieldModifiedAt: timezone.Now(),
				constant.FieldModifiedBy: user,
			}
			if err := s.roomRepo.UpdateTx(ctx, tx, occupied, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
				return err
			}
		}

		return s.paymentRepo.InsertTx(ctx, tx, payment)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to register guest")

		return res, err
	}

	go s.notifyBooking(context.WithoutCancel(ctx), guest, room)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	res.FromModel(guest)

	return res, nil
}

// bookableRoom loads the room and rejects registrations it cannot host for
// the requested interval.
func (s *serviceImpl) bookableRoom(ctx context.Context, roomID string, checkin, checkout time.Time) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return room, failure.NotFound("room not found") //nolint:wrapcheck
	}

	activeGuests, err := s.repo.GetAll(ctx, gDto.QueryParams{}, activeGuestsForRoomFilter(roomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active guests for room")

		return room, fmt.Errorf("failed to get active guests for room: %w", err)
	}

	free, err := availability.IsRoomFree(room, activeGuests, checkin, checkout, timezone.Now())
	if err != nil {
		return room, err
	}

	if !free {
		return room, failure.Conflict("room is not available for the requested dates") //nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == "" {
		return res, failure.NotFound("guest not found")
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateGuestRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextGuest).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guest not found")

		return failure.NotFound("guest not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	s.invalidateGuest(ctx, id)

	return nil
}

func (s *serviceImpl) Checkout(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextGuest).(string)

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == "" {
		return failure.NotFound("guest not found")
	}

	if guest.Status != model.StatusActive {
		return failure.Conflict("guest is already checked out")
	}

	now := timezone.Now()

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		checkedOut := map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}
		if err := s.repo.UpdateTx(ctx, tx, checkedOut, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if guest.RoomID == nil {
			return nil
		}

		released := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusAvailable,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		return s.roomRepo.UpdateTx(ctx, tx, released, shared.FilterByID(*guest.RoomID, roomModel.FieldID, roomModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to checkout guest")

		return fmt.Errorf("failed to checkout guest: %w", err)
	}

	go s.notifyCheckout(context.WithoutCancel(ctx), guest)

	s.invalidateGuest(ctx, id)

	return nil
}

// notifyBooking delivers the booking confirmation best-effort. Delivery
// problems never surface to the caller.
func (s *serviceImpl) notifyBooking(ctx context.Context, guest model.Guest, room roomModel.Room) {
	vars := map[string]string{
		"NAME":     guest.Name,
		"LODGE":    s.lodgeName(ctx),
		"ROOM":     room.RoomNumber,
		"CHECKIN":  timezone.Format(guest.CheckinAt, constant.DateFormat),
		"CHECKOUT": timezone.Format(guest.CheckoutAt, constant.DateFormat),
		"AMOUNT":   strconv.FormatInt(guest.TotalAmount, 10),
	}

	if _, err := s.notifier.Send(ctx, notifDto.SendRequest{
		TemplateID: template.BookingConfirmation,
		Phone:      guest.Phone,
		Variables:  vars,
		GuestID:    &guest.ID,
	}); err != nil {
		log.Warn().Err(err).Str("guestID", guest.ID).Msg("booking confirmation not delivered")
	}
}

func (s *serviceImpl) notifyCheckout(ctx context.Context, guest model.Guest) {
	vars := map[string]string{
		"NAME":  guest.Name,
		"LODGE": s.lodgeName(ctx),
	}

	if _, err := s.notifier.Send(ctx, notifDto.SendRequest{
		TemplateID: template.CheckoutConfirmation,
		Phone:      guest.Phone,
		Variables:  vars,
		GuestID:    &guest.ID,
	}); err != nil {
		log.Warn().Err(err).Str("guestID", guest.ID).Msg("checkout confirmation not delivered")
	}
}

func (s *serviceImpl) lodgeName(ctx context.Context) string {
	settings, err := s.settingsRepo.Get(ctx, activeSettingsFilter())
	if err != nil || settings.LodgeName == "" {
		return "our lodge"
	}

	return settings.LodgeName
}

func (s *serviceImpl) invalidateGuest(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()
}

func activeGuestsForRoomFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "guest_status",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusActive,
				Table:    model.TableName,
			},
		},
	}
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
