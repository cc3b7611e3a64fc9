package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/s3"
	"lodge/internal/domains/availability"
	guestModel "lodge/internal/domains/guest/model"
	guestRepo "lodge/internal/domains/guest/repository"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"

	photoDirectory = "rooms"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	Available(ctx context.Context, req dto.AvailableRoomsRequest) (dto.AvailableRoomsResponse, error)
}

type serviceImpl struct {
	repo      repository.Room
	guestRepo guestRepo.Guest
	s3        s3.S3
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Room, guestRepo guestRepo.Guest, s3 s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		s3:        s3,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextGuest).(string)

	exists, err := s.repo.Exist(ctx, roomNumberFilter(req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("room number already in use")
	}

	var photoURL string

	if req.Photo != nil && req.PhotoFile != nil {
		photoURL, err = s.uploadPhoto(ctx, req)
		if err != nil {
			return res, err
		}
	}

	room := req.ToModel(user, photoURL)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound("room not found")
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextGuest).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return failure.NotFound("room not found")
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Photo != nil && req.PhotoFile != nil {
		photoURL, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, photoDirectory, req.PhotoFile, req.Photo, room.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload room photo")

			return fmt.Errorf("failed to upload room photo: %w", err)
		}

		updatedFields[model.FieldPhotoURL] = photoURL
	}

	// TransformFields always carries the two modified audit columns.
	if len(updatedFields) == 2 {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidateRoom(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return failure.NotFound("room not found")
	}

	if room.Status == model.StatusOccupied {
		return failure.Conflict("room is occupied and cannot be deleted")
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if room.PhotoURL != "" {
		go func() {
			c := context.WithoutCancel(ctx)

			objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, room.PhotoURL)
			if err := s.s3.DeleteFile(c, s.cfg.External.S3.BucketName, photoDirectory, objectName); err != nil {
				log.Error().Err(err).Msg("failed to delete room photo")
			}
		}()
	}

	s.invalidateRoom(ctx, id)

	return nil
}

// Available lists the rooms free for the requested interval, ordered by room
// number.
func (s *serviceImpl) Available(ctx context.Context, req dto.AvailableRoomsRequest) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkin, err := time.Parse(constant.DateFormat, req.Checkin)
	if err != nil {
		return res, failure.BadRequestFromString("invalid checkin date format, expected RFC3339")
	}

	checkout, err := time.Parse(constant.DateFormat, req.Checkout)
	if err != nil {
		return res, failure.BadRequestFromString("invalid checkout date format, expected RFC3339")
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	activeGuests, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, activeGuestsFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get active guests")

		return res, fmt.Errorf("failed to get active guests: %w", err)
	}

	free, err := availability.FreeRooms(rooms, activeGuests, checkin, checkout, timezone.Now())
	if err != nil {
		return res, err
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i].RoomNumber < free[j].RoomNumber
	})

	res.FromModels(free)

	return res, nil
}

func (s *serviceImpl) uploadPhoto(ctx context.Context, req dto.CreateRoomRequest) (string, error) {
	photoURL, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, photoDirectory, req.PhotoFile, req.Photo, req.RoomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room photo")

		return "", fmt.Errorf("failed to upload room photo: %w", err)
	}

	return photoURL, nil
}

func (s *serviceImpl) invalidateRoom(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

func roomNumberFilter(roomNumber string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    roomNumber,
				Table:    model.TableName,
			},
		},
	}
}

func activeGuestsFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    guestModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    guestModel.StatusActive,
				Table:    guestModel.TableName,
			},
		},
	}
}
