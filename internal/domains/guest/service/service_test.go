package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	guestMocks "lodge/internal/domains/guest/mocks"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	notificationMocks "lodge/internal/domains/notification/mocks"
	paymentMocks "lodge/internal/domains/payment/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	settingsMocks "lodge/internal/domains/settings/mocks"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type guestServiceMocks struct {
	repo     *guestMocks.MockGuest
	roomRepo *roomMocks.MockRoom
	payments *paymentMocks.MockPayment
	settings *settingsMocks.MockSettings
	notifier *notificationMocks.MockDispatcher
	cache    *cacheMocks.MockRedisCache
}

func newGuestService(t *testing.T) (service.Guest, guestServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := guestServiceMocks{
		repo:     guestMocks.NewMockGuest(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		payments: paymentMocks.NewMockPayment(ctrl),
		settings: settingsMocks.NewMockSettings(ctrl),
		notifier: notificationMocks.NewMockDispatcher(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.New(m.repo, m.roomRepo, m.payments, m.settings, m.notifier, nil, &config.Config{}, m.cache, mocks.NewOtel())

	return svc, m
}

func staffContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextGuest, "staff")
}

func stringPtr(s string) *string {
	return &s
}

func TestGuestService_Register_Rejections(t *testing.T) {
	const roomID = "5f6c2f6e-0000-4000-8000-000000000001"

	room := roomModel.Room{
		ID:         roomID,
		RoomNumber: "101",
		Price:      1000,
		Status:     roomModel.StatusAvailable,
	}

	validReq := dto.RegisterGuestRequest{
		Name:      "Asha",
		Phone:     "+911234567890",
		IDNumber:  "ID-42",
		Checkin:   time.Now().AddDate(0, 0, 7).Format(constant.DateFormat),
		Checkout:  time.Now().AddDate(0, 0, 9).Format(constant.DateFormat),
		RoomID:    roomID,
		Occupants: 2,
	}

	tests := []struct {
		name      string
		mutate    func(req *dto.RegisterGuestRequest)
		setupMock func(m guestServiceMocks)
		wantCode  int
	}{
		{
			name: "malformed checkin date",
			mutate: func(req *dto.RegisterGuestRequest) {
				req.Checkin = "next tuesday"
			},
			setupMock: func(m guestServiceMocks) {},
			wantCode:  400,
		},
		{
			name: "checkout before checkin",
			mutate: func(req *dto.RegisterGuestRequest) {
				req.Checkin, req.Checkout = req.Checkout, req.Checkin
			},
			setupMock: func(m guestServiceMocks) {},
			wantCode:  400,
		},
		{
			name:   "room not found",
			mutate: func(req *dto.RegisterGuestRequest) {},
			setupMock: func(m guestServiceMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantCode: 404,
		},
		{
			name:   "room already booked for the range",
			mutate: func(req *dto.RegisterGuestRequest) {},
			setupMock: func(m guestServiceMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				blocking := model.Guest{
					RoomID:     stringPtr(roomID),
					Status:     model.StatusActive,
					CheckinAt:  time.Now().AddDate(0, 0, 6),
					CheckoutAt: time.Now().AddDate(0, 0, 10),
				}

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Guest{blocking}, nil)
			},
			wantCode: 409,
		},
		{
			name:   "room lookup failure",
			mutate: func(req *dto.RegisterGuestRequest) {},
			setupMock: func(m guestServiceMocks) {
				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("connection refused"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGuestService(t)

			req := validReq
			tt.mutate(&req)
			tt.setupMock(m)

			_, err := svc.Register(staffContext(), req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestGuestService_Register_CheckedOutGuestDoesNotBlock(t *testing.T) {
	// A previous stay that ended frees the room for the same dates; the
	// registration proceeds past the availability gate into the transaction.
	const roomID = "5f6c2f6e-0000-4000-8000-000000000001"

	svc, m := newGuestService(t)

	room := roomModel.Room{ID: roomID, RoomNumber: "101", Price: 1000, Status: roomModel.StatusAvailable}

	m.roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(room, nil)

	past := model.Guest{
		RoomID:     stringPtr(roomID),
		Status:     model.StatusCheckedOut,
		CheckinAt:  time.Now().AddDate(0, 0, 6),
		CheckoutAt: time.Now().AddDate(0, 0, 10),
	}

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Guest{past}, nil)

	req := dto.RegisterGuestRequest{
		Name:      "Asha",
		Phone:     "+911234567890",
		IDNumber:  "ID-42",
		Checkin:   time.Now().AddDate(0, 0, 7).Format(constant.DateFormat),
		Checkout:  time.Now().AddDate(0, 0, 9).Format(constant.DateFormat),
		RoomID:    roomID,
		Occupants: 2,
	}

	// The nil connection stops the flow at the transaction boundary, which
	// is past every availability check this test cares about.
	assert.Panics(t, func() {
		_, _ = svc.Register(staffContext(), req)
	})
}

func TestGuestService_Checkout(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m guestServiceMocks)
		wantCode  int
	}{
		{
			name: "guest not found",
			setupMock: func(m guestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "guest already checked out",
			setupMock: func(m guestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{ID: "guest-1", Status: model.StatusCheckedOut}, nil)
			},
			wantCode: 409,
		},
		{
			name: "lookup failure",
			setupMock: func(m guestServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, errors.New("connection refused"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGuestService(t)
			tt.setupMock(m)

			err := svc.Checkout(staffContext(), "guest-1")

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestGuestService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		svc, _ := newGuestService(t)

		err := svc.Update(staffContext(), dto.UpdateGuestRequest{}, "guest-1")

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("guest not found", func(t *testing.T) {
		svc, m := newGuestService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(staffContext(), dto.UpdateGuestRequest{Name: "Asha"}, "guest-1")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestGuestService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, m := newGuestService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.Get(staffContext(), "guest-1")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
