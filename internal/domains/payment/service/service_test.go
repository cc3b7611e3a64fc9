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
	guestModel "lodge/internal/domains/guest/model"
	notificationMocks "lodge/internal/domains/notification/mocks"
	notifDto "lodge/internal/domains/notification/model/dto"
	paymentMocks "lodge/internal/domains/payment/mocks"
	"lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	settingsMocks "lodge/internal/domains/settings/mocks"
	settingsModel "lodge/internal/domains/settings/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type paymentServiceMocks struct {
	repo      *paymentMocks.MockPayment
	guestRepo *guestMocks.MockGuest
	settings  *settingsMocks.MockSettings
	notifier  *notificationMocks.MockDispatcher
	cache     *cacheMocks.MockRedisCache
}

func newPaymentService(t *testing.T) (service.Payment, paymentServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := paymentServiceMocks{
		repo:      paymentMocks.NewMockPayment(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		settings:  settingsMocks.NewMockSettings(ctrl),
		notifier:  notificationMocks.NewMockDispatcher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.New(m.repo, m.guestRepo, m.settings, m.notifier, &config.Config{}, m.cache, mocks.NewOtel())

	return svc, m
}

func staffContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextGuest, "staff")
}

func TestPaymentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m paymentServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "guest not found",
			setupMock: func(m paymentServiceMocks) {
				m.guestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "guest lookup failure",
			setupMock: func(m paymentServiceMocks) {
				m.guestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPaymentService(t)
			tt.setupMock(m)

			req := dto.CreatePaymentRequest{
				GuestID: "5f6c2f6e-0000-4000-8000-000000000002",
				Amount:  500,
			}

			_, err := svc.Create(staffContext(), req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestPaymentService_MarkPaid(t *testing.T) {
	pending := model.Payment{
		ID:      "payment-1",
		GuestID: "guest-1",
		Amount:  1800,
		Method:  model.MethodCash,
		Status:  model.StatusPending,
	}

	t.Run("payment not found", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Payment{}, nil)

		err := svc.MarkPaid(staffContext(), dto.MarkPaidRequest{Method: model.MethodCash}, "payment-1")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("already settled", func(t *testing.T) {
		svc, m := newPaymentService(t)

		settled := pending
		settled.Status = model.StatusPaid

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(settled, nil)

		err := svc.MarkPaid(staffContext(), dto.MarkPaidRequest{Method: model.MethodCash}, "payment-1")

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("settles and notifies the guest", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		notified := make(chan notifDto.SendRequest, 1)

		m.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: "guest-1", Name: "Asha", Phone: "+911234567890"}, nil)

		m.settings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(settingsModel.Settings{LodgeName: "Hilltop Lodge"}, nil)

		m.notifier.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req notifDto.SendRequest) (notifDto.SendResponse, error) {
				notified <- req

				return notifDto.SendResponse{}, nil
			})

		invalidated := make(chan struct{})

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		m.cache.EXPECT().
			Clear(gomock.Any(), "payment:gets*").
			Return(nil)
		m.cache.EXPECT().
			Clear(gomock.Any(), "payment:count*").
			DoAndReturn(func(_ context.Context, _ string) error {
				close(invalidated)

				return nil
			})

		err := svc.MarkPaid(staffContext(), dto.MarkPaidRequest{Method: model.MethodQR}, "payment-1")
		require.NoError(t, err)

		select {
		case req := <-notified:
			assert.Equal(t, "+911234567890", req.Phone)
			assert.Equal(t, "1800", req.Variables["AMOUNT"])
			assert.Equal(t, "Hilltop Lodge", req.Variables["LODGE"])
		case <-time.After(time.Second):
			t.Fatal("payment confirmation was never dispatched")
		}

		select {
		case <-invalidated:
		case <-time.After(time.Second):
			t.Fatal("payment caches were never invalidated")
		}
	})
}

func TestPaymentService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Payment{}, nil)

		_, err := svc.Get(staffContext(), "payment-1")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
