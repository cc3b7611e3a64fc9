package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/infras/sms"
	smsMocks "lodge/infras/sms/mocks"
	notificationMocks "lodge/internal/domains/notification/mocks"
	"lodge/internal/domains/notification/model"
	"lodge/internal/domains/notification/model/dto"
	"lodge/internal/domains/notification/service"
	"lodge/internal/domains/notification/template"
	settingsMocks "lodge/internal/domains/settings/mocks"
	settingsModel "lodge/internal/domains/settings/model"
	"lodge/shared/failure"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.SMS.RateLimitMax = 5
	cfg.App.SMS.RateLimitWindowSec = 60

	return cfg
}

func TestDispatcher_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotificationLog(ctrl)
	mockSettings := settingsMocks.NewMockSettings(ctrl)
	mockSender := smsMocks.NewMockSender(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockSettings, mockSender, newTestConfig(), mockOtel)

	paymentVars := map[string]string{
		"NAME":   "Asha",
		"AMOUNT": "1800",
		"LODGE":  "Hilltop Lodge",
	}

	tests := []struct {
		name       string
		req        dto.SendRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus string
		wantPhone  string
	}{
		{
			name: "unknown template",
			req: dto.SendRequest{
				TemplateID: "password_reset",
				Phone:      "+911234500001",
				Variables:  paymentVars,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  404,
		},
		{
			name: "missing variables skips delivery and log",
			req: dto.SendRequest{
				TemplateID: template.PaymentConfirmation,
				Phone:      "+911234500002",
				Variables:  map[string]string{"NAME": "Asha"},
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "invalid phone",
			req: dto.SendRequest{
				TemplateID: template.PaymentConfirmation,
				Phone:      "12345",
				Variables:  paymentVars,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "successful delivery",
			req: dto.SendRequest{
				TemplateID: template.PaymentConfirmation,
				Phone:      "+911234500003",
				Variables:  paymentVars,
			},
			setupMock: func() {
				mockSender.EXPECT().
					Send(gomock.Any(), "+911234500003", "Dear Asha, we received your payment of 1800 at Hilltop Lodge. Thank you.").
					Return(sms.Result{Success: true, MessageID: "msg-1"}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: model.StatusSent,
			wantPhone:  "+911234500003",
		},
		{
			name: "local number gets country code",
			req: dto.SendRequest{
				TemplateID: template.PaymentConfirmation,
				Phone:      "123-450 0004",
				Variables:  paymentVars,
			},
			setupMock: func() {
				mockSender.EXPECT().
					Send(gomock.Any(), "+911234500004", gomock.Any()).
					Return(sms.Result{Success: true}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: model.StatusSent,
			wantPhone:  "+911234500004",
		},
		{
			name: "booking body override from settings",
			req: dto.SendRequest{
				TemplateID: template.BookingConfirmation,
				Phone:      "+911234500005",
				Variables: map[string]string{
					"NAME":     "Asha",
					"LODGE":    "Hilltop Lodge",
					"ROOM":     "101",
					"CHECKIN":  "2026-03-01",
					"CHECKOUT": "2026-03-03",
					"AMOUNT":   "1800",
				},
			},
			setupMock: func() {
				mockSettings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(settingsModel.Settings{SMSTemplate: "Welcome [NAME], room [ROOM] is yours."}, nil)

				mockSender.EXPECT().
					Send(gomock.Any(), "+911234500005", "Welcome Asha, room 101 is yours.").
					Return(sms.Result{Success: true}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: model.StatusSent,
			wantPhone:  "+911234500005",
		},
		{
			name: "booking falls back to fixed body when settings missing",
			req: dto.SendRequest{
				TemplateID: template.BookingConfirmation,
				Phone:      "+911234500006",
				Variables: map[string]string{
					"NAME":     "Asha",
					"LODGE":    "Hilltop Lodge",
					"ROOM":     "101",
					"CHECKIN":  "2026-03-01",
					"CHECKOUT": "2026-03-03",
					"AMOUNT":   "1800",
				},
			},
			setupMock: func() {
				mockSettings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(settingsModel.Settings{}, errors.New("not found"))

				mockSender.EXPECT().
					Send(gomock.Any(), "+911234500006", "Dear Asha, your booking at Hilltop Lodge is confirmed. Room 101, check-in 2026-03-01, check-out 2026-03-03. Total: 1800.").
					Return(sms.Result{Success: true}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: model.StatusSent,
			wantPhone:  "+911234500006",
		},
		{
			name: "delivery failure still appends the log",
			req: dto.SendRequest{
				TemplateID: template.PaymentConfirmation,
				Phone:      "+911234500007",
				Variables:  paymentVars,
			},
			setupMock: func() {
				mockSender.EXPECT().
					Send(gomock.Any(), "+911234500007", gomock.Any()).
					Return(sms.Result{}, errors.New("gateway timeout"))

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, row model.NotificationLog) error {
						assert.Equal(t, model.StatusFailed, row.Status)
						assert.Equal(t, "+911234500007", row.Phone)

						return nil
					})
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Send(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantPhone, res.Phone)
		})
	}
}

func TestDispatcher_Send_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotificationLog(ctrl)
	mockSettings := settingsMocks.NewMockSettings(ctrl)
	mockSender := smsMocks.NewMockSender(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := newTestConfig()
	cfg.App.SMS.RateLimitMax = 1

	svc := service.New(mockRepo, mockSettings, mockSender, cfg, mockOtel)

	req := dto.SendRequest{
		TemplateID: template.PaymentConfirmation,
		Phone:      "+911234500008",
		Variables: map[string]string{
			"NAME":   "Asha",
			"AMOUNT": "1800",
			"LODGE":  "Hilltop Lodge",
		},
	}

	// Only the first send reaches the channel or the log.
	mockSender.EXPECT().
		Send(gomock.Any(), "+911234500008", gomock.Any()).
		Return(sms.Result{Success: true}, nil).
		Times(1)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	_, err := svc.Send(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, 429, failure.GetCode(err))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{name: "international passes through", phone: "+911234567890", want: "+911234567890"},
		{name: "separators stripped", phone: "+91 (12) 345-678.90", want: "+911234567890"},
		{name: "local ten digits prefixed", phone: "1234567890", want: "+911234567890"},
		{name: "local with separators", phone: "123 456 7890", want: "+911234567890"},
		{name: "short local number", phone: "12345", wantErr: true},
		{name: "letters rejected", phone: "12345abcde", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.NormalizePhone(tt.phone, "+91")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
