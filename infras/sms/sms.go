package sms

//go:generate go run go.uber.org/mock/mockgen -source=./sms.go -destination=./mocks/sms_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/shared/constant"
)

const (
	ProviderGateway = "gateway"
	ProviderConsole = "console"

	defaultTimeoutSeconds = 10
)

// Result is the delivery outcome reported by the SMS channel.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Sender delivers a single message to a phone number. Implementations are
// opaque and may fail; callers decide what a failure means.
type Sender interface {
	Send(ctx context.Context, to, message string) (Result, error)
}

// New selects a concrete sender from configuration.
func New(cfg *config.Config) Sender {
	switch cfg.App.SMS.Provider {
	case ProviderGateway:
		return newGatewaySender(cfg)
	case ProviderConsole, constant.Empty:
		log.Info().Msg("SMS provider not configured, using console sender")

		return &consoleSender{}
	default:
		log.Warn().Str("provider", cfg.App.SMS.Provider).Msg("Unknown SMS provider, using console sender")

		return &consoleSender{}
	}
}

// consoleSender logs messages instead of delivering them. Used in development
// and as the fallback when no gateway is configured.
type consoleSender struct{}

func (s *consoleSender) Send(_ context.Context, to, message string) (Result, error) {
	log.Info().Str("to", to).Str("message", message).Msg("SMS (console)")

	return Result{Success: true, MessageID: "console"}, nil
}

type gatewaySender struct {
	cfg    *config.Config
	client *http.Client
}

func newGatewaySender(cfg *config.Config) Sender {
	timeout := cfg.External.SMSGateway.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	log.Info().Str("endpoint", cfg.External.SMSGateway.Endpoint).Msg("SMS gateway sender initialized")

	return &gatewaySender{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

type gatewayRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id,omitempty"`
}

func (s *gatewaySender) Send(ctx context.Context, to, message string) (Result, error) {
	payload, err := json.Marshal(gatewayRequest{
		To:       to,
		Message:  message,
		SenderID: s.cfg.External.SMSGateway.SenderID,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal SMS payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.External.SMSGateway.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build SMS request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAPIKey, s.cfg.External.SMSGateway.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to call SMS gateway: %w", err)
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("failed to decode SMS gateway response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !result.Success {
		return result, fmt.Errorf("SMS gateway rejected message: %s", result.Error)
	}

	return result, nil
}
