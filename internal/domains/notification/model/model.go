package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "notification_logs"
	EntityName = "notification"

	FieldID      = "id"
	FieldGuestID = "guest_id"
	FieldPhone   = "phone"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldSentAt  = "sent_at"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// NotificationLog is an append-only audit row, written for every dispatch
// attempt whether or not delivery succeeded.
type NotificationLog struct {
	ID      string     `db:"id"`
	GuestID *string    `db:"guest_id"`
	Phone   string     `db:"phone"`
	Message string     `db:"message"`
	Status  string     `db:"status"`
	SentAt  *time.Time `db:"sent_at"`
	model.Metadata
}
