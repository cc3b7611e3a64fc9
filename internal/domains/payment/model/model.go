package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID      = "id"
	FieldGuestID = "guest_id"
	FieldAmount  = "amount"
	FieldMethod  = "method"
	FieldStatus  = "status"
	FieldPaidAt  = "paid_at"
)

const (
	MethodCash = "cash"
	MethodQR   = "qr"

	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Payment belongs to exactly one guest. Staff settle payments manually;
// PaidAt stays nil until then. Rows are never deleted.
type Payment struct {
	ID      string     `db:"id"`
	GuestID string     `db:"guest_id"`
	Amount  int64      `db:"amount"`
	Method  string     `db:"method"`
	Status  string     `db:"status"`
	PaidAt  *time.Time `db:"paid_at"`
	model.Metadata
}
