package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID             = "id"
	FieldName           = "name"
	FieldPhone          = "phone"
	FieldIDNumber       = "id_number"
	FieldCheckinAt      = "checkin_at"
	FieldCheckoutAt     = "checkout_at"
	FieldCheckinTime    = "checkin_time"
	FieldPurpose        = "purpose"
	FieldRoomID         = "room_id"
	FieldOccupants      = "occupants"
	FieldTotalDays      = "total_days"
	FieldBaseAmount     = "base_amount"
	FieldDiscountAmount = "discount_amount"
	FieldTotalAmount    = "total_amount"
	FieldStatus         = "status"
)

const (
	StatusActive     = "active"
	StatusCheckedOut = "checked_out"
)

// Guest is a stay record. It is historical and never deleted; checkout only
// transitions Status. RoomID is a weak reference, nil for walk-in records
// registered without a room.
type Guest struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Phone          string    `db:"phone"`
	IDNumber       string    `db:"id_number"`
	CheckinAt      time.Time `db:"checkin_at"`
	CheckoutAt     time.Time `db:"checkout_at"`
	CheckinTime    string    `db:"checkin_time"`
	Purpose        string    `db:"purpose"`
	RoomID         *string   `db:"room_id"`
	Occupants      int       `db:"occupants"`
	TotalDays      int       `db:"total_days"`
	BaseAmount     int64     `db:"base_amount"`
	DiscountAmount int64     `db:"discount_amount"`
	TotalAmount    int64     `db:"total_amount"`
	Status         string    `db:"status"`
	model.Metadata
}
