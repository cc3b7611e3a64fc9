package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldPhotoURL    = "photo_url"
	FieldDescription = "description"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

// Room is a rentable unit. Price is the base nightly rate in whole currency
// units; Status reflects the room right now, not future bookings.
type Room struct {
	ID          string `db:"id"`
	RoomNumber  string `db:"room_number"`
	RoomType    string `db:"room_type"`
	Price       int64  `db:"price"`
	Status      string `db:"status"`
	PhotoURL    string `db:"photo_url"`
	Description string `db:"description"`
	model.Metadata
}
