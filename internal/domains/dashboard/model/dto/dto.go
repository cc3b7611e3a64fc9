package dto

import (
	roomModel "lodge/internal/domains/room/model"
)

type SummaryResponse struct {
	Rooms     RoomSummary    `json:"rooms"`
	Guests    GuestSummary   `json:"guests"`
	Payments  PaymentSummary `json:"payments"`
	TodayIns  int            `json:"today_checkins"`
	TodayOuts int            `json:"today_checkouts"`
}

type RoomSummary struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

func (r *RoomSummary) FromStatusCounts(counts map[string]int) {
	r.Available = counts[roomModel.StatusAvailable]
	r.Occupied = counts[roomModel.StatusOccupied]
	r.Maintenance = counts[roomModel.StatusMaintenance]
	r.Total = r.Available + r.Occupied + r.Maintenance
}

type GuestSummary struct {
	Active int `json:"active"`
}

type PaymentSummary struct {
	PendingCount  int   `json:"pending_count"`
	PendingAmount int64 `json:"pending_amount"`
}

// InconsistenciesResponse lists the two ways room state and guest records can
// drift apart: a room flagged occupied with nobody staying in it, and an
// active guest whose assigned room is not flagged occupied.
type InconsistenciesResponse struct {
	OrphanOccupiedRooms []OrphanRoom  `json:"orphan_occupied_rooms"`
	MisplacedGuests     []OrphanGuest `json:"misplaced_guests"`
}

type OrphanRoom struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Status     string `json:"status"`
}

type OrphanGuest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	RoomID     *string `json:"room_id,omitempty"`
	RoomStatus string  `json:"room_status,omitempty"`
}

func (r *InconsistenciesResponse) FromRooms(rooms []roomModel.Room) {
	r.OrphanOccupiedRooms = make([]OrphanRoom, len(rooms))
	for i, room := range rooms {
		r.OrphanOccupiedRooms[i] = OrphanRoom{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			Status:     room.Status,
		}
	}
}
