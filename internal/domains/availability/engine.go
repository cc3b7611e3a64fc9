package availability

import (
	"time"

	guestModel "lodge/internal/domains/guest/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/failure"
)

var ErrInvalidRange = failure.BadRequestFromString("check-in must be before check-out")

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not conflict, which is what
// allows same-day turnover of a room.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// CoversNow reports whether the requested stay includes the present instant.
// Room status is only an authoritative availability signal for such requests;
// for past or future ranges the guest intervals decide.
func CoversNow(checkin, checkout, now time.Time) bool {
	return !now.Before(checkin) && now.Before(checkout)
}

// ConflictingRooms returns the set of room IDs held by an active guest whose
// stay overlaps the requested interval.
func ConflictingRooms(activeGuests []guestModel.Guest, checkin, checkout time.Time) map[string]struct{} {
	conflicts := make(map[string]struct{})

	for _, guest := range activeGuests {
		if guest.Status != guestModel.StatusActive || guest.RoomID == nil {
			continue
		}

		if Overlaps(guest.CheckinAt, guest.CheckoutAt, checkin, checkout) {
			conflicts[*guest.RoomID] = struct{}{}
		}
	}

	return conflicts
}

// FreeRooms computes the rooms free for the requested [checkin, checkout)
// interval from a snapshot of rooms and active guests. Rooms under
// maintenance are never offered. A room flagged occupied is excluded only
// when the requested range covers now; for other ranges the active-guest
// interval overlap is the sole booking signal.
func FreeRooms(rooms []roomModel.Room, activeGuests []guestModel.Guest, checkin, checkout, now time.Time) ([]roomModel.Room, error) {
	if !checkin.Before(checkout) {
		return nil, ErrInvalidRange
	}

	conflicts := ConflictingRooms(activeGuests, checkin, checkout)
	coversNow := CoversNow(checkin, checkout, now)

	free := make([]roomModel.Room, 0, len(rooms))

	for _, room := range rooms {
		if room.Status == roomModel.StatusMaintenance {
			continue
		}

		if coversNow && room.Status == roomModel.StatusOccupied {
			continue
		}

		if _, taken := conflicts[room.ID]; taken {
			continue
		}

		free = append(free, room)
	}

	return free, nil
}

// IsRoomFree reports whether a specific room is free for the interval, using
// the same policy as FreeRooms.
func IsRoomFree(room roomModel.Room, activeGuests []guestModel.Guest, checkin, checkout, now time.Time) (bool, error) {
	free, err := FreeRooms([]roomModel.Room{room}, activeGuests, checkin, checkout, now)
	if err != nil {
		return false, err
	}

	return len(free) == 1, nil
}
