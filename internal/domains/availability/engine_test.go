package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/internal/domains/availability"
	guestModel "lodge/internal/domains/guest/model"
	roomModel "lodge/internal/domains/room/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "fully overlapping",
			aStart: day(1), aEnd: day(5),
			bStart: day(2), bEnd: day(4),
			want: true,
		},
		{
			name:   "partial overlap at the end",
			aStart: day(1), aEnd: day(3),
			bStart: day(2), bEnd: day(5),
			want: true,
		},
		{
			name:   "touching endpoints do not overlap",
			aStart: day(1), aEnd: day(3),
			bStart: day(3), bEnd: day(5),
			want: false,
		},
		{
			name:   "touching endpoints reversed",
			aStart: day(3), aEnd: day(5),
			bStart: day(1), bEnd: day(3),
			want: false,
		},
		{
			name:   "disjoint ranges",
			aStart: day(1), aEnd: day(2),
			bStart: day(4), bEnd: day(6),
			want: false,
		},
		{
			name:   "identical ranges",
			aStart: day(1), aEnd: day(3),
			bStart: day(1), bEnd: day(3),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoversNow(t *testing.T) {
	now := day(10)

	assert.True(t, availability.CoversNow(day(9), day(11), now))
	assert.True(t, availability.CoversNow(now, day(11), now), "checkin at now is covered")
	assert.False(t, availability.CoversNow(day(8), now, now), "checkout at now is not covered")
	assert.False(t, availability.CoversNow(day(11), day(13), now), "future stay")
	assert.False(t, availability.CoversNow(day(1), day(3), now), "past stay")
}

func TestFreeRooms(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "101", Status: roomModel.StatusAvailable},
		{ID: "room-2", RoomNumber: "102", Status: roomModel.StatusOccupied},
		{ID: "room-3", RoomNumber: "103", Status: roomModel.StatusMaintenance},
		{ID: "room-4", RoomNumber: "104", Status: roomModel.StatusAvailable},
	}

	now := day(10)

	tests := []struct {
		name     string
		guests   []guestModel.Guest
		checkin  time.Time
		checkout time.Time
		wantIDs  []string
	}{
		{
			name:     "no guests, current range excludes occupied and maintenance",
			guests:   nil,
			checkin:  day(9),
			checkout: day(12),
			wantIDs:  []string{"room-1", "room-4"},
		},
		{
			name:     "future range ignores occupied status",
			guests:   nil,
			checkin:  day(20),
			checkout: day(22),
			wantIDs:  []string{"room-1", "room-2", "room-4"},
		},
		{
			name: "active guest blocks overlapping future range",
			guests: []guestModel.Guest{
				{RoomID: strPtr("room-2"), Status: guestModel.StatusActive, CheckinAt: day(20), CheckoutAt: day(25)},
			},
			checkin:  day(21),
			checkout: day(23),
			wantIDs:  []string{"room-1", "room-4"},
		},
		{
			name: "checked-out guest does not block",
			guests: []guestModel.Guest{
				{RoomID: strPtr("room-1"), Status: guestModel.StatusCheckedOut, CheckinAt: day(20), CheckoutAt: day(25)},
			},
			checkin:  day(21),
			checkout: day(23),
			wantIDs:  []string{"room-1", "room-2", "room-4"},
		},
		{
			name: "same-day turnover, new stay starts at previous checkout",
			guests: []guestModel.Guest{
				{RoomID: strPtr("room-1"), Status: guestModel.StatusActive, CheckinAt: day(18), CheckoutAt: day(20)},
			},
			checkin:  day(20),
			checkout: day(22),
			wantIDs:  []string{"room-1", "room-2", "room-4"},
		},
		{
			name: "walk-in guest without room never blocks",
			guests: []guestModel.Guest{
				{RoomID: nil, Status: guestModel.StatusActive, CheckinAt: day(20), CheckoutAt: day(25)},
			},
			checkin:  day(21),
			checkout: day(23),
			wantIDs:  []string{"room-1", "room-2", "room-4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := availability.FreeRooms(rooms, tt.guests, tt.checkin, tt.checkout, now)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(free))
			for _, room := range free {
				gotIDs = append(gotIDs, room.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFreeRooms_InvalidRange(t *testing.T) {
	_, err := availability.FreeRooms(nil, nil, day(5), day(5), day(1))
	assert.ErrorIs(t, err, availability.ErrInvalidRange)

	_, err = availability.FreeRooms(nil, nil, day(5), day(3), day(1))
	assert.ErrorIs(t, err, availability.ErrInvalidRange)
}

func TestIsRoomFree(t *testing.T) {
	room := roomModel.Room{ID: "room-1", Status: roomModel.StatusAvailable}
	now := day(1)

	free, err := availability.IsRoomFree(room, nil, day(5), day(8), now)
	require.NoError(t, err)
	assert.True(t, free)

	blocking := []guestModel.Guest{
		{RoomID: strPtr("room-1"), Status: guestModel.StatusActive, CheckinAt: day(4), CheckoutAt: day(6)},
	}

	free, err = availability.IsRoomFree(room, blocking, day(5), day(8), now)
	require.NoError(t, err)
	assert.False(t, free)
}
