package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_Reserve(t *testing.T) {
	room := &Room{Number: "101", Status: RoomStatusAvailable}

	err := room.Reserve()

	assert.NoError(t, err)
	assert.Equal(t, RoomStatusReserved, room.Status)
}

func TestRoom_Reserve_NotAvailable(t *testing.T) {
	testCases := []struct {
		name   string
		status RoomStatus
	}{
		{"already reserved", RoomStatusReserved},
		{"occupied", RoomStatusOccupied},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			room := &Room{Number: "101", Status: tc.status}

			err := room.Reserve()

			assert.ErrorIs(t, err, ErrRoomStatus)
			assert.Equal(t, tc.status, room.Status)
		})
	}
}

func TestParseRoomStatus(t *testing.T) {
	for _, value := range []string{"AVAILABLE", "RESERVED", "OCCUPIED"} {
		status, err := ParseRoomStatus(value)
		assert.NoError(t, err)
		assert.Equal(t, RoomStatus(value), status)
	}

	_, err := ParseRoomStatus("FREE")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRoomStatus_Predicates(t *testing.T) {
	assert.True(t, RoomStatusAvailable.IsAvailable())
	assert.True(t, RoomStatusReserved.IsReserved())
	assert.True(t, RoomStatusOccupied.IsOccupied())

	assert.False(t, RoomStatusReserved.IsAvailable())
	assert.False(t, RoomStatusAvailable.IsReserved())
	assert.False(t, RoomStatusReserved.IsOccupied())
}
