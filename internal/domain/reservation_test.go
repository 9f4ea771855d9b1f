package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedNumberGenerator struct {
	number ReservationNumber
}

func (g fixedNumberGenerator) Generate() ReservationNumber { return g.number }

func testGuest(t *testing.T) Guest {
	t.Helper()
	guest, err := NewGuest("+82-10-1234-5678", "John")
	assert.NoError(t, err)
	return guest
}

func testReservation(roomStatus RoomStatus, status ReservationStatus) *Reservation {
	return &Reservation{
		Room:    &Room{ID: 1, Number: "101", Status: roomStatus},
		Number:  "260901102030:ABC1234",
		Status:  status,
		DateIn:  time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
		DateOut: time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC),
		Guest:   Guest{Mobile: "+82-10-1234-5678", Name: "John"},
	}
}

func TestMakeReservation(t *testing.T) {
	gen := fixedNumberGenerator{number: "260901102030:ABC1234"}
	room := &Room{ID: 1, Number: "101", Status: RoomStatusAvailable}
	dateIn := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	dateOut := time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC)

	reservation, err := MakeReservation(gen, room, dateIn, dateOut, testGuest(t))

	assert.NoError(t, err)
	assert.Equal(t, RoomStatusReserved, room.Status)
	assert.Same(t, room, reservation.Room)
	assert.Equal(t, ReservationNumber("260901102030:ABC1234"), reservation.Number)
	assert.Equal(t, ReservationStatusInProgress, reservation.Status)
	assert.Equal(t, dateIn, reservation.DateIn)
	assert.Equal(t, dateOut, reservation.DateOut)
	assert.Equal(t, "+82-10-1234-5678", reservation.Guest.Mobile)
}

func TestMakeReservation_RoomNotAvailable(t *testing.T) {
	gen := fixedNumberGenerator{number: "260901102030:ABC1234"}
	room := &Room{ID: 1, Number: "101", Status: RoomStatusReserved}

	reservation, err := MakeReservation(gen, room, time.Now(), time.Now().Add(48*time.Hour), testGuest(t))

	assert.ErrorIs(t, err, ErrRoomStatus)
	assert.Nil(t, reservation)
	assert.Equal(t, RoomStatusReserved, room.Status)
}

func TestReservation_CheckIn(t *testing.T) {
	reservation := testReservation(RoomStatusReserved, ReservationStatusInProgress)

	err := reservation.CheckIn()

	assert.NoError(t, err)
	assert.Equal(t, RoomStatusOccupied, reservation.Room.Status)
	assert.Equal(t, ReservationStatusInProgress, reservation.Status)
}

func TestReservation_CheckIn_RoomNotReserved(t *testing.T) {
	reservation := testReservation(RoomStatusAvailable, ReservationStatusInProgress)

	err := reservation.CheckIn()

	assert.ErrorIs(t, err, ErrRoomStatus)
	assert.Equal(t, RoomStatusAvailable, reservation.Room.Status)
}

func TestReservation_CheckIn_RoomErrorTakesPrecedence(t *testing.T) {
	// Both preconditions fail; the room one is reported.
	reservation := testReservation(RoomStatusAvailable, ReservationStatusCancelled)

	err := reservation.CheckIn()

	assert.ErrorIs(t, err, ErrRoomStatus)
}

func TestReservation_CheckIn_NotInProgress(t *testing.T) {
	reservation := testReservation(RoomStatusReserved, ReservationStatusComplete)

	err := reservation.CheckIn()

	assert.ErrorIs(t, err, ErrReservationStatus)
	assert.Equal(t, RoomStatusReserved, reservation.Room.Status)
	assert.Equal(t, ReservationStatusComplete, reservation.Status)
}

func TestReservation_CheckOut(t *testing.T) {
	reservation := testReservation(RoomStatusOccupied, ReservationStatusInProgress)

	err := reservation.CheckOut()

	assert.NoError(t, err)
	assert.Equal(t, ReservationStatusComplete, reservation.Status)
	assert.Equal(t, RoomStatusAvailable, reservation.Room.Status)
}

func TestReservation_CheckOut_RoomNotOccupied(t *testing.T) {
	reservation := testReservation(RoomStatusReserved, ReservationStatusInProgress)

	err := reservation.CheckOut()

	assert.ErrorIs(t, err, ErrRoomStatus)
	assert.Equal(t, ReservationStatusInProgress, reservation.Status)
	assert.Equal(t, RoomStatusReserved, reservation.Room.Status)
}

func TestReservation_Cancel(t *testing.T) {
	reservation := testReservation(RoomStatusReserved, ReservationStatusInProgress)

	err := reservation.Cancel()

	assert.NoError(t, err)
	assert.Equal(t, ReservationStatusCancelled, reservation.Status)
	assert.Equal(t, RoomStatusAvailable, reservation.Room.Status)
}

func TestReservation_Cancel_AlreadyCancelled(t *testing.T) {
	reservation := testReservation(RoomStatusReserved, ReservationStatusInProgress)

	assert.NoError(t, reservation.Cancel())
	// A second cancel always fails, never silently succeeds.
	assert.ErrorIs(t, reservation.Cancel(), ErrReservationStatus)
	assert.Equal(t, ReservationStatusCancelled, reservation.Status)
}

func TestReservation_ChangeGuest_NoStatusGuard(t *testing.T) {
	reservation := testReservation(RoomStatusAvailable, ReservationStatusCancelled)
	replacement, err := NewGuest("+82-10-9999-0000", "Jane")
	assert.NoError(t, err)

	reservation.ChangeGuest(replacement)

	assert.Equal(t, replacement, reservation.Guest)
	assert.Equal(t, ReservationStatusCancelled, reservation.Status)
}

func TestReservation_FullLifecycle(t *testing.T) {
	gen := fixedNumberGenerator{number: "260901102030:ABC1234"}
	room := &Room{ID: 1, Number: "A", Status: RoomStatusAvailable}

	reservation, err := MakeReservation(gen, room,
		time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC),
		testGuest(t))
	assert.NoError(t, err)
	assert.Equal(t, RoomStatusReserved, room.Status)
	assert.Equal(t, ReservationStatusInProgress, reservation.Status)

	assert.NoError(t, reservation.CheckIn())
	assert.Equal(t, RoomStatusOccupied, room.Status)

	assert.NoError(t, reservation.CheckOut())
	assert.Equal(t, RoomStatusAvailable, room.Status)
	assert.Equal(t, ReservationStatusComplete, reservation.Status)
}

func TestParseReservationStatus(t *testing.T) {
	for _, value := range []string{"IN-PROGRESS", "CANCELLED", "COMPLETE"} {
		status, err := ParseReservationStatus(value)
		assert.NoError(t, err)
		assert.Equal(t, ReservationStatus(value), status)
	}

	_, err := ParseReservationStatus("PENDING")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
