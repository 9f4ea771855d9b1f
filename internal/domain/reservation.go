package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusInProgress ReservationStatus = "IN-PROGRESS"
	ReservationStatusCancelled  ReservationStatus = "CANCELLED"
	ReservationStatusComplete   ReservationStatus = "COMPLETE"
)

func (s ReservationStatus) InProgress() bool { return s == ReservationStatusInProgress }

func ParseReservationStatus(value string) (ReservationStatus, error) {
	switch s := ReservationStatus(value); s {
	case ReservationStatusInProgress, ReservationStatusCancelled, ReservationStatusComplete:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// Reservation is the aggregate root for a stay. It exclusively owns its Room
// for the duration of a transaction: every occupancy change goes through the
// reservation, and the repository persists both rows together.
type Reservation struct {
	ID        int64
	Room      *Room
	Number    ReservationNumber
	Status    ReservationStatus
	DateIn    time.Time
	DateOut   time.Time
	Guest     Guest
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MakeReservation reserves the room and opens an IN-PROGRESS reservation
// under a freshly generated number. The passed-in room is mutated on success;
// an unavailable room fails the whole call.
func MakeReservation(gen NumberGenerator, room *Room, dateIn, dateOut time.Time, guest Guest) (*Reservation, error) {
	if err := room.Reserve(); err != nil {
		return nil, err
	}
	return &Reservation{
		Room:    room,
		Number:  gen.Generate(),
		Status:  ReservationStatusInProgress,
		DateIn:  dateIn,
		DateOut: dateOut,
		Guest:   guest,
	}, nil
}

func (r *Reservation) Cancel() error {
	if !r.Status.InProgress() {
		return ErrReservationStatus
	}
	r.Status = ReservationStatusCancelled
	r.Room.Status = RoomStatusAvailable
	return nil
}

// CheckIn occupies the room; the reservation itself stays IN-PROGRESS until
// check-out. The room precondition is checked before the reservation one.
func (r *Reservation) CheckIn() error {
	if !r.Room.Status.IsReserved() {
		return ErrRoomStatus
	}
	if !r.Status.InProgress() {
		return ErrReservationStatus
	}
	r.Room.Status = RoomStatusOccupied
	return nil
}

func (r *Reservation) CheckOut() error {
	if !r.Room.Status.IsOccupied() {
		return ErrRoomStatus
	}
	if !r.Status.InProgress() {
		return ErrReservationStatus
	}
	r.Status = ReservationStatusComplete
	r.Room.Status = RoomStatusAvailable
	return nil
}

// ChangeGuest carries no status guard: guest details may be corrected at any
// point in the lifecycle, including on closed reservations.
func (r *Reservation) ChangeGuest(guest Guest) {
	r.Guest = guest
}
