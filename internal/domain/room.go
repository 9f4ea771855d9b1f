package domain

import "time"

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "AVAILABLE"
	RoomStatusReserved  RoomStatus = "RESERVED"
	RoomStatusOccupied  RoomStatus = "OCCUPIED"
)

func (s RoomStatus) IsAvailable() bool { return s == RoomStatusAvailable }
func (s RoomStatus) IsReserved() bool  { return s == RoomStatusReserved }
func (s RoomStatus) IsOccupied() bool  { return s == RoomStatusOccupied }

func RoomStatuses() []RoomStatus {
	return []RoomStatus{RoomStatusAvailable, RoomStatusReserved, RoomStatusOccupied}
}

func ParseRoomStatus(value string) (RoomStatus, error) {
	switch s := RoomStatus(value); s {
	case RoomStatusAvailable, RoomStatusReserved, RoomStatusOccupied:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// Room is identified by its persistent ID; Number is the business key used
// for lookups. Version backs the optimistic check in the repository so two
// concurrent reservations cannot both take the same room.
type Room struct {
	ID        int64
	Number    string
	Status    RoomStatus
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reserve moves an AVAILABLE room to RESERVED. Any other starting status
// fails and leaves the room unchanged.
func (r *Room) Reserve() error {
	if !r.Status.IsAvailable() {
		return ErrRoomStatus
	}
	r.Status = RoomStatusReserved
	return nil
}
