package domain

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")

	ErrRoomStatus        = errors.New("room status does not allow this transition")
	ErrRoomConflict      = errors.New("room was updated by another request")
	ErrReservationStatus = errors.New("reservation status does not allow this transition")

	ErrCheckInDate           = errors.New("current time is outside the check-in window")
	ErrCheckInAuthentication = errors.New("guest mobile does not match the reservation")

	ErrInvalidMobile = errors.New("mobile number has invalid format")
	ErrInvalidStatus = errors.New("unknown status value")
)
