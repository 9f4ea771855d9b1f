package domain

import "time"

const (
	earlyCheckInOffset = 3 * time.Hour
	lateCheckInOffset  = 6 * time.Hour
)

// CheckInService gates Reservation.CheckIn with front-desk policy: the
// current time must fall inside [date_in-3h, date_out-6h] (both bounds
// inclusive) and the presented mobile must match the stored guest. Note the
// window inverts for sufficiently short stays, which rejects every check-in
// for such reservations; the offsets are kept as-is.
type CheckInService struct {
	now func() time.Time
}

func NewCheckInService() *CheckInService {
	return &CheckInService{now: time.Now}
}

func NewCheckInServiceWithClock(now func() time.Time) *CheckInService {
	return &CheckInService{now: now}
}

func (s *CheckInService) CheckIn(reservation *Reservation, mobile string) error {
	if !s.isValidDate(reservation) {
		return ErrCheckInDate
	}
	if reservation.Guest.Mobile != mobile {
		return ErrCheckInAuthentication
	}
	return reservation.CheckIn()
}

func (s *CheckInService) isValidDate(reservation *Reservation) bool {
	now := s.now().UTC()
	notBefore := reservation.DateIn.Add(-earlyCheckInOffset)
	notAfter := reservation.DateOut.Add(-lateCheckInOffset)
	return !now.Before(notBefore) && !now.After(notAfter)
}
