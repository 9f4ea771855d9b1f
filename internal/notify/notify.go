package notify

import (
	"context"
	"fmt"

	"github.com/avelichko/hoteldesk/internal/kafka"
)

// Sender delivers guest-facing messages for reservation events. Delivery is
// a stand-in: messages go to stdout keyed by the guest's mobile.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("notify %s: %s for reservation %s (room %s)\n",
		event.GuestMobile, messageFor(event.Type), event.ReservationNumber, event.RoomNumber)
	return nil
}

func messageFor(eventType string) string {
	switch eventType {
	case kafka.EventReservationCreated:
		return "your reservation is confirmed"
	case kafka.EventGuestUpdated:
		return "your guest details were updated"
	case kafka.EventReservationCheckedIn:
		return "welcome, you are checked in"
	case kafka.EventReservationCheckedOut:
		return "thank you for your stay"
	case kafka.EventReservationCancelled:
		return "your reservation was cancelled"
	default:
		return "reservation update"
	}
}
