package reception

import (
	"context"
	"log"
	"time"

	"github.com/avelichko/hoteldesk/internal/domain"
	"github.com/avelichko/hoteldesk/internal/kafka"
	"github.com/avelichko/hoteldesk/internal/repository"
	"github.com/google/uuid"
)

type ReceptionUseCase interface {
	MakeReservation(ctx context.Context, input MakeReservationInput) (*domain.Reservation, error)
	GetReservation(ctx context.Context, number string) (*domain.Reservation, error)
	CheckIn(ctx context.Context, number, mobile string) (*domain.Reservation, error)
	CheckOut(ctx context.Context, number string) (*domain.Reservation, error)
	Cancel(ctx context.Context, number string) (*domain.Reservation, error)
	UpdateGuest(ctx context.Context, number string, input GuestInput) (*domain.Reservation, error)
}

type Cache interface {
	InvalidateRooms(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type MakeReservationInput struct {
	RoomNumber  string    `json:"room_number"`
	DateIn      time.Time `json:"date_in"`
	DateOut     time.Time `json:"date_out"`
	GuestMobile string    `json:"guest_mobile"`
	GuestName   string    `json:"guest_name"`
}

type GuestInput struct {
	GuestMobile string `json:"guest_mobile"`
	GuestName   string `json:"guest_name"`
}

type ReceptionService struct {
	reservations       repository.ReservationRepository
	rooms              repository.RoomRepository
	checkIn            *domain.CheckInService
	numbers            domain.NumberGenerator
	cache              Cache
	producer           Producer
	eventsTopic        string
	notificationsTopic string
}

type ReceptionServiceOption func(*ReceptionService)

func WithNotificationsTopic(topic string) ReceptionServiceOption {
	return func(s *ReceptionService) {
		s.notificationsTopic = topic
	}
}

func NewReceptionService(
	reservations repository.ReservationRepository,
	rooms repository.RoomRepository,
	checkIn *domain.CheckInService,
	numbers domain.NumberGenerator,
	cache Cache,
	producer Producer,
	eventsTopic string,
	opts ...ReceptionServiceOption,
) *ReceptionService {
	service := &ReceptionService{
		reservations: reservations,
		rooms:        rooms,
		checkIn:      checkIn,
		numbers:      numbers,
		cache:        cache,
		producer:     producer,
		eventsTopic:  eventsTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// MakeReservation loads the room by its business key, runs the domain
// transition and persists reservation and room in one transaction. Nothing
// is persisted when the domain call fails.
func (s *ReceptionService) MakeReservation(ctx context.Context, input MakeReservationInput) (*domain.Reservation, error) {
	room, err := s.rooms.GetByNumber(ctx, input.RoomNumber)
	if err != nil {
		return nil, err
	}

	guest, err := domain.NewGuest(input.GuestMobile, input.GuestName)
	if err != nil {
		return nil, err
	}

	reservation, err := domain.MakeReservation(s.numbers, room, input.DateIn, input.DateOut, guest)
	if err != nil {
		return nil, err
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.invalidateRooms(ctx)
	s.publish(ctx, kafka.EventReservationCreated, reservation)
	return reservation, nil
}

func (s *ReceptionService) GetReservation(ctx context.Context, number string) (*domain.Reservation, error) {
	return s.reservations.GetByNumber(ctx, number)
}

func (s *ReceptionService) CheckIn(ctx context.Context, number, mobile string) (*domain.Reservation, error) {
	reservation, err := s.reservations.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := s.checkIn.CheckIn(reservation, mobile); err != nil {
		return nil, err
	}

	if err := s.reservations.Update(ctx, reservation); err != nil {
		return nil, err
	}

	s.invalidateRooms(ctx)
	s.publish(ctx, kafka.EventReservationCheckedIn, reservation)
	return reservation, nil
}

func (s *ReceptionService) CheckOut(ctx context.Context, number string) (*domain.Reservation, error) {
	reservation, err := s.reservations.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := reservation.CheckOut(); err != nil {
		return nil, err
	}

	if err := s.reservations.Update(ctx, reservation); err != nil {
		return nil, err
	}

	s.invalidateRooms(ctx)
	s.publish(ctx, kafka.EventReservationCheckedOut, reservation)
	return reservation, nil
}

func (s *ReceptionService) Cancel(ctx context.Context, number string) (*domain.Reservation, error) {
	reservation, err := s.reservations.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := reservation.Cancel(); err != nil {
		return nil, err
	}

	if err := s.reservations.Update(ctx, reservation); err != nil {
		return nil, err
	}

	s.invalidateRooms(ctx)
	s.publish(ctx, kafka.EventReservationCancelled, reservation)
	return reservation, nil
}

func (s *ReceptionService) UpdateGuest(ctx context.Context, number string, input GuestInput) (*domain.Reservation, error) {
	reservation, err := s.reservations.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	guest, err := domain.NewGuest(input.GuestMobile, input.GuestName)
	if err != nil {
		return nil, err
	}
	reservation.ChangeGuest(guest)

	if err := s.reservations.Update(ctx, reservation); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventGuestUpdated, reservation)
	return reservation, nil
}

func (s *ReceptionService) invalidateRooms(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateRooms(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate room cache: %v", err)
	}
}

func (s *ReceptionService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		EventID:           uuid.NewString(),
		Type:              eventType,
		ReservationNumber: reservation.Number.String(),
		RoomNumber:        reservation.Room.Number,
		GuestMobile:       reservation.Guest.Mobile,
		GuestName:         reservation.Guest.Name,
		Status:            string(reservation.Status),
		DateIn:            reservation.DateIn,
		DateOut:           reservation.DateOut,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, reservation.Number.String(), event); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %s: %v", eventType, reservation.Number, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, reservation.Number.String(), event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for reservation %s: %v", eventType, reservation.Number, err)
		}
	}
}

var _ ReceptionUseCase = (*ReceptionService)(nil)
