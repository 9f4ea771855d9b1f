package display

import (
	"context"

	"github.com/avelichko/hoteldesk/internal/domain"
	"github.com/avelichko/hoteldesk/internal/repository"
)

type DisplayUseCase interface {
	ListRooms(ctx context.Context, status string) ([]domain.Room, error)
}

type Cache interface {
	GetRooms(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error)
	SetRooms(ctx context.Context, status domain.RoomStatus, rooms []domain.Room) error
}

type DisplayService struct {
	repo  repository.RoomRepository
	cache Cache
}

func NewDisplayService(repo repository.RoomRepository, cache Cache) *DisplayService {
	return &DisplayService{repo: repo, cache: cache}
}

func (s *DisplayService) ListRooms(ctx context.Context, status string) ([]domain.Room, error) {
	roomStatus, err := domain.ParseRoomStatus(status)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetRooms(ctx, roomStatus); err == nil && cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.ListByStatus(ctx, roomStatus)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetRooms(ctx, roomStatus, rooms)
	}
	return rooms, nil
}

var _ DisplayUseCase = (*DisplayService)(nil)
