package repository

import (
	"context"
	"errors"

	"github.com/avelichko/hoteldesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository interface {
	ListByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
}

type PGRoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) RoomRepository {
	return &PGRoomRepository{db: db}
}

func (r *PGRoomRepository) ListByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT id, number, status, version, created_at, updated_at FROM rooms WHERE status=$1 ORDER BY number`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Status, &room.Version, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *PGRoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT id, number, status, version, created_at, updated_at FROM rooms WHERE number=$1`, number)
	var room domain.Room
	if err := row.Scan(&room.ID, &room.Number, &room.Status, &room.Version, &room.CreatedAt, &room.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

var _ RoomRepository = (*PGRoomRepository)(nil)
