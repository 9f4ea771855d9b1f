package repository

import (
	"context"
	"errors"
	"time"

	"github.com/avelichko/hoteldesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) error
	Update(ctx context.Context, reservation *domain.Reservation) error
	ListOverdue(ctx context.Context, deadline time.Time) ([]domain.Reservation, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

const reservationColumns = `r.id, r.number, r.status, r.date_in, r.date_out, r.guest_mobile, r.guest_name, r.created_at, r.updated_at,
	rm.id, rm.number, rm.status, rm.version, rm.created_at, rm.updated_at`

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	var room domain.Room
	if err := row.Scan(
		&res.ID, &res.Number, &res.Status, &res.DateIn, &res.DateOut, &res.Guest.Mobile, &res.Guest.Name, &res.CreatedAt, &res.UpdatedAt,
		&room.ID, &room.Number, &room.Status, &room.Version, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		return nil, err
	}
	res.Room = &room
	return &res, nil
}

func (r *PGReservationRepository) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+`
		FROM reservations r JOIN rooms rm ON rm.id = r.room_id
		WHERE r.number=$1`, number)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

// Create persists a freshly made reservation together with its room in one
// transaction. The room write is guarded by the version read earlier in the
// request; losing that race fails the whole transaction.
func (r *PGReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.updateRoom(ctx, tx, reservation.Room); err != nil {
		return err
	}

	if err := tx.QueryRow(ctx, `INSERT INTO reservations (room_id, number, status, date_in, date_out, guest_mobile, guest_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		reservation.Room.ID, reservation.Number, reservation.Status, reservation.DateIn, reservation.DateOut,
		reservation.Guest.Mobile, reservation.Guest.Name).
		Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update persists the reservation row and its room row atomically, with the
// same version guard as Create.
func (r *PGReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.updateRoom(ctx, tx, reservation.Room); err != nil {
		return err
	}

	if err := tx.QueryRow(ctx, `UPDATE reservations SET status=$1, guest_mobile=$2, guest_name=$3, updated_at=now()
		WHERE id=$4 RETURNING updated_at`,
		reservation.Status, reservation.Guest.Mobile, reservation.Guest.Name, reservation.ID).
		Scan(&reservation.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGReservationRepository) updateRoom(ctx context.Context, tx pgx.Tx, room *domain.Room) error {
	err := tx.QueryRow(ctx, `UPDATE rooms SET status=$1, version=version+1, updated_at=now()
		WHERE id=$2 AND version=$3 RETURNING version, updated_at`,
		room.Status, room.ID, room.Version).
		Scan(&room.Version, &room.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrRoomConflict
	}
	return err
}

// ListOverdue returns in-progress reservations whose date_out has passed.
// The worker reports them; state still only moves through domain operations.
func (r *PGReservationRepository) ListOverdue(ctx context.Context, deadline time.Time) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reservationColumns+`
		FROM reservations r JOIN rooms rm ON rm.id = r.room_id
		WHERE r.status=$1 AND r.date_out <= $2
		ORDER BY r.date_out`, domain.ReservationStatusInProgress, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overdue []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		overdue = append(overdue, *res)
	}
	return overdue, rows.Err()
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
