package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeatReservationRepository records reservations in the seat ledger. It
// doubles as the self-hosted seat collaborator of the ticket service.
type SeatReservationRepository interface {
	Create(ctx context.Context, reservation *entity.SeatReservation) error
	Reserve(ctx context.Context, accountID int64, seats int) error
}

type seatReservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatReservationRepository(db database.PgxIface, log *zap.Logger) SeatReservationRepository {
	return &seatReservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_reservation")),
	}
}

func (r *seatReservationRepository) Create(ctx context.Context, reservation *entity.SeatReservation) error {
	query := `
		INSERT INTO seat_reservations (id, account_id, seats, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.AccountID,
		reservation.Seats,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat reservation",
			zap.Error(err),
			zap.Int64("account_id", reservation.AccountID),
			zap.Int("seats", reservation.Seats),
		)
		return fmt.Errorf("create seat reservation for account %d: %w", reservation.AccountID, err)
	}

	return nil
}

func (r *seatReservationRepository) Reserve(ctx context.Context, accountID int64, seats int) error {
	reservation := &entity.SeatReservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AccountID: accountID,
		Seats:     seats,
	}

	if err := r.Create(ctx, reservation); err != nil {
		return err
	}

	r.log.Info("Seats reserved",
		zap.String("reservation_id", reservation.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int("seats", seats),
	)
	return nil
}
