package repository

import (
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Payment         PaymentRepository
	SeatReservation SeatReservationRepository
}

func NewRepository(db database.PgxIface, currency string, log *zap.Logger) *Repository {
	return &Repository{
		Payment:         NewPaymentRepository(db, currency, log),
		SeatReservation: NewSeatReservationRepository(db, log),
	}
}
