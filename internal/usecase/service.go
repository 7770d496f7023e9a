package usecase

import (
	"go.uber.org/zap"
)

type Service struct {
	Ticket TicketService
}

func NewService(payments PaymentCharger, seats SeatReserver, log *zap.Logger) *Service {
	return &Service{
		Ticket: NewTicketService(payments, seats, log),
	}
}
