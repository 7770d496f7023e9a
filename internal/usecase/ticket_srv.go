package usecase

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/dto/response"

	"go.uber.org/zap"
)

// PaymentCharger takes payment for a purchase.
type PaymentCharger interface {
	Charge(ctx context.Context, accountID int64, amount int) error
}

// SeatReserver reserves seats for a purchase.
type SeatReserver interface {
	Reserve(ctx context.Context, accountID int64, seats int) error
}

// TicketService validates ticket purchases and hands them to the payment and seat collaborators.
type TicketService interface {
	PurchaseTickets(ctx context.Context, accountID int64, requests ...entity.TicketTypeRequest) (*entity.PurchaseSummary, error)
	ListTicketTypes(ctx context.Context) []response.TicketTypeResponse
}

type ticketService struct {
	payments PaymentCharger
	seats    SeatReserver
	log      *zap.Logger
}

// NewTicketService charges through payments before reserving through seats.
func NewTicketService(payments PaymentCharger, seats SeatReserver, log *zap.Logger) TicketService {
	return &ticketService{
		payments: payments,
		seats:    seats,
		log:      log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) PurchaseTickets(ctx context.Context, accountID int64, requests ...entity.TicketTypeRequest) (*entity.PurchaseSummary, error) {
	if accountID < 1 {
		s.log.Warn("Purchase rejected", zap.Int64("account_id", accountID), zap.String("reason", reasonInvalidAccount))
		return nil, invalidPurchase(reasonInvalidAccount)
	}

	counts, err := groupTickets(requests)
	if err != nil {
		s.log.Warn("Purchase rejected", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}

	summary := summarize(accountID, counts)

	if reason := checkRules(summary); reason != "" {
		s.log.Warn("Purchase rejected",
			zap.Int64("account_id", accountID),
			zap.Int("total_tickets", summary.TotalTickets),
			zap.String("reason", reason),
		)
		return nil, invalidPurchase(reason)
	}

	if err := s.payments.Charge(ctx, accountID, summary.TotalAmount); err != nil {
		s.log.Error("Failed to charge payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("amount", summary.TotalAmount),
		)
		return nil, fmt.Errorf("charge payment for account %d: %w", accountID, err)
	}

	if err := s.seats.Reserve(ctx, accountID, summary.TotalSeats); err != nil {
		s.log.Error("Failed to reserve seats after payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("seats", summary.TotalSeats),
		)
		return nil, fmt.Errorf("reserve seats for account %d: %w", accountID, err)
	}

	s.log.Info("Tickets purchased",
		zap.Int64("account_id", accountID),
		zap.Int("total_tickets", summary.TotalTickets),
		zap.Int("amount", summary.TotalAmount),
		zap.Int("seats", summary.TotalSeats),
	)

	return summary, nil
}

// ListTicketTypes returns the fixed price table in ADULT, CHILD, INFANT order.
func (s *ticketService) ListTicketTypes(ctx context.Context) []response.TicketTypeResponse {
	types := make([]response.TicketTypeResponse, len(entity.TicketTypes))
	for i, t := range entity.TicketTypes {
		types[i] = response.TicketTypeToResponse(t)
	}
	return types
}

// groupTickets sums counts per category. Requests built outside
// NewTicketTypeRequest are checked again here. The running total never
// exceeds MaxTicketsPerPurchase, so later sums and prices cannot overflow.
func groupTickets(requests []entity.TicketTypeRequest) (map[entity.TicketType]int, error) {
	counts := make(map[entity.TicketType]int, len(entity.TicketTypes))
	total := 0
	for _, req := range requests {
		if !req.Type().IsValid() {
			return nil, invalidPurchase(fmt.Sprintf("Invalid ticket request: unknown ticket type %q.", req.Type()))
		}
		if req.Count() < 1 {
			return nil, invalidPurchase(fmt.Sprintf("Invalid ticket request: %s count must be at least 1.", req.Type()))
		}
		if req.Count() > entity.MaxTicketsPerPurchase-total {
			return nil, invalidPurchase(reasonTooManyTickets)
		}
		total += req.Count()
		counts[req.Type()] += req.Count()
	}
	return counts, nil
}

func summarize(accountID int64, counts map[entity.TicketType]int) *entity.PurchaseSummary {
	summary := &entity.PurchaseSummary{
		AccountID: accountID,
		Tickets:   counts,
	}

	for t, n := range counts {
		summary.TotalTickets += n
		summary.TotalAmount += t.Price() * n
		if t.OccupiesSeat() {
			summary.TotalSeats += n
		}
	}

	return summary
}

// checkRules returns the reason of the first violated rule, or "".
func checkRules(summary *entity.PurchaseSummary) string {
	switch {
	case summary.TotalTickets == 0:
		return reasonNoTickets
	case summary.TotalTickets > entity.MaxTicketsPerPurchase:
		return reasonTooManyTickets
	case summary.Tickets[entity.TicketTypeAdult] == 0:
		return reasonAdultRequired
	}
	return ""
}
