package response

import (
	"cinema-tickets/internal/data/entity"
)

type PurchaseResponse struct {
	AccountID    int64          `json:"account_id"`
	TotalTickets int            `json:"total_tickets"`
	TotalAmount  int            `json:"total_amount"`
	TotalSeats   int            `json:"total_seats"`
	Tickets      map[string]int `json:"tickets"`
}

type TicketTypeResponse struct {
	Type         entity.TicketType `json:"type"`
	Price        int               `json:"price"`
	OccupiesSeat bool              `json:"occupies_seat"`
}

// Helper converters
func PurchaseToResponse(s *entity.PurchaseSummary) PurchaseResponse {
	tickets := make(map[string]int, len(s.Tickets))
	for t, n := range s.Tickets {
		tickets[t.String()] = n
	}

	return PurchaseResponse{
		AccountID:    s.AccountID,
		TotalTickets: s.TotalTickets,
		TotalAmount:  s.TotalAmount,
		TotalSeats:   s.TotalSeats,
		Tickets:      tickets,
	}
}

func TicketTypeToResponse(t entity.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		Type:         t,
		Price:        t.Price(),
		OccupiesSeat: t.OccupiesSeat(),
	}
}
