package request

import (
	"cinema-tickets/internal/data/entity"
)

// PurchaseRequest leaves account_id unchecked here; the ticket service owns
// that rule so the caller gets its reason text.
type PurchaseRequest struct {
	AccountID int64                `json:"account_id"`
	Tickets   []TicketRequestInput `json:"tickets" validate:"required,min=1,dive"`
}

type TicketRequestInput struct {
	Type  string `json:"type" validate:"required,oneof=ADULT CHILD INFANT"`
	Count int    `json:"count" validate:"required,gt=0,lte=25"`
}

// ToTicketRequests converts the validated body into immutable ticket requests.
func (r *PurchaseRequest) ToTicketRequests() ([]entity.TicketTypeRequest, error) {
	requests := make([]entity.TicketTypeRequest, 0, len(r.Tickets))
	for _, t := range r.Tickets {
		ticketType, err := entity.ParseTicketType(t.Type)
		if err != nil {
			return nil, err
		}

		req, err := entity.NewTicketTypeRequest(ticketType, t.Count)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
