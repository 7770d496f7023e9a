package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	// POST /api/purchases - validate and pay for a set of tickets
	r.Post("/api/purchases", ticketHandler.PurchaseTickets)

	// GET /api/ticket-types - fixed price list
	r.Get("/api/ticket-types", ticketHandler.ListTicketTypes)
}
