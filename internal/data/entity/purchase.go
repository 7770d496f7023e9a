package entity

// PurchaseSummary is the outcome of a successful purchase.
type PurchaseSummary struct {
	AccountID    int64
	TotalAmount  int
	TotalSeats   int
	TotalTickets int
	Tickets      map[TicketType]int
}
