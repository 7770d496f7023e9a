package entity

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is a charge recorded by the ledger payment adapter.
type Payment struct {
	BaseSimple
	AccountID int64         `db:"account_id"`
	Amount    int           `db:"amount"`
	Currency  string        `db:"currency"`
	Status    PaymentStatus `db:"status"`
}

// SeatReservation is a reservation recorded by the ledger seat adapter.
type SeatReservation struct {
	BaseSimple
	AccountID int64 `db:"account_id"`
	Seats     int   `db:"seats"`
}
