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

// PaymentRepository records charges in the payments ledger. It doubles as
// the self-hosted payment collaborator of the ticket service.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	Charge(ctx context.Context, accountID int64, amount int) error
}

type paymentRepository struct {
	db       database.PgxIface
	currency string
	log      *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, currency string, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:       db,
		currency: currency,
		log:      log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, account_id, amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.AccountID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.Int64("account_id", payment.AccountID),
			zap.Int("amount", payment.Amount),
		)
		return fmt.Errorf("create payment for account %d: %w", payment.AccountID, err)
	}

	return nil
}

func (r *paymentRepository) Charge(ctx context.Context, accountID int64, amount int) error {
	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AccountID: accountID,
		Amount:    amount,
		Currency:  r.currency,
		Status:    entity.PaymentStatusCompleted,
	}

	if err := r.Create(ctx, payment); err != nil {
		return err
	}

	r.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int("amount", amount),
	)
	return nil
}
