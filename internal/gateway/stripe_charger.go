package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cinema-tickets/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"go.uber.org/zap"
)

var (
	ErrNoPaymentMethod   = errors.New("no stripe payment method configured")
	ErrPaymentNotSettled = errors.New("payment intent did not succeed")
)

// StripeCharger takes ticket payments through Stripe PaymentIntents.
type StripeCharger struct {
	currency      string
	paymentMethod string
	create        func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	log           *zap.Logger
}

// NewStripeCharger expects stripe.Key to be set by the caller.
func NewStripeCharger(currency, paymentMethod string, log *zap.Logger) *StripeCharger {
	return &StripeCharger{
		currency:      currency,
		paymentMethod: paymentMethod,
		create:        paymentintent.New,
		log:           log.With(zap.String("gateway", "stripe")),
	}
}

// Charge creates and confirms a PaymentIntent for amount whole currency
// units against the configured payment method. Only an intent that comes
// back succeeded counts as paid.
func (c *StripeCharger) Charge(ctx context.Context, accountID int64, amount int) error {
	if amount == 0 {
		c.log.Debug("Skipping zero amount charge", zap.Int64("account_id", accountID))
		return nil
	}
	if c.paymentMethod == "" {
		c.log.Error("Stripe payment method is not configured", zap.Int64("account_id", accountID))
		return fmt.Errorf("charge account %d: %w", accountID, ErrNoPaymentMethod)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toMinorUnits(amount)),
		Currency:      stripe.String(c.currency),
		PaymentMethod: stripe.String(c.paymentMethod),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
		Description: stripe.String(fmt.Sprintf("Cinema tickets for account %d", accountID)),
		Metadata: map[string]string{
			"account_id": strconv.FormatInt(accountID, 10),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(utils.GenerateUUIDString())

	intent, err := c.create(params)
	if err != nil {
		c.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("amount", amount),
		)
		return fmt.Errorf("create payment intent for account %d: %w", accountID, err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		c.log.Error("Payment intent not settled",
			zap.String("payment_intent_id", intent.ID),
			zap.String("status", string(intent.Status)),
			zap.Int64("account_id", accountID),
			zap.Int("amount", amount),
		)
		return fmt.Errorf("payment intent %s for account %d is %s: %w",
			intent.ID, accountID, intent.Status, ErrPaymentNotSettled)
	}

	c.log.Info("Payment intent succeeded",
		zap.String("payment_intent_id", intent.ID),
		zap.Int64("account_id", accountID),
		zap.Int("amount", amount),
		zap.String("currency", c.currency),
	)
	return nil
}

// toMinorUnits converts whole units to the smallest currency unit (pence, cents).
func toMinorUnits(amount int) int64 {
	return decimal.NewFromInt(int64(amount)).Mul(decimal.NewFromInt(100)).IntPart()
}
