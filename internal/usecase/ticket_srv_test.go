package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tickets(t *testing.T, pairs ...any) []entity.TicketTypeRequest {
	t.Helper()

	var requests []entity.TicketTypeRequest
	for i := 0; i < len(pairs); i += 2 {
		req, err := entity.NewTicketTypeRequest(pairs[i].(entity.TicketType), pairs[i+1].(int))
		require.NoError(t, err)
		requests = append(requests, req)
	}
	return requests
}

func newTestTicketService() (TicketService, *mocks.MockPaymentCharger, *mocks.MockSeatReserver) {
	payments := new(mocks.MockPaymentCharger)
	seats := new(mocks.MockSeatReserver)
	return NewTicketService(payments, seats, zap.NewNop()), payments, seats
}

func TestTicketService_PurchaseTickets_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		accountID  int64
		requests   func(t *testing.T) []entity.TicketTypeRequest
		wantReason string
	}{
		{
			name:      "should reject zero account id",
			accountID: 0,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 1, entity.TicketTypeChild, 1)
			},
			wantReason: "Invalid account ID. Only numbers greater than zero are valid accounts.",
		},
		{
			name:      "should reject negative account id",
			accountID: -7,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 1)
			},
			wantReason: "Invalid account ID. Only numbers greater than zero are valid accounts.",
		},
		{
			name:      "should reject child and infant tickets without an adult",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t,
					entity.TicketTypeInfant, 1,
					entity.TicketTypeChild, 1,
					entity.TicketTypeInfant, 1,
					entity.TicketTypeChild, 1,
				)
			},
			wantReason: "Adult ticket is required when purchase child or infant ticket.",
		},
		{
			name:      "should reject infant only purchase",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeInfant, 2)
			},
			wantReason: "Adult ticket is required when purchase child or infant ticket.",
		},
		{
			name:      "should reject more than 25 tickets across categories",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 20, entity.TicketTypeChild, 5, entity.TicketTypeInfant, 1)
			},
			wantReason: "Too many tickets. Max purchase size is 25.",
		},
		{
			name:      "should group repeated requests before checking the limit",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 13, entity.TicketTypeAdult, 13)
			},
			wantReason: "Too many tickets. Max purchase size is 25.",
		},
		{
			name:      "should reject a single request above the limit",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 26)
			},
			wantReason: "Too many tickets. Max purchase size is 25.",
		},
		{
			name:      "should count infants towards the limit",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 25, entity.TicketTypeInfant, 1)
			},
			wantReason: "Too many tickets. Max purchase size is 25.",
		},
		{
			name:      "should reject huge counts that would wrap the same type total",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, math.MaxInt, entity.TicketTypeAdult, 2)
			},
			wantReason: "Too many tickets. Max purchase size is 25.",
		},
		{
			name:      "should reject huge counts that would wrap the purchase total",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, math.MaxInt, entity.TicketTypeChild, 2)
			},
			wantReason: "Too many tickets. Max purchase size is 25.",
		},
		{
			name:      "should reject a huge count after a valid request",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 2, entity.TicketTypeChild, math.MaxInt)
			},
			wantReason: "Too many tickets. Max purchase size is 25.",
		},
		{
			name:      "should reject an empty purchase",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return nil
			},
			wantReason: "At least one ticket must be purchased.",
		},
		{
			name:      "should reject a zero value ticket request",
			accountID: 1,
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return append(tickets(t, entity.TicketTypeAdult, 1), entity.TicketTypeRequest{})
			},
			wantReason: `Invalid ticket request: unknown ticket type "".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, payments, seats := newTestTicketService()

			summary, err := svc.PurchaseTickets(context.Background(), tt.accountID, tt.requests(t)...)

			require.Error(t, err)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, ErrInvalidPurchase)

			var invalid *InvalidPurchaseError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantReason, invalid.Reason)

			payments.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
			seats.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTicketService_PurchaseTickets_Success(t *testing.T) {
	tests := []struct {
		name        string
		requests    func(t *testing.T) []entity.TicketTypeRequest
		wantAmount  int
		wantSeats   int
		wantTickets int
	}{
		{
			name: "should charge adults and children and seat them",
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 2, entity.TicketTypeChild, 1, entity.TicketTypeInfant, 1)
			},
			wantAmount:  65,
			wantSeats:   3,
			wantTickets: 4,
		},
		{
			name: "should not charge or seat infants",
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 2, entity.TicketTypeInfant, 1)
			},
			wantAmount:  50,
			wantSeats:   2,
			wantTickets: 3,
		},
		{
			name: "should accept exactly 25 tickets",
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 20, entity.TicketTypeChild, 5)
			},
			wantAmount:  575,
			wantSeats:   25,
			wantTickets: 25,
		},
		{
			name: "should group split requests of the same type",
			requests: func(t *testing.T) []entity.TicketTypeRequest {
				return tickets(t, entity.TicketTypeAdult, 1, entity.TicketTypeChild, 2, entity.TicketTypeAdult, 1)
			},
			wantAmount:  80,
			wantSeats:   4,
			wantTickets: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, payments, seats := newTestTicketService()

			var calls []string
			payments.On("Charge", mock.Anything, int64(1), tt.wantAmount).
				Run(func(mock.Arguments) { calls = append(calls, "charge") }).
				Return(nil).Once()
			seats.On("Reserve", mock.Anything, int64(1), tt.wantSeats).
				Run(func(mock.Arguments) { calls = append(calls, "reserve") }).
				Return(nil).Once()

			summary, err := svc.PurchaseTickets(context.Background(), 1, tt.requests(t)...)

			require.NoError(t, err)
			assert.Equal(t, int64(1), summary.AccountID)
			assert.Equal(t, tt.wantAmount, summary.TotalAmount)
			assert.Equal(t, tt.wantSeats, summary.TotalSeats)
			assert.Equal(t, tt.wantTickets, summary.TotalTickets)
			assert.Equal(t, []string{"charge", "reserve"}, calls)

			payments.AssertExpectations(t)
			seats.AssertExpectations(t)
		})
	}
}

func TestTicketService_PurchaseTickets_CollaboratorFailures(t *testing.T) {
	t.Run("should not reserve seats when payment fails", func(t *testing.T) {
		svc, payments, seats := newTestTicketService()
		chargeErr := errors.New("card declined")

		payments.On("Charge", mock.Anything, int64(3), 25).Return(chargeErr).Once()

		summary, err := svc.PurchaseTickets(context.Background(), 3, tickets(t, entity.TicketTypeAdult, 1)...)

		require.Error(t, err)
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, chargeErr)
		assert.NotErrorIs(t, err, ErrInvalidPurchase)
		assert.Contains(t, err.Error(), "charge payment for account 3")
		seats.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
		payments.AssertExpectations(t)
	})

	t.Run("should surface reservation failure after payment", func(t *testing.T) {
		svc, payments, seats := newTestTicketService()
		reserveErr := errors.New("seat service unavailable")

		payments.On("Charge", mock.Anything, int64(3), 40).Return(nil).Once()
		seats.On("Reserve", mock.Anything, int64(3), 2).Return(reserveErr).Once()

		summary, err := svc.PurchaseTickets(context.Background(), 3,
			tickets(t, entity.TicketTypeAdult, 1, entity.TicketTypeChild, 1)...)

		require.Error(t, err)
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, reserveErr)
		assert.Contains(t, err.Error(), "reserve seats for account 3")
		payments.AssertExpectations(t)
		seats.AssertExpectations(t)
	})
}

func TestTicketService_ListTicketTypes(t *testing.T) {
	svc, _, _ := newTestTicketService()

	types := svc.ListTicketTypes(context.Background())

	require.Len(t, types, 3)
	assert.Equal(t, entity.TicketTypeAdult, types[0].Type)
	assert.Equal(t, 25, types[0].Price)
	assert.True(t, types[0].OccupiesSeat)
	assert.Equal(t, entity.TicketTypeChild, types[1].Type)
	assert.Equal(t, 15, types[1].Price)
	assert.True(t, types[1].OccupiesSeat)
	assert.Equal(t, entity.TicketTypeInfant, types[2].Type)
	assert.Equal(t, 0, types[2].Price)
	assert.False(t, types[2].OccupiesSeat)
}
