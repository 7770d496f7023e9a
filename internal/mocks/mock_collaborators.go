package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPaymentCharger struct {
	mock.Mock
}

func (m *MockPaymentCharger) Charge(ctx context.Context, accountID int64, amount int) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

type MockSeatReserver struct {
	mock.Mock
}

func (m *MockSeatReserver) Reserve(ctx context.Context, accountID int64, seats int) error {
	args := m.Called(ctx, accountID, seats)
	return args.Error(0)
}
