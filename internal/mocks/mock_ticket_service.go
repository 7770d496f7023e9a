package mocks

import (
	"context"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	requests ...entity.TicketTypeRequest) (*entity.PurchaseSummary, error) {

	args := m.Called(ctx, accountID, requests)
	summary, _ := args.Get(0).(*entity.PurchaseSummary)
	return summary, args.Error(1)
}

func (m *MockTicketService) ListTicketTypes(ctx context.Context) []response.TicketTypeResponse {
	args := m.Called(ctx)
	return args.Get(0).([]response.TicketTypeResponse)
}
