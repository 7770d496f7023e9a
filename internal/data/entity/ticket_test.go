package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketType_Rules(t *testing.T) {
	tests := []struct {
		ticketType   TicketType
		wantPrice    int
		wantSeat     bool
		wantValidity bool
	}{
		{TicketTypeAdult, 25, true, true},
		{TicketTypeChild, 15, true, true},
		{TicketTypeInfant, 0, false, true},
		{TicketType("SENIOR"), 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.ticketType.String(), func(t *testing.T) {
			assert.Equal(t, tt.wantPrice, tt.ticketType.Price())
			assert.Equal(t, tt.wantSeat, tt.ticketType.OccupiesSeat())
			assert.Equal(t, tt.wantValidity, tt.ticketType.IsValid())
		})
	}
}

func TestParseTicketType(t *testing.T) {
	got, err := ParseTicketType(" child ")
	require.NoError(t, err)
	assert.Equal(t, TicketTypeChild, got)

	_, err = ParseTicketType("student")
	assert.EqualError(t, err, `invalid ticket type "student"`)
}

func TestNewTicketTypeRequest(t *testing.T) {
	t.Run("keeps type and count", func(t *testing.T) {
		req, err := NewTicketTypeRequest(TicketTypeAdult, 3)
		require.NoError(t, err)
		assert.Equal(t, TicketTypeAdult, req.Type())
		assert.Equal(t, 3, req.Count())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewTicketTypeRequest(TicketType("VIP"), 1)
		assert.Error(t, err)
	})

	t.Run("rejects counts below one", func(t *testing.T) {
		for _, count := range []int{0, -2} {
			_, err := NewTicketTypeRequest(TicketTypeChild, count)
			assert.Error(t, err, "count %d", count)
		}
	})
}
