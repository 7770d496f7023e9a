package entity

import (
	"fmt"
	"strings"
)

type TicketType string

const (
	TicketTypeAdult  TicketType = "ADULT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeInfant TicketType = "INFANT"
)

// Fixed per-category prices in whole currency units.
const (
	AdultTicketPrice  = 25
	ChildTicketPrice  = 15
	InfantTicketPrice = 0
)

// MaxTicketsPerPurchase caps the ticket count summed across all categories.
const MaxTicketsPerPurchase = 25

// TicketTypes lists the categories in display order.
var TicketTypes = []TicketType{TicketTypeAdult, TicketTypeChild, TicketTypeInfant}

func (t TicketType) IsValid() bool {
	switch t {
	case TicketTypeAdult, TicketTypeChild, TicketTypeInfant:
		return true
	}
	return false
}

// Price returns the unit price. Unknown types cost nothing.
func (t TicketType) Price() int {
	switch t {
	case TicketTypeAdult:
		return AdultTicketPrice
	case TicketTypeChild:
		return ChildTicketPrice
	default:
		return InfantTicketPrice
	}
}

// OccupiesSeat reports whether a ticket of this type needs its own seat.
// Infants sit on an adult's lap.
func (t TicketType) OccupiesSeat() bool {
	return t == TicketTypeAdult || t == TicketTypeChild
}

func (t TicketType) String() string {
	return string(t)
}

// ParseTicketType accepts the category name in any case.
func ParseTicketType(s string) (TicketType, error) {
	t := TicketType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type %q", s)
	}
	return t, nil
}

// TicketTypeRequest asks for count tickets of one category. It is immutable
// once built with NewTicketTypeRequest.
type TicketTypeRequest struct {
	ticketType TicketType
	count      int
}

func NewTicketTypeRequest(ticketType TicketType, count int) (TicketTypeRequest, error) {
	if !ticketType.IsValid() {
		return TicketTypeRequest{}, fmt.Errorf("invalid ticket type %q", ticketType)
	}
	if count < 1 {
		return TicketTypeRequest{}, fmt.Errorf("invalid ticket count %d for %s: must be at least 1", count, ticketType)
	}

	return TicketTypeRequest{ticketType: ticketType, count: count}, nil
}

func (r TicketTypeRequest) Type() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) Count() int {
	return r.count
}
