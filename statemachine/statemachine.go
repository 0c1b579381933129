// Package statemachine validates status transitions for reservations and
// orders. Illegal transitions are rejected with an error naming the valid
// next states; terminal states allow no transitions at all.
package statemachine

import (
	"fmt"
	"strings"

	"restaurant-api/models"
)

// Transition defines a valid state change.
type Transition[S ~string] struct {
	From S
	To   S
}

// Machine is an immutable transition table with O(1) validation lookup.
type Machine[S ~string] struct {
	name  string
	table []Transition[S]
	valid map[Transition[S]]bool
}

func New[S ~string](name string, table []Transition[S]) *Machine[S] {
	m := &Machine[S]{name: name, table: table, valid: make(map[Transition[S]]bool, len(table))}
	for _, t := range table {
		m.valid[t] = true
	}
	return m
}

// Can checks whether moving from one state to another is allowed.
func (m *Machine[S]) Can(from, to S) error {
	if m.valid[Transition[S]{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("invalid %s transition: %s -> %s is not allowed; valid transitions from %s are: %s",
		m.name, from, to, from, m.describeNext(from))
}

// NextStates returns all valid next states from a given state.
func (m *Machine[S]) NextStates(from S) []S {
	var nexts []S
	seen := map[S]bool{}
	for _, t := range m.table {
		if t.From == from && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// Transitions returns the full table for the documentation endpoint.
func (m *Machine[S]) Transitions() []Transition[S] {
	return m.table
}

func (m *Machine[S]) describeNext(from S) string {
	nexts := m.NextStates(from)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	parts := make([]string, len(nexts))
	for i, s := range nexts {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// Reservations is the authoritative reservation lifecycle:
// pending -> {confirmed, cancelled}; confirmed -> {completed, cancelled};
// completed and cancelled are terminal.
var Reservations = New("reservation", []Transition[models.ReservationStatus]{
	{From: models.ReservationPending, To: models.ReservationConfirmed},
	{From: models.ReservationPending, To: models.ReservationCancelled},
	{From: models.ReservationConfirmed, To: models.ReservationCompleted},
	{From: models.ReservationConfirmed, To: models.ReservationCancelled},
})

// Orders is the authoritative order lifecycle:
// pending -> {confirmed, cancelled}; confirmed -> {preparing, cancelled};
// preparing -> {completed, cancelled}; completed and cancelled are terminal.
var Orders = New("order", []Transition[models.OrderStatus]{
	{From: models.OrderPending, To: models.OrderConfirmed},
	{From: models.OrderPending, To: models.OrderCancelled},
	{From: models.OrderConfirmed, To: models.OrderPreparing},
	{From: models.OrderConfirmed, To: models.OrderCancelled},
	{From: models.OrderPreparing, To: models.OrderCompleted},
	{From: models.OrderPreparing, To: models.OrderCancelled},
})
