package events

import (
	"cluedo-dealer/internal/cards"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Setup events ---

// SeatWarningEvent is published for each requested seat name that matched no seat.
type SeatWarningEvent struct {
	Name  string
	Index int
}

// HandDealtEvent tells everyone how many cards a seat holds, never which ones.
type HandDealtEvent struct {
	Seat  cards.Seat
	Count int
}

// GameReadyEvent is published once the cards are dealt.
type GameReadyEvent struct {
	Seats      []cards.Seat
	HandCounts map[cards.Seat]int
}

// HandRevealedEvent carries a hand to the one listener allowed to see it.
type HandRevealedEvent struct {
	Seat cards.Seat
	Hand []cards.Card
}

// --- Play events ---

type TurnStartEvent struct {
	TurnNumber int
	Seat       cards.Seat
}

type GameOverEvent struct {
	Solution []cards.Card
}
