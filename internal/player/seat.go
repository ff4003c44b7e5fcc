package player

import (
	"sort"
	"strings"

	"cluedo-dealer/internal/cards"
	"cluedo-dealer/internal/events"
)

// SeatPlayer holds the hand dealt to one seat.
type SeatPlayer struct {
	seat         cards.Seat
	hand         map[cards.Card]struct{}
	eventManager *events.Manager
	turns        int
	seen         []cards.Card
}

// NewSeatPlayer creates a player for seat. If eventManager is non-nil the hand is
// published to it when dealt, which is how the viewing seat's own cards reach the screen.
func NewSeatPlayer(seat cards.Seat, eventManager *events.Manager) *SeatPlayer {
	return &SeatPlayer{
		seat:         seat,
		hand:         make(map[cards.Card]struct{}),
		eventManager: eventManager,
	}
}

func (p *SeatPlayer) Seat() cards.Seat { return p.seat }
func (p *SeatPlayer) Name() string     { return p.seat.String() }

// Hand returns the cards sorted by category, then name.
func (p *SeatPlayer) Hand() []cards.Card {
	hand := make([]cards.Card, 0, len(p.hand))
	for c := range p.hand {
		hand = append(hand, c)
	}
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Category != hand[j].Category {
			return hand[i].Category < hand[j].Category
		}
		return hand[i].Name < hand[j].Name
	})
	return hand
}

func (p *SeatPlayer) HasCard(name string) bool {
	for c := range p.hand {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func (p *SeatPlayer) ReceiveHand(hand []cards.Card) {
	for _, c := range hand {
		p.hand[c] = struct{}{}
	}
	if p.eventManager != nil {
		p.eventManager.Publish(events.HandRevealedEvent{Seat: p.seat, Hand: p.Hand()})
	}
}

// Turns returns how many turns this seat has started.
func (p *SeatPlayer) Turns() int { return p.turns }

// Seen returns the cards of other seats this player has been shown.
func (p *SeatPlayer) Seen() []cards.Card {
	return append([]cards.Card(nil), p.seen...)
}

func (p *SeatPlayer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.TurnStartEvent:
		if event.Seat == p.seat {
			p.turns++
		}
	case events.HandRevealedEvent:
		if event.Seat != p.seat {
			p.seen = append(p.seen, event.Hand...)
		}
	}
}
