package player

import (
	"cluedo-dealer/internal/cards"
	"cluedo-dealer/internal/events"
)

// Player is one occupied seat. It reads its own hand and nobody else's.
// It also implements events.Listener to react to game events.
type Player interface {
	events.Listener // Embed the Listener interface

	Seat() cards.Seat
	Name() string
	Hand() []cards.Card
	HasCard(name string) bool
	ReceiveHand(hand []cards.Card)
}
