package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"cluedo-dealer/internal/cards"
	"cluedo-dealer/internal/dealer"
	"cluedo-dealer/internal/events"
	"cluedo-dealer/internal/player"

	"github.com/sirupsen/logrus"
)

// ErrUnknownSeats is returned by strict builds when a requested seat name is not a seat.
var ErrUnknownSeats = errors.New("unknown seats requested")

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	universe     *cards.Universe
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	seatNames    []string
	foldCase     bool
	strict       bool
	viewer       *cards.Seat
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(universe *cards.Universe, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		universe:     universe,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

func (b *GameBuilder) WithActiveSeats(names ...string) *GameBuilder {
	b.seatNames = append(b.seatNames, names...)
	return b
}

func (b *GameBuilder) WithCaseInsensitiveSeats() *GameBuilder {
	b.foldCase = true
	return b
}

// WithStrictSeats makes any unknown seat name fatal.
func (b *GameBuilder) WithStrictSeats() *GameBuilder {
	b.strict = true
	return b
}

// WithViewer publishes the hand of seat when it is dealt.
func (b *GameBuilder) WithViewer(seat cards.Seat) *GameBuilder {
	b.viewer = &seat
	return b
}

// Build resolves the seats, picks the solution and deals the cards.
func (b *GameBuilder) Build() (*Game, error) {
	alloc := dealer.New(b.log, b.rand)
	alloc.FoldCase = b.foldCase
	seats := b.universe.CanonicalSeats()

	// 1. Work out who is playing
	mask, report, err := alloc.ResolveActiveSeats(b.seatNames, seats)
	for _, w := range report.Warnings {
		b.eventManager.Publish(events.SeatWarningEvent{Name: w.Name, Index: w.Index})
	}
	if err != nil {
		return nil, err
	}
	if b.strict && report.HasWarnings() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSeats, strings.Join(report.UnknownNames(), ", "))
	}

	// 2. Withhold the solution and deal the rest
	solution, pool, err := alloc.SelectSolution(b.universe)
	if err != nil {
		return nil, err
	}
	hands, err := alloc.Deal(pool, mask, seats)
	if err != nil {
		return nil, fmt.Errorf("failed to deal: %w", err)
	}

	game := &Game{
		universe:     b.universe,
		EventManager: b.eventManager,
		log:          b.log,
		solution:     solution,
		report:       report,
		counts:       make(map[cards.Seat]int, len(seats)),
	}

	// 3. Seat the players and hand over their cards. Nobody listens until every
	// hand is dealt, so the viewer's reveal reaches the screen and no other seat.
	for _, seat := range mask.Active(seats) {
		var em *events.Manager
		if b.viewer != nil && *b.viewer == seat {
			em = b.eventManager
		}
		p := player.NewSeatPlayer(seat, em)
		p.ReceiveHand(hands[seat])
		game.Players = append(game.Players, p)
	}
	for _, p := range game.Players {
		b.eventManager.Subscribe(p)
	}
	for _, seat := range seats {
		game.counts[seat] = len(hands[seat])
		b.log.Debugf("%s Hand: %v", seat, hands[seat])
		if mask[seat] {
			b.eventManager.Publish(events.HandDealtEvent{Seat: seat, Count: len(hands[seat])})
		}
	}

	b.eventManager.Publish(events.GameReadyEvent{Seats: game.Seats(), HandCounts: game.HandCounts()})
	b.eventManager.Publish(events.TurnStartEvent{TurnNumber: 1, Seat: game.CurrentSeat()})
	return game, nil
}
