package game

import (
	"errors"

	"cluedo-dealer/internal/cards"
	"cluedo-dealer/internal/dealer"
	"cluedo-dealer/internal/events"
	"cluedo-dealer/internal/player"

	"github.com/sirupsen/logrus"
)

// ErrGameOver is returned when a turn is requested after the game has ended.
var ErrGameOver = errors.New("game is over")

// Game is one dealt game of Cluedo. Hands are fixed once built.
type Game struct {
	Players      []player.Player // active seats in turn order
	EventManager *events.Manager
	universe     *cards.Universe
	solution     dealer.Solution
	report       dealer.ActivationReport
	counts       map[cards.Seat]int
	turn         int
	over         bool
	log          *logrus.Logger
}

func (g *Game) Universe() *cards.Universe { return g.universe }

// Report returns the unknown seat names found while seating the players.
func (g *Game) Report() dealer.ActivationReport { return g.report }

// Seats returns the active seats in turn order.
func (g *Game) Seats() []cards.Seat {
	seats := make([]cards.Seat, 0, len(g.Players))
	for _, p := range g.Players {
		seats = append(seats, p.Seat())
	}
	return seats
}

// HandCounts returns how many cards every seat holds, inactive seats included.
func (g *Game) HandCounts() map[cards.Seat]int {
	out := make(map[cards.Seat]int, len(g.counts))
	for s, n := range g.counts {
		out[s] = n
	}
	return out
}

// Player returns the player in seat, if that seat is playing.
func (g *Game) Player(seat cards.Seat) (player.Player, bool) {
	for _, p := range g.Players {
		if p.Seat() == seat {
			return p, true
		}
	}
	return nil, false
}

// CurrentSeat returns whose turn it is.
func (g *Game) CurrentSeat() cards.Seat {
	return g.Players[g.turn%len(g.Players)].Seat()
}

// Advance starts the next turn and returns the seat now playing.
func (g *Game) Advance() (cards.Seat, error) {
	if g.over {
		return 0, ErrGameOver
	}
	g.turn++
	seat := g.CurrentSeat()
	g.EventManager.Publish(events.TurnStartEvent{TurnNumber: g.turn + 1, Seat: seat})
	return seat, nil
}

// Solution returns a copy of the solution; the game's own copy cannot be changed.
func (g *Game) Solution() dealer.Solution { return g.solution.Copy() }

// End declares the game over and reveals the solution.
func (g *Game) End() {
	if g.over {
		return
	}
	g.over = true
	g.log.Debugf("Game over after %d turns. Solution: %v", g.turn+1, g.solution.Cards())
	g.EventManager.Publish(events.GameOverEvent{Solution: g.solution.Cards()})
}

func (g *Game) IsOver() bool { return g.over }
