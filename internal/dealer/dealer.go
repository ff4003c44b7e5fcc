package dealer

import (
	"math/rand"

	"cluedo-dealer/internal/cards"

	"github.com/sirupsen/logrus"
)

// Solution is the secret card withheld from each category.
type Solution map[cards.Category]cards.Card

// Contains reports whether card is part of the solution.
func (s Solution) Contains(card cards.Card) bool {
	c, ok := s[card.Category]
	return ok && c == card
}

// Cards returns the solution in canonical category order.
func (s Solution) Cards() []cards.Card {
	out := make([]cards.Card, 0, len(s))
	for _, cat := range cards.Categories() {
		if c, ok := s[cat]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Copy returns an independent copy, so readers cannot alter the game's solution.
func (s Solution) Copy() Solution {
	out := make(Solution, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Pool is the dealable remainder: every card except the solution.
type Pool []cards.Card

// Hands maps every seat to the cards it was dealt.
type Hands map[cards.Seat][]cards.Card

// Total returns the number of cards across all hands.
func (h Hands) Total() int {
	n := 0
	for _, hand := range h {
		n += len(hand)
	}
	return n
}

// Allocator picks a solution and deals the remaining cards.
// It is not safe for concurrent use; give each game its own Allocator.
type Allocator struct {
	log  logrus.FieldLogger
	rand *rand.Rand

	// FoldCase makes seat names match case-insensitively.
	FoldCase bool
}

func New(logger logrus.FieldLogger, rand *rand.Rand) *Allocator {
	return &Allocator{log: logger, rand: rand}
}

// Allocation is the full result of setting up one game.
type Allocation struct {
	Solution Solution
	Hands    Hands
	Mask     ActiveMask
	Report   ActivationReport
}

// SelectSolution draws one card per category uniformly at random and returns
// the remaining cards as the pool.
func (a *Allocator) SelectSolution(u *cards.Universe) (Solution, Pool, error) {
	solution := make(Solution, 3)
	var pool Pool
	for _, cat := range cards.Categories() {
		working := u.Cards(cat)
		if len(working) == 0 {
			return nil, nil, &cards.ConfigurationError{Category: cat, Reason: "no cards"}
		}
		i := a.rand.Intn(len(working))
		solution[cat] = working[i]
		working = append(working[:i], working[i+1:]...)
		pool = append(pool, working...)
	}
	a.log.Debugf("Solution selected: %v", solution.Cards())
	return solution, pool, nil
}

// Deal hands out the pool one card at a time, starting at the first seat and
// moving round the table in seat order, skipping inactive seats.
// The search for the next active seat is bounded to one revolution per card.
// The pool is not modified, and no hands are returned on error.
func (a *Allocator) Deal(pool Pool, mask ActiveMask, seats []cards.Seat) (Hands, error) {
	if mask.Count() == 0 {
		return nil, &NoActivePlayersError{}
	}

	remaining := make(Pool, len(pool))
	copy(remaining, pool)

	hands := make(Hands, len(seats))
	for _, s := range seats {
		hands[s] = []cards.Card{}
	}

	cursor := 0
	for len(remaining) > 0 {
		found := false
		for step := 0; step < len(seats); step++ {
			if mask[seats[cursor]] {
				found = true
				break
			}
			cursor = (cursor + 1) % len(seats)
		}
		if !found {
			err := &DealingStalledError{Remaining: len(remaining), Dealt: len(pool) - len(remaining), Seats: len(seats)}
			a.log.WithFields(logrus.Fields{
				"pool":      len(pool),
				"remaining": remaining,
				"mask":      mask,
				"seats":     seats,
			}).Error(err)
			return nil, err
		}

		seat := seats[cursor]
		i := a.rand.Intn(len(remaining))
		card := remaining[i]
		last := len(remaining) - 1
		remaining[i] = remaining[last]
		remaining = remaining[:last]

		hands[seat] = append(hands[seat], card)
		a.log.Debugf("Dealt %s to %s.", card, seat)
		cursor = (cursor + 1) % len(seats)
	}
	return hands, nil
}

// Allocate sets up one game: resolve the seats, pick the solution, deal the rest.
// Seats are resolved first so bad input fails before any game state is created.
func (a *Allocator) Allocate(u *cards.Universe, requested []string) (*Allocation, error) {
	seats := u.CanonicalSeats()
	mask, report, err := a.ResolveActiveSeats(requested, seats)
	if err != nil {
		return nil, err
	}
	solution, pool, err := a.SelectSolution(u)
	if err != nil {
		return nil, err
	}
	hands, err := a.Deal(pool, mask, seats)
	if err != nil {
		return nil, err
	}
	a.log.Debugf("Dealt %d cards to %d seats.", hands.Total(), mask.Count())
	return &Allocation{
		Solution: solution,
		Hands:    hands,
		Mask:     mask,
		Report:   report,
	}, nil
}
