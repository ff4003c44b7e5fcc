// Package stats deals many independent games and measures how evenly the
// cards were spread.
package stats

import (
	"context"
	"math/rand"
	"runtime"

	"cluedo-dealer/internal/cards"
	"cluedo-dealer/internal/config"
	"cluedo-dealer/internal/dealer"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Survey is the merged result of many deals.
type Survey struct {
	Games      int
	Seats      []cards.Seat // active seats in turn order
	CardsDealt map[cards.Seat]int
	MinHand    map[cards.Seat]int
	MaxHand    map[cards.Seat]int
	// MaxSpread is the largest difference between two hands in any single game.
	MaxSpread int
	// SolutionHits counts how often each card was withheld.
	SolutionHits map[cards.Card]int
}

func newSurvey() *Survey {
	return &Survey{
		CardsDealt:   make(map[cards.Seat]int),
		MinHand:      make(map[cards.Seat]int),
		MaxHand:      make(map[cards.Seat]int),
		SolutionHits: make(map[cards.Card]int),
	}
}

func (s *Survey) record(a *dealer.Allocation) {
	s.Games++
	lo, hi := -1, 0
	for _, seat := range s.Seats {
		n := len(a.Hands[seat])
		s.CardsDealt[seat] += n
		if m, ok := s.MinHand[seat]; !ok || n < m {
			s.MinHand[seat] = n
		}
		if n > s.MaxHand[seat] {
			s.MaxHand[seat] = n
		}
		if lo < 0 || n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	if hi-lo > s.MaxSpread {
		s.MaxSpread = hi - lo
	}
	for _, c := range a.Solution.Cards() {
		s.SolutionHits[c]++
	}
}

func (s *Survey) merge(o *Survey) {
	s.Games += o.Games
	for seat, n := range o.CardsDealt {
		s.CardsDealt[seat] += n
	}
	for seat, n := range o.MinHand {
		if m, ok := s.MinHand[seat]; !ok || n < m {
			s.MinHand[seat] = n
		}
	}
	for seat, n := range o.MaxHand {
		if n > s.MaxHand[seat] {
			s.MaxHand[seat] = n
		}
	}
	if o.MaxSpread > s.MaxSpread {
		s.MaxSpread = o.MaxSpread
	}
	for c, n := range o.SolutionHits {
		s.SolutionHits[c] += n
	}
}

// Options controls a survey run.
type Options struct {
	Games   int
	Workers int // defaults to the CPU count, capped at 8
	Seed    int64
}

// Run deals opts.Games games across a pool of workers. Each worker owns its own
// random source, seeded from opts.Seed, its own allocator and its own card
// universe built from a copy of cfg, so a run is repeatable for a given seed and
// worker count and no worker shares game state with another.
func Run(ctx context.Context, cfg *config.GameConfig, requested []string, opts Options, log logrus.FieldLogger) (*Survey, error) {
	u, err := cfg.Universe()
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8
		}
	}
	if opts.Games < workers {
		workers = opts.Games
	}

	// Resolve once up front so bad seat input fails fast and the survey knows its seats.
	resolver := dealer.New(log, rand.New(rand.NewSource(opts.Seed)))
	resolver.FoldCase = cfg.CaseInsensitiveSeats
	mask, _, err := resolver.ResolveActiveSeats(requested, u.CanonicalSeats())
	if err != nil {
		return nil, err
	}
	seats := mask.Active(u.CanonicalSeats())
	names := make([]string, len(seats))
	for i, s := range seats {
		names[i] = s.String()
	}

	total := newSurvey()
	total.Seats = seats
	if workers <= 0 {
		return total, nil
	}

	parent := rand.New(rand.NewSource(opts.Seed))
	partials := make([]*Survey, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		games := opts.Games / workers
		if w < opts.Games%workers {
			games++
		}
		workerSeed := parent.Int63()
		snapshot := cfg.DeepCopy()

		g.Go(func() error {
			wu, err := snapshot.Universe()
			if err != nil {
				return err
			}
			alloc := dealer.New(log.WithField("worker", w), rand.New(rand.NewSource(workerSeed)))
			part := newSurvey()
			part.Seats = seats
			for i := 0; i < games; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				a, err := alloc.Allocate(wu, names)
				if err != nil {
					return err
				}
				part.record(a)
			}
			partials[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range partials {
		total.merge(p)
	}
	log.Debugf("Survey of %d games across %d workers done.", total.Games, workers)
	return total, nil
}
