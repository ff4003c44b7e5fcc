package dealer

import (
	"io"
	"math/rand"
	"sort"
	"testing"

	"cluedo-dealer/internal/cards"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSuspects = []string{"Colonel Mustard", "Miss Scarlett", "Mr. Green", "Mrs. Peacock", "Mrs. White", "Professor Plum"}
	testWeapons  = []string{"Candlestick", "Dagger", "Lead Pipe", "Revolver", "Rope"}
	testRooms    = []string{"Ballroom", "Billiard Room", "Conservatory", "Dining Room", "Hall", "Kitchen", "Library", "Lounge", "Study"}
)

// newTestAllocator returns an allocator with a silent logger and a fixed seed.
func newTestAllocator(seed int64) *Allocator {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, rand.New(rand.NewSource(seed)))
}

func standardUniverse(t *testing.T) *cards.Universe {
	t.Helper()
	u, err := cards.NewUniverse(testSuspects, testWeapons, testRooms)
	require.NoError(t, err)
	return u
}

func smallUniverse(t *testing.T) *cards.Universe {
	t.Helper()
	u, err := cards.NewUniverse([]string{"P", "Q"}, []string{"X", "Y"}, []string{"A", "B", "C"})
	require.NoError(t, err)
	return u
}

func maskOf(seats ...cards.Seat) ActiveMask {
	m := make(ActiveMask)
	for _, s := range cards.CanonicalSeats() {
		m[s] = false
	}
	for _, s := range seats {
		m[s] = true
	}
	return m
}

func sortedNames(cs []cards.Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Category.String()+"/"+c.Name)
	}
	sort.Strings(out)
	return out
}

func TestSelectSolution(t *testing.T) {
	// GIVEN the standard universe
	u := standardUniverse(t)
	a := newTestAllocator(1)

	// WHEN a solution is selected
	solution, pool, err := a.SelectSolution(u)
	require.NoError(t, err)

	t.Run("solution has one card of each category", func(t *testing.T) {
		require.Len(t, solution, 3)
		for _, cat := range cards.Categories() {
			assert.Equal(t, cat, solution[cat].Category)
		}
	})

	t.Run("pool is the universe minus the solution", func(t *testing.T) {
		assert.Len(t, pool, u.Size()-3)
		for _, c := range pool {
			assert.False(t, solution.Contains(c), "pool holds solution card %s", c)
		}
		all := append(append([]cards.Card{}, pool...), solution.Cards()...)
		assert.Equal(t, sortedNames(u.All()), sortedNames(all))
	})
}

func TestResolveActiveSeats(t *testing.T) {
	seats := cards.CanonicalSeats()

	t.Run("unknown names are warnings and known names are active", func(t *testing.T) {
		a := newTestAllocator(1)
		mask, report, err := a.ResolveActiveSeats([]string{"scarlet", "nobody"}, seats)

		require.NoError(t, err)
		assert.True(t, mask[cards.SeatScarlet])
		assert.Equal(t, 1, mask.Count())
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, "nobody", report.Warnings[0].Name)
		assert.Equal(t, 1, report.Warnings[0].Index)
	})

	t.Run("duplicates collapse and order does not matter", func(t *testing.T) {
		a := newTestAllocator(1)
		mask, report, err := a.ResolveActiveSeats([]string{"plum", "scarlet", "plum", " white "}, seats)

		require.NoError(t, err)
		assert.False(t, report.HasWarnings())
		assert.Equal(t, []cards.Seat{cards.SeatScarlet, cards.SeatWhite, cards.SeatPlum}, mask.Active(seats))
	})

	t.Run("a repeated unknown name is reported once", func(t *testing.T) {
		a := newTestAllocator(1)
		_, report, err := a.ResolveActiveSeats([]string{"nobody", "green", "nobody"}, seats)

		require.NoError(t, err)
		assert.Equal(t, []string{"nobody"}, report.UnknownNames())
	})

	t.Run("matching is case sensitive unless folding is enabled", func(t *testing.T) {
		a := newTestAllocator(1)
		_, report, err := a.ResolveActiveSeats([]string{"Scarlet"}, seats)
		assert.ErrorIs(t, err, ErrNoActivePlayers)
		assert.Equal(t, []string{"Scarlet"}, report.UnknownNames())

		a.FoldCase = true
		mask, _, err := a.ResolveActiveSeats([]string{"Scarlet"}, seats)
		require.NoError(t, err)
		assert.True(t, mask[cards.SeatScarlet])
	})

	t.Run("no valid names fails with NoActivePlayersError", func(t *testing.T) {
		a := newTestAllocator(1)
		_, _, err := a.ResolveActiveSeats([]string{"nobody"}, seats)

		var noPlayers *NoActivePlayersError
		require.ErrorAs(t, err, &noPlayers)
		assert.Equal(t, []string{"nobody"}, noPlayers.Requested)

		_, _, err = a.ResolveActiveSeats(nil, seats)
		assert.ErrorIs(t, err, ErrNoActivePlayers)
	})
}

func TestDealSmallUniverse(t *testing.T) {
	// GIVEN rooms A,B,C, weapons X,Y, suspects P,Q and two active seats
	u := smallUniverse(t)
	a := newTestAllocator(7)
	solution, pool, err := a.SelectSolution(u)
	require.NoError(t, err)

	// WHEN the pool is dealt
	hands, err := a.Deal(pool, maskOf(cards.SeatScarlet, cards.SeatMustard), cards.CanonicalSeats())
	require.NoError(t, err)

	// THEN the four remaining cards are split 2/2 and the solution is in neither hand
	assert.Len(t, hands[cards.SeatScarlet], 2)
	assert.Len(t, hands[cards.SeatMustard], 2)
	assert.Equal(t, 4, hands.Total())
	for _, seat := range []cards.Seat{cards.SeatScarlet, cards.SeatMustard} {
		for _, c := range hands[seat] {
			assert.False(t, solution.Contains(c))
		}
	}
}

func TestDealOnlyLastSeatActive(t *testing.T) {
	// GIVEN seventeen dealable cards and only the sixth seat playing
	u := standardUniverse(t)
	a := newTestAllocator(3)
	_, pool, err := a.SelectSolution(u)
	require.NoError(t, err)
	require.Len(t, pool, 17)

	seats := cards.CanonicalSeats()
	hands, err := a.Deal(pool, maskOf(seats[5]), seats)

	// THEN that seat receives every card and the deal terminates
	require.NoError(t, err)
	assert.Len(t, hands[seats[5]], 17)
	for _, s := range seats[:5] {
		assert.NotNil(t, hands[s])
		assert.Empty(t, hands[s])
	}
}

func TestDealFairnessForEverySeatSubset(t *testing.T) {
	u := standardUniverse(t)
	seats := cards.CanonicalSeats()

	for subset := 1; subset < 1<<len(seats); subset++ {
		var active []cards.Seat
		for i, s := range seats {
			if subset&(1<<i) != 0 {
				active = append(active, s)
			}
		}

		for seed := int64(1); seed <= 3; seed++ {
			a := newTestAllocator(seed)
			solution, pool, err := a.SelectSolution(u)
			require.NoError(t, err)

			hands, err := a.Deal(pool, maskOf(active...), seats)
			require.NoError(t, err)

			n, k := len(pool), len(active)
			extra := n % k
			var dealt []cards.Card
			for i, s := range active {
				want := n / k
				if i < extra {
					want++
				}
				assert.Len(t, hands[s], want, "subset %b seat %s", subset, s)
				dealt = append(dealt, hands[s]...)
			}
			for _, s := range seats {
				if !maskOf(active...)[s] {
					assert.Empty(t, hands[s], "inactive seat %s was dealt cards", s)
				}
			}
			assert.Equal(t, sortedNames(pool), sortedNames(dealt), "subset %b", subset)
			for _, c := range dealt {
				assert.False(t, solution.Contains(c))
			}
		}
	}
}

func TestDealIsDeterministicForSeed(t *testing.T) {
	u := standardUniverse(t)
	requested := []string{"green", "scarlet", "plum"}

	first, err := newTestAllocator(42).Allocate(u, requested)
	require.NoError(t, err)
	second, err := newTestAllocator(42).Allocate(u, requested)
	require.NoError(t, err)

	assert.Equal(t, first.Solution, second.Solution)
	assert.Equal(t, first.Hands, second.Hands)

	t.Run("other seeds produce other deals", func(t *testing.T) {
		differs := false
		for seed := int64(1); seed <= 10; seed++ {
			other, err := newTestAllocator(seed).Allocate(u, requested)
			require.NoError(t, err)
			if !assert.ObjectsAreEqual(first.Hands, other.Hands) {
				differs = true
				break
			}
		}
		assert.True(t, differs)
	})
}

func TestDealErrors(t *testing.T) {
	u := smallUniverse(t)

	t.Run("an empty mask fails before dealing", func(t *testing.T) {
		a := newTestAllocator(1)
		_, pool, err := a.SelectSolution(u)
		require.NoError(t, err)

		hands, err := a.Deal(pool, maskOf(), cards.CanonicalSeats())
		assert.ErrorIs(t, err, ErrNoActivePlayers)
		assert.Nil(t, hands)
	})

	t.Run("a mask naming no listed seat stalls instead of spinning", func(t *testing.T) {
		a := newTestAllocator(1)
		_, pool, err := a.SelectSolution(u)
		require.NoError(t, err)
		seats := cards.CanonicalSeats()[:5]

		hands, err := a.Deal(pool, ActiveMask{cards.SeatPlum: true}, seats)

		var stalled *DealingStalledError
		require.ErrorAs(t, err, &stalled)
		assert.Equal(t, len(pool), stalled.Remaining)
		assert.Equal(t, 0, stalled.Dealt)
		assert.Nil(t, hands)
	})

	t.Run("dealing does not consume the caller's pool", func(t *testing.T) {
		a := newTestAllocator(1)
		_, pool, err := a.SelectSolution(u)
		require.NoError(t, err)
		before := append(Pool{}, pool...)

		_, err = a.Deal(pool, maskOf(cards.SeatWhite), cards.CanonicalSeats())
		require.NoError(t, err)
		assert.Equal(t, before, pool)
	})
}

func TestAllocate(t *testing.T) {
	u := standardUniverse(t)

	t.Run("it reports unknown seats and still deals", func(t *testing.T) {
		alloc, err := newTestAllocator(5).Allocate(u, []string{"scarlet", "nobody", "peacock"})
		require.NoError(t, err)

		assert.Equal(t, []string{"nobody"}, alloc.Report.UnknownNames())
		assert.Equal(t, 17, alloc.Hands.Total())
		assert.Len(t, alloc.Hands[cards.SeatScarlet], 9)
		assert.Len(t, alloc.Hands[cards.SeatPeacock], 8)
		assert.Len(t, alloc.Hands, 6)
	})

	t.Run("it fails without creating state when nobody plays", func(t *testing.T) {
		alloc, err := newTestAllocator(5).Allocate(u, []string{"nobody"})
		assert.ErrorIs(t, err, ErrNoActivePlayers)
		assert.Nil(t, alloc)
	})
}
