package dealer

import (
	"fmt"
	"strings"

	"cluedo-dealer/internal/cards"
)

// ActiveMask marks which seats are playing this game.
type ActiveMask map[cards.Seat]bool

// Count returns how many seats are marked active.
func (m ActiveMask) Count() int {
	n := 0
	for _, active := range m {
		if active {
			n++
		}
	}
	return n
}

// Active returns the active seats in the order given.
func (m ActiveMask) Active(order []cards.Seat) []cards.Seat {
	var out []cards.Seat
	for _, s := range order {
		if m[s] {
			out = append(out, s)
		}
	}
	return out
}

// UnknownSeatWarning records a requested name that matched no seat.
type UnknownSeatWarning struct {
	Name  string
	Index int // position of the first occurrence in the request
}

func (w UnknownSeatWarning) String() string {
	return fmt.Sprintf("unknown seat %q (argument %d)", w.Name, w.Index+1)
}

// ActivationReport collects the non-fatal findings of seat resolution.
// Callers decide whether a warning should stop the game.
type ActivationReport struct {
	Warnings []UnknownSeatWarning
}

func (r ActivationReport) HasWarnings() bool { return len(r.Warnings) > 0 }

// UnknownNames returns the unrecognized names in request order.
func (r ActivationReport) UnknownNames() []string {
	names := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		names = append(names, w.Name)
	}
	return names
}

// ResolveActiveSeats marks a seat active iff its name appears at least once in requested.
// Unknown names are reported, not rejected. Zero active seats is an error; the report is
// returned alongside it so the caller can show why.
func (a *Allocator) ResolveActiveSeats(requested []string, seats []cards.Seat) (ActiveMask, ActivationReport, error) {
	mask := make(ActiveMask, len(seats))
	for _, s := range seats {
		mask[s] = false
	}
	canonical := make(map[cards.Seat]struct{}, len(seats))
	for _, s := range seats {
		canonical[s] = struct{}{}
	}

	var report ActivationReport
	warned := make(map[string]struct{})
	for i, raw := range requested {
		name := strings.TrimSpace(raw)
		seat, ok := cards.LookupSeat(name, a.FoldCase)
		if ok {
			if _, inGame := canonical[seat]; inGame {
				mask[seat] = true
				continue
			}
		}
		if _, dup := warned[name]; dup {
			continue
		}
		warned[name] = struct{}{}
		report.Warnings = append(report.Warnings, UnknownSeatWarning{Name: name, Index: i})
		a.log.Warnf("Ignoring unknown seat %q.", name)
	}

	if mask.Count() == 0 {
		return mask, report, &NoActivePlayersError{Requested: requested}
	}
	a.log.Debugf("Active seats: %v", mask.Active(seats))
	return mask, report, nil
}
