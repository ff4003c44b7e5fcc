package dealer

import (
	"errors"
	"fmt"
)

var (
	ErrNoActivePlayers = errors.New("no active players")
	ErrDealingStalled  = errors.New("dealing stalled")
)

// NoActivePlayersError is returned when no seat resolves active.
type NoActivePlayersError struct {
	Requested []string
}

func (e *NoActivePlayersError) Error() string {
	if len(e.Requested) == 0 {
		return ErrNoActivePlayers.Error() + ": no seats requested"
	}
	return fmt.Sprintf("%s: none of %q is a seat", ErrNoActivePlayers, e.Requested)
}

func (e *NoActivePlayersError) Is(target error) bool { return target == ErrNoActivePlayers }

// DealingStalledError means a full revolution of the seats found nobody to deal to
// even though the mask claimed an active seat. It is a defect, not bad input.
type DealingStalledError struct {
	Remaining int
	Dealt     int
	Seats     int
}

func (e *DealingStalledError) Error() string {
	return fmt.Sprintf("%s: no active seat among %d after dealing %d cards (%d left)",
		ErrDealingStalled, e.Seats, e.Dealt, e.Remaining)
}

func (e *DealingStalledError) Is(target error) bool { return target == ErrDealingStalled }
