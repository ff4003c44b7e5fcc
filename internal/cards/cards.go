package cards

import (
	"fmt"
	"strings"
)

// Category defines the type of a card using a typed enum.
type Category int

const (
	CategorySuspect Category = iota
	CategoryWeapon
	CategoryRoom
)

func (c Category) String() string {
	switch c {
	case CategorySuspect:
		return "suspects"
	case CategoryWeapon:
		return "weapons"
	case CategoryRoom:
		return "rooms"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Categories returns the three card categories in canonical order.
func Categories() []Category {
	return []Category{CategorySuspect, CategoryWeapon, CategoryRoom}
}

// Card is identified by its category and name.
type Card struct {
	Category Category
	Name     string
}

func (c Card) String() string { return c.Name }

// Seat is one of the six fixed player slots.
type Seat int

const (
	SeatScarlet Seat = iota
	SeatMustard
	SeatWhite
	SeatGreen
	SeatPeacock
	SeatPlum
)

var seatNames = []string{"scarlet", "mustard", "white", "green", "peacock", "plum"}

func (s Seat) String() string {
	if s < 0 || int(s) >= len(seatNames) {
		return fmt.Sprintf("seat(%d)", int(s))
	}
	return seatNames[s]
}

// CanonicalSeats returns the six seats in turn order. The slice is fresh on every call.
func CanonicalSeats() []Seat {
	return []Seat{SeatScarlet, SeatMustard, SeatWhite, SeatGreen, SeatPeacock, SeatPlum}
}

// LookupSeat finds the canonical seat with the given name.
func LookupSeat(name string, foldCase bool) (Seat, bool) {
	for i, n := range seatNames {
		if n == name || (foldCase && strings.EqualFold(n, name)) {
			return Seat(i), true
		}
	}
	return 0, false
}
