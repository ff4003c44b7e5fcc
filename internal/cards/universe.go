package cards

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("invalid card configuration")

// ConfigurationError reports a card universe that cannot host a game.
type ConfigurationError struct {
	Category Category
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Category, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Universe is the immutable catalog of cards for one edition of the game.
type Universe struct {
	byCategory map[Category][]Card
}

// NewUniverse validates and copies the three category lists.
// Every category must hold at least one card, and names must be unique within a category.
func NewUniverse(suspects, weapons, rooms []string) (*Universe, error) {
	u := &Universe{byCategory: make(map[Category][]Card, 3)}
	lists := map[Category][]string{
		CategorySuspect: suspects,
		CategoryWeapon:  weapons,
		CategoryRoom:    rooms,
	}
	for _, cat := range Categories() {
		names := lists[cat]
		if len(names) == 0 {
			return nil, &ConfigurationError{Category: cat, Reason: "no cards"}
		}
		seen := make(map[string]struct{}, len(names))
		list := make([]Card, 0, len(names))
		for _, name := range names {
			if strings.TrimSpace(name) == "" {
				return nil, &ConfigurationError{Category: cat, Reason: "blank card name"}
			}
			if _, dup := seen[name]; dup {
				return nil, &ConfigurationError{Category: cat, Reason: fmt.Sprintf("duplicate card %q", name)}
			}
			seen[name] = struct{}{}
			list = append(list, Card{Category: cat, Name: name})
		}
		u.byCategory[cat] = list
	}
	return u, nil
}

// Categories returns a copy of every category's card list.
func (u *Universe) Categories() map[Category][]Card {
	out := make(map[Category][]Card, len(u.byCategory))
	for cat := range u.byCategory {
		out[cat] = u.Cards(cat)
	}
	return out
}

// Cards returns a copy of one category's card list.
func (u *Universe) Cards(cat Category) []Card {
	list := u.byCategory[cat]
	out := make([]Card, len(list))
	copy(out, list)
	return out
}

// All returns every card, suspects first, then weapons, then rooms.
func (u *Universe) All() []Card {
	out := make([]Card, 0, u.Size())
	for _, cat := range Categories() {
		out = append(out, u.byCategory[cat]...)
	}
	return out
}

func (u *Universe) Size() int {
	n := 0
	for _, list := range u.byCategory {
		n += len(list)
	}
	return n
}

// Lookup finds a card by name in any category.
func (u *Universe) Lookup(name string) (Card, bool) {
	for _, cat := range Categories() {
		for _, c := range u.byCategory[cat] {
			if strings.EqualFold(c.Name, name) {
				return c, true
			}
		}
	}
	return Card{}, false
}

func (u *Universe) CanonicalSeats() []Seat { return CanonicalSeats() }
