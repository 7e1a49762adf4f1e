package board

import "fmt"

// Dice is the multiset of pip values not yet consumed this turn. Order
// carries no meaning; the generator explores every distinct assignment.
type Dice []uint8

// NewRoll builds the turn's dice pool from a two-die roll. Doubles yield
// four moves of the same value.
func NewRoll(d1, d2 uint8) Dice {
	if d1 == d2 {
		return Dice{d1, d1, d1, d1}
	}
	return Dice{d1, d2}
}

// Validate checks every die is in 1..6.
func (d Dice) Validate() error {
	for _, die := range d {
		if die < 1 || die > 6 {
			return fmt.Errorf("%w: %d", ErrBadDie, die)
		}
	}
	return nil
}

// Remove returns a new pool with one instance of die removed. The receiver
// is untouched.
func (d Dice) Remove(die uint8) Dice {
	out := make(Dice, 0, len(d)-1)
	removed := false
	for _, v := range d {
		if !removed && v == die {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out
}

// Distinct returns the distinct die values in the pool, in first-seen
// order. For doubles this is a single value.
func (d Dice) Distinct() []uint8 {
	var seen [7]bool
	out := make([]uint8, 0, len(d))
	for _, v := range d {
		if v >= 1 && v <= 6 && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Contains reports whether the pool holds at least one instance of die.
func (d Dice) Contains(die uint8) bool {
	for _, v := range d {
		if v == die {
			return true
		}
	}
	return false
}
