// Package dict defines the dictionary abstraction used by dictionary-coded
// grid table columns, plus a sorted reference implementation.
//
// A dictionary maps column values to dense surrogate ids. Ids must be
// assigned monotonically with value order: if a < b then id(a) < id(b).
// Dictionary-coded columns store ids as fixed-width big-endian integers, so
// this monotonicity is what makes byte-wise code comparison equivalent to
// value comparison. The grid table layer depends on the property but cannot
// enforce it; every implementation must guarantee it.
package dict

import "fmt"

// Rounding selects how a dictionary lookup treats values absent from the
// dictionary. Range predicate boundaries use floor and ceil to land on a
// valid, order-consistent id instead of failing.
type Rounding int8

const (
	// RoundFloor resolves an absent value to the nearest smaller member.
	RoundFloor Rounding = -1

	// RoundExact fails when the value is absent.
	RoundExact Rounding = 0

	// RoundCeil resolves an absent value to the nearest larger member.
	RoundCeil Rounding = 1
)

func (r Rounding) String() string {
	switch r {
	case RoundFloor:
		return "Floor"
	case RoundExact:
		return "Exact"
	case RoundCeil:
		return "Ceil"
	default:
		return fmt.Sprintf("Rounding(%d)", int8(r))
	}
}

// Dictionary maps values of one column to surrogate ids and back.
//
// Implementations must be immutable after construction and safe for
// concurrent lookups, and must never assign an id whose IDWidth-byte
// big-endian form is all 0xFF bytes: that pattern is reserved as the null
// sentinel of dictionary-coded columns.
type Dictionary interface {
	// IDOf returns the id of value, failing with errs.ErrNotInDictionary
	// when absent and errs.ErrTypeMismatch when the value's type cannot be
	// a member.
	IDOf(value any) (uint64, error)

	// IDOfRounded is IDOf with floor/ceil resolution for absent values.
	// Rounding off either end of the dictionary fails with
	// errs.ErrRoundingOutOfRange.
	IDOfRounded(value any, rounding Rounding) (uint64, error)

	// ValueOf returns the canonical value for an id.
	ValueOf(id uint64) (any, error)

	// IDWidth returns the number of bytes an id code occupies.
	IDWidth() int

	// Len returns the number of values in the dictionary.
	Len() int
}
