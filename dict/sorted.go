package dict

import (
	"fmt"
	"sort"

	"github.com/arloliu/gridcodec/endian"
	"github.com/arloliu/gridcodec/errs"
)

// Sorted is a string dictionary whose ids are ranks in sorted order, which
// makes id assignment monotonic by construction.
//
// Sorted is immutable after BuildSorted and safe for concurrent use.
type Sorted struct {
	values  []string
	idWidth int
}

var _ Dictionary = (*Sorted)(nil)

// BuildSorted builds a dictionary from the given values. Input is copied,
// deduplicated and sorted; it does not need to be pre-sorted.
func BuildSorted(values []string) *Sorted {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)

	// Dedupe in place after sorting.
	unique := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			unique = append(unique, v)
		}
	}

	return &Sorted{
		values:  unique,
		idWidth: widthFor(len(unique)),
	}
}

// widthFor returns the id width for a dictionary of n values. The width is
// the smallest that fits the max id while keeping the all-0xFF pattern free
// for the null sentinel, so a 256-value dictionary takes 2 bytes, not 1.
func widthFor(n int) int {
	if n == 0 {
		return 1
	}

	maxID := uint64(n - 1)
	for width := 1; width <= 8; width++ {
		if maxID < endian.MaxUintN(width) {
			return width
		}
	}

	return 8
}

func (d *Sorted) IDOf(value any) (uint64, error) {
	s, ok := memberString(value)
	if !ok {
		return 0, fmt.Errorf("%w: dictionary cannot look up %T", errs.ErrTypeMismatch, value)
	}

	i := sort.SearchStrings(d.values, s)
	if i >= len(d.values) || d.values[i] != s {
		return 0, fmt.Errorf("%w: %q", errs.ErrNotInDictionary, s)
	}

	return uint64(i), nil
}

func (d *Sorted) IDOfRounded(value any, rounding Rounding) (uint64, error) {
	s, ok := memberString(value)
	if !ok {
		return 0, fmt.Errorf("%w: dictionary cannot look up %T", errs.ErrTypeMismatch, value)
	}

	i := sort.SearchStrings(d.values, s)
	if i < len(d.values) && d.values[i] == s {
		return uint64(i), nil
	}

	// Absent: i is the insertion point, so values[i-1] < s < values[i].
	switch rounding {
	case RoundFloor:
		if i == 0 {
			return 0, fmt.Errorf("%w: %q is below the smallest member", errs.ErrRoundingOutOfRange, s)
		}

		return uint64(i - 1), nil
	case RoundCeil:
		if i >= len(d.values) {
			return 0, fmt.Errorf("%w: %q is above the largest member", errs.ErrRoundingOutOfRange, s)
		}

		return uint64(i), nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrNotInDictionary, s)
	}
}

func (d *Sorted) ValueOf(id uint64) (any, error) {
	if id >= uint64(len(d.values)) {
		return nil, fmt.Errorf("%w: id %d out of %d", errs.ErrNotInDictionary, id, len(d.values))
	}

	return d.values[id], nil
}

func (d *Sorted) IDWidth() int {
	return d.idWidth
}

func (d *Sorted) Len() int {
	return len(d.values)
}

func memberString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
