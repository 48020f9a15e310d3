// Package sketch implements the HyperLogLog cardinality sketch backing the
// approximate distinct-count aggregator.
package sketch

import (
	"math"
	"math/bits"
)

const (
	// DefaultPrecision yields 16384 registers, roughly 0.8% standard error.
	DefaultPrecision = 14

	minPrecision = 4
	maxPrecision = 18
)

// HyperLogLog estimates the number of distinct 64-bit hashes added to it.
//
// The zero value is not usable; construct with New or NewWithPrecision.
// Instances are not safe for concurrent use.
type HyperLogLog struct {
	registers []uint8
	precision uint8
}

// New creates a HyperLogLog sketch with DefaultPrecision.
func New() *HyperLogLog {
	return NewWithPrecision(DefaultPrecision)
}

// NewWithPrecision creates a HyperLogLog sketch with 2^precision registers.
// Precision is clamped to the supported range of 4 to 18.
func NewWithPrecision(precision uint8) *HyperLogLog {
	if precision < minPrecision {
		precision = minPrecision
	}
	if precision > maxPrecision {
		precision = maxPrecision
	}

	return &HyperLogLog{
		registers: make([]uint8, 1<<precision),
		precision: precision,
	}
}

// Add records one hashed value.
func (h *HyperLogLog) Add(hash uint64) {
	idx := hash >> (64 - h.precision)
	rest := hash << h.precision

	// Rank is the position of the leftmost set bit in the remaining
	// 64-p bits, counted from 1.
	rank := uint8(bits.LeadingZeros64(rest)) + 1
	maxRank := uint8(64-h.precision) + 1
	if rank > maxRank {
		rank = maxRank
	}

	if rank > h.registers[idx] {
		h.registers[idx] = rank
	}
}

// Estimate returns the current cardinality estimate.
func (h *HyperLogLog) Estimate() uint64 {
	m := float64(len(h.registers))

	var sum float64
	var zeros int
	for _, r := range h.registers {
		sum += 1.0 / float64(uint64(1)<<r)
		if r == 0 {
			zeros++
		}
	}

	est := alpha(len(h.registers)) * m * m / sum

	// Linear counting handles the small range where the raw estimator is biased.
	if est <= 2.5*m && zeros > 0 {
		est = m * math.Log(m/float64(zeros))
	}

	return uint64(est + 0.5)
}

// Reset clears the sketch for reuse.
func (h *HyperLogLog) Reset() {
	for i := range h.registers {
		h.registers[i] = 0
	}
}

func alpha(m int) float64 {
	switch m {
	case 16:
		return 0.673
	case 32:
		return 0.697
	case 64:
		return 0.709
	default:
		return 0.7213 / (1.0 + 1.079/float64(m))
	}
}
