package sketch

import (
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestHyperLogLog_Empty(t *testing.T) {
	h := New()
	require.Equal(t, uint64(0), h.Estimate())
}

func TestHyperLogLog_SmallCardinality(t *testing.T) {
	h := New()
	for i := 0; i < 100; i++ {
		h.Add(xxhash.Sum64String(fmt.Sprintf("value-%d", i)))
	}

	est := h.Estimate()
	require.InDelta(t, 100, float64(est), 3, "linear counting should be near exact at low cardinality")
}

func TestHyperLogLog_DuplicatesDoNotInflate(t *testing.T) {
	h := New()
	hash := xxhash.Sum64String("repeated")
	for i := 0; i < 10000; i++ {
		h.Add(hash)
	}

	require.Equal(t, uint64(1), h.Estimate())
}

func TestHyperLogLog_LargeCardinality(t *testing.T) {
	h := New()
	const n = 100000
	for i := 0; i < n; i++ {
		h.Add(xxhash.Sum64String(fmt.Sprintf("item-%d", i)))
	}

	est := float64(h.Estimate())
	require.InEpsilon(t, float64(n), est, 0.05, "estimate should stay within 5 percent at default precision")
}

func TestHyperLogLog_Reset(t *testing.T) {
	h := New()
	for i := 0; i < 1000; i++ {
		h.Add(xxhash.Sum64String(fmt.Sprintf("v%d", i)))
	}
	require.NotEqual(t, uint64(0), h.Estimate())

	h.Reset()
	require.Equal(t, uint64(0), h.Estimate())
}

func TestNewWithPrecision_Clamps(t *testing.T) {
	low := NewWithPrecision(1)
	require.Len(t, low.registers, 1<<minPrecision)

	high := NewWithPrecision(30)
	require.Len(t, high.registers, 1<<maxPrecision)
}

func BenchmarkHyperLogLog_Add(b *testing.B) {
	h := New()
	hashes := make([]uint64, 1024)
	for i := range hashes {
		hashes[i] = xxhash.Sum64String(fmt.Sprintf("bench-%d", i))
	}

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		h.Add(hashes[i%len(hashes)])
	}
}
