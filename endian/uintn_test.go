package endian

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxUintN(t *testing.T) {
	require.Equal(t, uint64(0xFF), MaxUintN(1))
	require.Equal(t, uint64(0xFFFF), MaxUintN(2))
	require.Equal(t, uint64(0xFFFFFF), MaxUintN(3))
	require.Equal(t, uint64(0xFFFFFFFF), MaxUintN(4))
	require.Equal(t, ^uint64(0), MaxUintN(8))
}

func TestPutUintN_Roundtrip(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		width int
		want  []byte
	}{
		{name: "single byte", value: 0x7F, width: 1, want: []byte{0x7F}},
		{name: "two bytes", value: 0x0102, width: 2, want: []byte{0x01, 0x02}},
		{name: "three bytes", value: 0x010203, width: 3, want: []byte{0x01, 0x02, 0x03}},
		{name: "leading zeros", value: 0x05, width: 3, want: []byte{0x00, 0x00, 0x05}},
		{name: "max for width", value: 0xFFFF, width: 2, want: []byte{0xFF, 0xFF}},
		{name: "full width", value: 0x0102030405060708, width: 8, want: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.width)
			PutUintN(dst, tt.value, tt.width)
			require.Equal(t, tt.want, dst)
			require.Equal(t, tt.value, UintN(dst, tt.width))
		})
	}
}

func TestAppendUintN(t *testing.T) {
	buf := []byte{0xAA}
	buf = AppendUintN(buf, 0x0102, 3)
	require.Equal(t, []byte{0xAA, 0x00, 0x01, 0x02}, buf)

	// Append result must match PutUintN layout
	dst := make([]byte, 3)
	PutUintN(dst, 0x0102, 3)
	require.Equal(t, dst, buf[1:])
}

func TestPutUintN_OrderPreserving(t *testing.T) {
	// Byte-wise comparison of big-endian codes must match numeric order.
	values := []uint64{0, 1, 2, 255, 256, 1000, 65535, 65536, 1 << 20}
	for width := 3; width <= 8; width++ {
		prev := make([]byte, width)
		PutUintN(prev, values[0], width)
		for _, v := range values[1:] {
			cur := make([]byte, width)
			PutUintN(cur, v, width)
			require.Negative(t, bytes.Compare(prev, cur), "width %d value %d", width, v)
			prev = cur
		}
	}
}

func TestPutUintN_Panics(t *testing.T) {
	require.Panics(t, func() { PutUintN(make([]byte, 1), 0, 0) })
	require.Panics(t, func() { PutUintN(make([]byte, 9), 0, 9) })
	require.Panics(t, func() { PutUintN(make([]byte, 1), 256, 1) })
	require.Panics(t, func() { UintN([]byte{0x01}, 2) })
}
