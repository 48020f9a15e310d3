package gridtable

import (
	"bytes"

	"github.com/arloliu/gridcodec/format"
)

// Comparator orders encoded byte codes. Plain byte-wise comparison is
// correct because every order-sensitive serializer in this package is
// order-preserving by construction: dictionary ids are monotonic ranks
// written big-endian, and fixed-length text is padded on the right with a
// byte that sorts below printable text.
type Comparator struct{}

// IsNull reports whether code is a null code: non-empty and every byte equal
// to the null sentinel.
func (Comparator) IsNull(code []byte) bool {
	return isNullCode(code)
}

// Compare orders two codes like bytes.Compare: -1 when a < b, 0 when equal,
// 1 when a > b.
func (Comparator) Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

func isNullCode(code []byte) bool {
	if len(code) == 0 {
		return false
	}
	for _, b := range code {
		if b != format.NullByte {
			return false
		}
	}

	return true
}

// appendNullCode appends width copies of the null sentinel to dst.
func appendNullCode(dst []byte, width int) []byte {
	for i := 0; i < width; i++ {
		dst = append(dst, format.NullByte)
	}

	return dst
}
