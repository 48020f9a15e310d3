// Package hash provides xxHash64 hashing of column values in a canonical
// textual form, used by the approximate distinct-count sketch.
package hash

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Value computes the xxHash64 of a value's canonical textual form.
//
// Equal values always produce equal hashes regardless of which accepted
// dynamic type carries them, so int64(5) and int32(5) count as one distinct
// value. Strings and byte slices hash their raw content.
func Value(v any) uint64 {
	switch val := v.(type) {
	case string:
		return ID(val)
	case []byte:
		return Sum64(val)
	case int64:
		return ID(strconv.FormatInt(val, 10))
	case int:
		return ID(strconv.FormatInt(int64(val), 10))
	case int32:
		return ID(strconv.FormatInt(int64(val), 10))
	case int16:
		return ID(strconv.FormatInt(int64(val), 10))
	case int8:
		return ID(strconv.FormatInt(int64(val), 10))
	case float64:
		return ID(strconv.FormatFloat(val, 'g', -1, 64))
	case float32:
		return ID(strconv.FormatFloat(float64(val), 'g', -1, 64))
	case bool:
		return ID(strconv.FormatBool(val))
	case time.Time:
		return ID(strconv.FormatInt(val.UnixMilli(), 10))
	case decimal.Decimal:
		return ID(val.String())
	default:
		return ID(fmt.Sprintf("%v", val))
	}
}
