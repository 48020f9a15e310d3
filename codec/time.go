package codec

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

// Accepted textual forms for ValueOf, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TimeCodec encodes date and timestamp values as epoch milliseconds in a
// zigzag varint. Decoded values are time.Time in UTC.
type TimeCodec struct {
	kind datatype.Kind
}

var _ ColumnCodec = (*TimeCodec)(nil)

func newTimeCodec(dt datatype.DataType) ColumnCodec {
	return &TimeCodec{kind: dt.Kind}
}

// NewTimeCodec creates the date/timestamp codec for the given declared type.
func NewTimeCodec(dt datatype.DataType) *TimeCodec {
	c, _ := newTimeCodec(dt).(*TimeCodec)
	return c
}

func (c *TimeCodec) Encode(value any, dst []byte) ([]byte, error) {
	var millis int64
	switch v := value.(type) {
	case time.Time:
		millis = v.UnixMilli()
	case int64:
		millis = v
	case int:
		millis = int64(v)
	default:
		return dst, fmt.Errorf("%w: %s column cannot encode %T", errs.ErrTypeMismatch, c.kind, value)
	}

	return binary.AppendVarint(dst, millis), nil
}

func (c *TimeCodec) Decode(src []byte) (any, error) {
	millis, n := binary.Varint(src)
	if n <= 0 {
		return nil, fmt.Errorf("%w: truncated time varint", errs.ErrCodeTooShort)
	}

	return time.UnixMilli(millis).UTC(), nil
}

func (c *TimeCodec) PeekLength(src []byte) (int, error) {
	for i, b := range src {
		if i >= binary.MaxVarintLen64 {
			break
		}
		if b < 0x80 {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: truncated time varint", errs.ErrCodeTooShort)
}

func (c *TimeCodec) MaxLength() int {
	return binary.MaxVarintLen64
}

func (c *TimeCodec) ValueOf(s string) (any, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	// Bare digit strings are epoch milliseconds.
	if millis, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}

	return nil, fmt.Errorf("%w: %q is not a date or timestamp", errs.ErrTypeMismatch, s)
}
