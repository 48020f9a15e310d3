package gridtable

import (
	"fmt"

	"github.com/arloliu/gridcodec/dict"
	"github.com/arloliu/gridcodec/errs"
)

// EncodeRow appends the codes of all column values to dst in column order,
// with no separators, and returns the extended slice. It requires exactly
// one value per schema column; nil values encode as null codes on columns
// whose strategy supports null. The per-column string coercion of
// EncodeColumnValue applies.
//
// On error the returned slice is dst unchanged.
func (cs *CodeSystem) EncodeRow(values []any, dst []byte) ([]byte, error) {
	if !cs.initialized {
		return dst, errs.ErrNotInitialized
	}
	if len(values) != len(cs.entries) {
		return dst, fmt.Errorf("%w: %d values for %d columns", errs.ErrValueCountMismatch, len(values), len(cs.entries))
	}

	out := dst
	for col, value := range values {
		var err error
		out, err = cs.encodeValue(&cs.entries[col], col, value, dict.RoundExact, out)
		if err != nil {
			return dst, fmt.Errorf("column %d: %w", col, err)
		}
	}

	return out, nil
}

// DecodeRow decodes a full row code back into one value per column. The code
// must contain exactly the row: leftover bytes fail with
// errs.ErrTrailingBytes.
func (cs *CodeSystem) DecodeRow(code []byte) ([]any, error) {
	if !cs.initialized {
		return nil, errs.ErrNotInitialized
	}

	values := make([]any, len(cs.entries))
	rest := code
	for col := range cs.entries {
		n, err := cs.entries[col].codec.PeekLength(rest)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}

		value, err := cs.entries[col].codec.Decode(rest[:n])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}

		values[col] = value
		rest = rest[n:]
	}

	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d bytes left after %d columns", errs.ErrTrailingBytes, len(rest), len(cs.entries))
	}

	return values, nil
}

// SplitRow slices a full row code into per-column codes by length peeking,
// without decoding. The returned slices are views into code, not copies.
func (cs *CodeSystem) SplitRow(code []byte) ([][]byte, error) {
	if !cs.initialized {
		return nil, errs.ErrNotInitialized
	}

	parts := make([][]byte, len(cs.entries))
	rest := code
	for col := range cs.entries {
		n, err := cs.entries[col].codec.PeekLength(rest)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}

		parts[col] = rest[:n:n]
		rest = rest[n:]
	}

	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d bytes left after %d columns", errs.ErrTrailingBytes, len(rest), len(cs.entries))
	}

	return parts, nil
}

// RowLength returns the byte length of the row code at the head of code,
// without decoding it. Unlike DecodeRow it tolerates trailing bytes, so it
// can walk a payload of concatenated rows.
func (cs *CodeSystem) RowLength(code []byte) (int, error) {
	if !cs.initialized {
		return 0, errs.ErrNotInitialized
	}

	total := 0
	rest := code
	for col := range cs.entries {
		n, err := cs.entries[col].codec.PeekLength(rest)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", col, err)
		}

		total += n
		rest = rest[n:]
	}

	return total, nil
}
