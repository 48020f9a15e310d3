// Package codec provides the generic per-type value codecs used by grid table
// columns that are neither dictionary-coded nor fixed-length padded.
//
// Each codec converts one typed cell value into a compact byte code and back.
// Codes are either self-describing (varint family) or fixed width, so a
// reader can walk a concatenated row without decoding every value.
//
// # Codec Selection
//
// Codecs are looked up through a registry keyed by the declared column type's
// kind:
//
//	dt := datatype.MustParse("decimal(19,4)")
//	c, err := codec.For(dt)
//	if err != nil {
//	    return err
//	}
//	code, err := c.Encode(decimal.NewFromInt(42), nil)
//
// Custom codecs can replace or extend the built-ins via Register during
// package initialization.
//
// # Built-in Codecs
//
//   - tinyint, smallint, int, bigint: zigzag varint, range-checked against
//     the declared kind
//   - float, double: fixed 8-byte IEEE 754 bits
//   - decimal(p,s): scale + sign + unscaled coefficient bytes, rescaled to
//     the declared scale and precision-checked
//   - varchar(n), char(n): 2-byte big-endian length prefix + UTF-8 bytes,
//     length-checked against the declared bound
//   - boolean: single 0/1 byte
//   - date, timestamp: epoch milliseconds as zigzag varint
//
// # Buffer Ownership
//
// Encode appends to the caller's dst slice and returns the extended slice.
// Decode never retains src. No codec keeps hidden scratch state, so all
// codecs are safe for concurrent use.
//
// # Error Handling
//
// Codecs reject values of the wrong dynamic type with errs.ErrTypeMismatch.
// The grid table encode path may then re-parse string values through ValueOf
// and retry once; see the gridtable package.
package codec
