// Package gridtable implements the per-column codec system of a grid table:
// a columnar tabular structure whose cell values are stored as fixed,
// byte-comparable codes.
//
// # Code System
//
// CodeSystem is the central type. It is configured once with functional
// options (dictionaries, fixed column widths, dependent metrics, a logger),
// bound to a Schema with Init, and immutable afterwards. Each column gets
// exactly one serializer strategy, selected in priority order:
//
//  1. Dictionary-coded: the value's surrogate id written as a fixed-width
//     big-endian unsigned integer (WithDictionary).
//  2. Fixed-length: the value's text right-padded with the placeholder byte
//     to a declared width (WithFixedLength).
//  3. Generic: the codec registered for the column's declared data type.
//
// # Byte Codes
//
// A row is the concatenation of its column codes with no separators.
// Dictionary-coded and fixed-length codes occupy a fixed number of bytes and
// compare byte-wise in value order. A code consisting entirely of 0xFF bytes
// is the null sentinel. Generic codes are self-describing and carry their own
// length.
//
// # Encoding and Coercion
//
// Encode operations append to a caller-owned buffer and leave it unchanged on
// error. When a value's dynamic type does not match its column and the value
// is a string, the string is re-parsed once through the column codec and the
// encode retried; failures of that retry are logged and the original
// mismatch error is returned.
//
// # Concurrency
//
// After Init a CodeSystem is safe for concurrent use. Encode paths write only
// to caller-owned buffers, decode and compare paths are read-only, and
// aggregators returned by NewMetricsAggregators are per-query state that must
// not be shared.
package gridtable
