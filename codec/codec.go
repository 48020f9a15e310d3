package codec

import (
	"fmt"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

// ColumnCodec converts single column values to and from their byte codes.
//
// Encode appends to the caller's dst buffer and returns the extended slice,
// so callers control allocation and reuse. On error the returned slice is
// the unmodified dst.
//
// Implementations are stateless or immutable after construction and safe for
// concurrent use.
type ColumnCodec interface {
	// Encode appends the byte code of value to dst.
	Encode(value any, dst []byte) ([]byte, error)

	// Decode reads one value from the head of src.
	Decode(src []byte) (any, error)

	// PeekLength returns the number of bytes the code at the head of src
	// occupies, without decoding the value.
	PeekLength(src []byte) (int, error)

	// MaxLength returns an upper bound on the code length, for buffer sizing.
	MaxLength() int

	// ValueOf parses a value from its canonical string form. The encode
	// coercion path uses it to recover from type mismatches.
	ValueOf(s string) (any, error)
}

// Factory builds a ColumnCodec for a declared type. The full DataType is
// passed so precision and scale can shape the codec.
type Factory func(dt datatype.DataType) ColumnCodec

var registry = map[datatype.Kind]Factory{
	datatype.KindTinyInt:   newIntCodec,
	datatype.KindSmallInt:  newIntCodec,
	datatype.KindInt:       newIntCodec,
	datatype.KindBigInt:    newIntCodec,
	datatype.KindFloat:     newDoubleCodec,
	datatype.KindDouble:    newDoubleCodec,
	datatype.KindDecimal:   newDecimalCodec,
	datatype.KindBoolean:   newBoolCodec,
	datatype.KindDate:      newTimeCodec,
	datatype.KindTimestamp: newTimeCodec,
	datatype.KindVarchar:   newStringCodec,
	datatype.KindChar:      newStringCodec,
}

// Register binds a factory to a type kind, replacing any existing binding.
// It must be called during package initialization, before any For call.
func Register(kind datatype.Kind, factory Factory) {
	registry[kind] = factory
}

// For returns the codec for the given declared type.
func For(dt datatype.DataType) (ColumnCodec, error) {
	factory, ok := registry[dt.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: no codec for %s", errs.ErrUnknownDataType, dt)
	}

	return factory(dt), nil
}
