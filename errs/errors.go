// Package errs defines the sentinel errors shared across gridcodec packages.
//
// All errors are plain sentinels intended for errors.Is checks. Failure sites
// wrap them with fmt.Errorf("%w: ...") to attach, for example, the offending
// value or column index without breaking identity.
package errs

import "errors"

// Code system lifecycle and configuration errors.
var (
	// ErrNotInitialized is returned when a CodeSystem operation is invoked before Init.
	ErrNotInitialized = errors.New("code system not initialized")

	// ErrAlreadyInitialized is returned when Init is called more than once.
	ErrAlreadyInitialized = errors.New("code system already initialized")

	// ErrInvalidConfig is returned when a functional option carries an invalid value.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrColumnIndexOutOfRange is returned when a column index does not exist in the schema.
	ErrColumnIndexOutOfRange = errors.New("column index out of range")

	// ErrColumnFunctionMismatch is returned when the metric column and function
	// slices passed to aggregator construction have different lengths.
	ErrColumnFunctionMismatch = errors.New("column and function count mismatch")

	// ErrValueCountMismatch is returned when a row operation receives a value
	// count different from the schema's column count.
	ErrValueCountMismatch = errors.New("value count mismatch")
)

// Encoding and decoding errors.
var (
	// ErrTypeMismatch is returned when a value's dynamic type is not acceptable
	// for the column's codec. Encoding retries once through string coercion
	// before surfacing this error.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrValueTooLong is returned when a value exceeds a column's fixed width
	// or declared character bound. Values are never truncated.
	ErrValueTooLong = errors.New("value too long")

	// ErrValueOutOfRange is returned when a numeric value does not fit the
	// column's declared type, such as 300 in a tinyint column.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrPrecisionExceeded is returned when a decimal value carries more digits
	// than the column's declared precision.
	ErrPrecisionExceeded = errors.New("decimal precision exceeded")

	// ErrNotInDictionary is returned by an exact dictionary encode when the
	// value is absent from the dictionary.
	ErrNotInDictionary = errors.New("value not in dictionary")

	// ErrRoundingOutOfRange is returned when floor/ceil rounding runs off the
	// low or high end of the dictionary.
	ErrRoundingOutOfRange = errors.New("rounding out of dictionary range")

	// ErrCodeTooShort is returned when a byte code is shorter than the codec requires.
	ErrCodeTooShort = errors.New("byte code too short")

	// ErrTrailingBytes is returned when bytes remain after decoding every
	// column of a row.
	ErrTrailingBytes = errors.New("trailing bytes after row")

	// ErrUnsupportedOperation is returned by codecs that cannot perform the
	// requested operation, such as string re-parsing on dictionary columns.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Data type errors.
var (
	// ErrUnknownDataType is returned when a type name cannot be parsed or has
	// no registered codec.
	ErrUnknownDataType = errors.New("unknown data type")
)

// Aggregation errors.
var (
	// ErrUnknownAggregation is returned when no aggregator exists for a
	// function name and data type combination.
	ErrUnknownAggregation = errors.New("unknown aggregation")

	// ErrDependentNotSelected is returned when a metric's declared parent
	// column is absent from the selected metric set.
	ErrDependentNotSelected = errors.New("dependent metric not selected")

	// ErrDependentUnsupported is returned when a metric declared as dependent
	// resolves to an aggregator that cannot accept a parent.
	ErrDependentUnsupported = errors.New("aggregator does not support dependent binding")
)

// Block container errors.
var (
	// ErrInvalidBlockSize is returned when block data is shorter than the fixed header.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidBlockMagic is returned when block data does not start with the
	// block magic number.
	ErrInvalidBlockMagic = errors.New("invalid block magic number")

	// ErrChecksumMismatch is returned when the stored payload checksum does not
	// match the payload bytes.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrUnknownCompression is returned when a block header carries an
	// unrecognized compression type.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrWriterFinished is returned when rows are appended to a block writer
	// after Finish.
	ErrWriterFinished = errors.New("block writer already finished")
)
