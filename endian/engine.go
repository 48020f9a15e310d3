// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package in two ways:
//
//   - EndianEngine combines the ByteOrder and AppendByteOrder interfaces into a
//     single interface, so encoders can both overwrite fixed regions and append
//     to growing buffers through one value.
//   - PutUintN, UintN and AppendUintN read and write big-endian unsigned
//     integers of arbitrary width (1 to 8 bytes). Dictionary-coded columns use
//     them to store surrogate ids in exactly the number of bytes the dictionary
//     needs, while keeping byte-wise comparison consistent with numeric order.
//
// # Basic Usage
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, value)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
