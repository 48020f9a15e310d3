package endian

// MaxUintN returns the largest value representable in width bytes.
// Width must be between 1 and 8; 8 returns the full uint64 range.
func MaxUintN(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}

	return (uint64(1) << (8 * uint(width))) - 1
}

// PutUintN writes v into dst[:width] as a big-endian unsigned integer.
// Big-endian layout preserves numeric order under byte-wise comparison,
// which dictionary-coded columns rely on.
//
// Panics if dst is shorter than width or v does not fit in width bytes.
func PutUintN(dst []byte, v uint64, width int) {
	if width < 1 || width > 8 {
		panic("endian: PutUintN width out of range")
	}
	if width < 8 && v > MaxUintN(width) {
		panic("endian: PutUintN value does not fit in width")
	}
	_ = dst[width-1]

	for i := width - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// UintN reads a big-endian unsigned integer from src[:width].
//
// Panics if src is shorter than width or width is out of range.
func UintN(src []byte, width int) uint64 {
	if width < 1 || width > 8 {
		panic("endian: UintN width out of range")
	}
	_ = src[width-1]

	var v uint64
	for i := 0; i < width; i++ {
		v = v<<8 | uint64(src[i])
	}

	return v
}

// AppendUintN appends v to dst as a width-byte big-endian unsigned integer
// and returns the extended slice.
func AppendUintN(dst []byte, v uint64, width int) []byte {
	if width < 1 || width > 8 {
		panic("endian: AppendUintN width out of range")
	}
	if width < 8 && v > MaxUintN(width) {
		panic("endian: AppendUintN value does not fit in width")
	}

	for i := width - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*uint(i))))
	}

	return dst
}
