package readtext

import (
	"encoding/binary"
	"math/bits"
)

// ConvertByteString copies up to len(dst) runes of field into dst as
// Latin-1 bytes, padding the remainder with NUL, exactly as to_string
// does. Any rune above 255 cannot be represented and is an error.
func ConvertByteString(field []rune, dst []byte) error {
	n := len(dst)
	if n > len(field) {
		n = len(field)
	}
	for i := 0; i < n; i++ {
		if field[i] > 255 {
			return ErrValueTooWide
		}
		dst[i] = byte(field[i])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	return nil
}

// ConvertWideString copies up to len(dst)/4 runes of field into dst as
// 4-byte little-endian codepoints, padding the remainder with zero
// runes, as to_unicode does; swapped is true for a non-native dtype,
// which byte-swaps each 4-byte element after the copy.
func ConvertWideString(field []rune, dst []byte, swapped bool) error {
	width := len(dst) / 4
	n := width
	if n > len(field) {
		n = len(field)
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:i*4+4], uint32(field[i]))
	}
	for i := n; i < width; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:i*4+4], 0)
	}
	if swapped {
		for i := 0; i < width; i++ {
			v := binary.LittleEndian.Uint32(dst[i*4 : i*4+4])
			binary.BigEndian.PutUint32(dst[i*4:i*4+4], v)
		}
	}
	return nil
}

// swapBytes reverses b in place, used for the single-element byte
// swap every fixed-width numeric converter applies when the target
// dtype's byte order does not match the host's.
func swapBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// putIntSwapped writes v's low bitSize/8 bytes to dst in little-endian
// order, then reverses them if swapped is set.
func putIntSwapped(dst []byte, v uint64, bitSize int, swapped bool) {
	n := bitSize / 8
	for i := 0; i < n; i++ {
		dst[i] = byte(v >> (8 * i))
	}
	if swapped {
		swapBytes(dst[:n])
	}
}

// nextPowerOfTwo returns the smallest power of two ≥ n (1 for n ≤ 1),
// computed without a loop. The growth strategy does not call it.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
