package readtext

import (
	"fmt"
	"strconv"
)

// asciiFromRunes copies a rune slice to ASCII bytes in a stack-sized
// buffer, falling back to a heap allocation past 128 runes, mirroring
// double_from_ucs4's stack_buf/heap_buf split in conversions.c. Any
// rune ≥ 128 cannot be part of a numeric literal and ends the copy
// early, just as the original does.
func asciiFromRunes(s []rune) []byte {
	var stack [128]byte
	var buf []byte
	if len(s) <= len(stack) {
		buf = stack[:0]
	} else {
		buf = make([]byte, 0, len(s))
	}
	for _, r := range s {
		if r >= 128 {
			break
		}
		buf = append(buf, byte(r))
	}
	return buf
}

// ConvertFloat64 parses field as a double, delegating to the host's
// string-to-double routine (strconv.ParseFloat) the way to_double
// delegates to PyOS_string_to_double, after trimming ASCII whitespace
// and rejecting non-ASCII content.
func ConvertFloat64(field []rune) (float64, error) {
	trimmed := trimASCIISpace(field)
	if len(trimmed) == 0 {
		return 0, ErrNoDigits
	}
	ascii := asciiFromRunes(trimmed)
	if len(ascii) != len(trimmed) {
		return 0, ErrInvalidChars
	}
	v, err := strconv.ParseFloat(string(ascii), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidChars, err)
	}
	return v, nil
}

// ConvertFloat32 narrows ConvertFloat64's result by plain cast, as
// to_float does after calling the same double parser as to_double.
func ConvertFloat32(field []rune) (float32, error) {
	v, err := ConvertFloat64(field)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}
