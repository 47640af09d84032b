package readtext

import "math"

// parseSignedOverflowExact implements the overflow-exact integer scan
// from the original str_to_int64: it compares the in-progress magnitude
// against min/10 (or max/10) one digit early, so the check never needs
// arithmetic wider than the accumulator itself. Ported rune-for-rune
// from _examples/original_source/src/str_to.h's str_to_int64.
func parseSignedOverflowExact(digits []rune, neg bool, min, max int64) (int64, bool) {
	var number int64
	if neg {
		digPreMin := int64(-(min % 10))
		preMin := min / 10
		for _, d := range digits {
			dv := int64(d - '0')
			if number > preMin || (number == preMin && dv <= digPreMin) {
				number = number*10 - dv
			} else {
				return 0, false
			}
		}
	} else {
		preMax := max / 10
		digPreMax := max % 10
		for _, d := range digits {
			dv := int64(d - '0')
			if number < preMax || (number == preMax && dv <= digPreMax) {
				number = number*10 + dv
			} else {
				return 0, false
			}
		}
	}
	return number, true
}

// parseUnsignedOverflowExact is the uint64 analogue of
// parseSignedOverflowExact, ported from str_to_uint64.
func parseUnsignedOverflowExact(digits []rune, max uint64) (uint64, bool) {
	var number uint64
	preMax := max / 10
	digPreMax := max % 10
	for _, d := range digits {
		dv := uint64(d - '0')
		if number < preMax || (number == preMax && dv <= digPreMax) {
			number = number*10 + dv
		} else {
			return 0, false
		}
	}
	return number, true
}

// splitSign scans an optional leading '+'/'-' and the run of decimal
// digits that follows, trimming surrounding ASCII whitespace first.
// err is ErrNoDigits, ErrInvalidChars, or ErrMinusSign (unsigned only).
func splitSign(field []rune, allowMinus bool) (neg bool, digits []rune, err error) {
	s := trimASCIISpace(field)
	if len(s) == 0 {
		return false, nil, ErrNoDigits
	}
	i := 0
	switch s[0] {
	case '-':
		if !allowMinus {
			return false, nil, ErrMinusSign
		}
		neg = true
		i++
	case '+':
		i++
	}
	if i >= len(s) || !isDigit(s[i]) {
		return false, nil, ErrNoDigits
	}
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j != len(s) {
		return neg, s[i:j], ErrInvalidChars
	}
	return neg, s[i:j], nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func trimASCIISpace(s []rune) []rune {
	start, end := 0, len(s)
	for start < end && isASCIISpace(s[start]) {
		start++
	}
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// ConvertInt converts field to a signed integer of bitSize (8, 16, 32,
// or 64), applying the AllowFloatForInt fallback on overflow or a
// malformed digit run, exactly as to_int8/16/32/64 do in the original.
func ConvertInt(field []rune, bitSize int, cfg Config) (int64, error) {
	min, max := intBounds(bitSize)
	neg, digits, serr := splitSign(field, true)
	if serr == nil {
		if n, ok := parseSignedOverflowExact(digits, neg, min, max); ok {
			return n, nil
		}
		serr = ErrOverflow
	}
	if cfg.AllowFloatForInt {
		f, ferr := ConvertFloat64(field)
		if ferr == nil {
			return int64(f), nil
		}
	}
	return 0, serr
}

// ConvertUint is the unsigned counterpart of ConvertInt.
func ConvertUint(field []rune, bitSize int, cfg Config) (uint64, error) {
	max := uintBounds(bitSize)
	_, digits, serr := splitSign(field, false)
	if serr == nil {
		if n, ok := parseUnsignedOverflowExact(digits, max); ok {
			return n, nil
		}
		serr = ErrOverflow
	}
	if cfg.AllowFloatForInt {
		f, ferr := ConvertFloat64(field)
		if ferr == nil && f >= 0 {
			return uint64(f), nil
		}
	}
	return 0, serr
}

func intBounds(bitSize int) (min, max int64) {
	switch bitSize {
	case 8:
		return math.MinInt8, math.MaxInt8
	case 16:
		return math.MinInt16, math.MaxInt16
	case 32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func uintBounds(bitSize int) uint64 {
	switch bitSize {
	case 8:
		return math.MaxUint8
	case 16:
		return math.MaxUint16
	case 32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}
