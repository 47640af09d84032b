package readtext

// doubleFromRunes mirrors double_from_ucs4: parse a float prefix of s,
// returning the value and the number of runes consumed. When
// skipTrailingWhitespace is false (used while parsing the real part of
// a complex literal, so the imaginary marker can be inspected
// immediately), trailing whitespace is left unconsumed.
func doubleFromRunes(s []rune, skipTrailingWhitespace bool) (value float64, consumed int, ok bool) {
	i := 0
	for i < len(s) && isASCIISpace(s[i]) {
		i++
	}
	if i >= len(s) {
		return 0, 0, false
	}
	start := i
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	sawDigits := false
	for i < len(s) && isDigit(s[i]) {
		i++
		sawDigits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			sawDigits = true
		}
	}
	if !sawDigits {
		return 0, 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	v, err := ConvertFloat64(s[start:i])
	if err != nil {
		return 0, 0, false
	}
	end := i
	if skipTrailingWhitespace {
		for end < len(s) && isASCIISpace(s[end]) {
			end++
		}
	}
	return v, end, true
}

// ConvertComplex128 parses field as a complex literal under cfg's
// ImaginaryUnit, implementing to_complex_int's grammar exactly:
// an optional real part, an optional '(' ... ')' wrapper, and either
// a bare imaginary suffix or a '+'/'-' separated imaginary part
// followed by the imaginary unit. No separator may be skipped.
func ConvertComplex128(field []rune, cfg Config) (complex128, error) {
	s := field
	i := 0
	for i < len(s) && isASCIISpace(s[i]) {
		i++
	}
	unmatchedParen := false
	if i < len(s) && s[i] == '(' {
		unmatchedParen = true
		i++
	}

	real, n, ok := doubleFromRunes(s[i:], false)
	if !ok {
		return 0, ErrInvalidChars
	}
	i += n

	var imag float64
	switch {
	case i >= len(s):
		imag = 0
		if unmatchedParen {
			return 0, ErrInvalidChars
		}

	case s[i] == cfg.ImaginaryUnit:
		imag = real
		real = 0
		i++
		if unmatchedParen && i < len(s) && s[i] == ')' {
			i++
			unmatchedParen = false
		}

	case unmatchedParen && s[i] == ')':
		imag = 0
		i++
		unmatchedParen = false

	default:
		if s[i] == '+' {
			i++
		} else if s[i] != '-' {
			return 0, ErrInvalidChars
		}
		im, n2, ok := doubleFromRunes(s[i:], false)
		if !ok {
			return 0, ErrInvalidChars
		}
		i += n2
		if i >= len(s) || s[i] != cfg.ImaginaryUnit {
			return 0, ErrInvalidChars
		}
		imag = im
		i++
		if unmatchedParen && i < len(s) && s[i] == ')' {
			i++
			unmatchedParen = false
		}
	}

	for i < len(s) && isASCIISpace(s[i]) {
		i++
	}
	if i != len(s) || unmatchedParen {
		return 0, ErrInvalidChars
	}
	return complex(real, imag), nil
}

// ConvertComplex64 narrows ConvertComplex128 by plain cast of each part.
func ConvertComplex64(field []rune, cfg Config) (complex64, error) {
	v, err := ConvertComplex128(field, cfg)
	if err != nil {
		return 0, err
	}
	return complex64(v), nil
}
