package readtext

// Converter is the opaque, caller-supplied conversion callback
// contract from spec §1: given the raw field text, it returns an
// arbitrary Go value (or an error) for the row reader to hand to the
// output descriptor's "set from object" hook.
type Converter func(field string) (any, error)

// buildGenericArg turns a field's rune slice into the string handed to
// a user Converter (or, with no converter, into the default object
// path), applying the Latin-1 byte-mode conversion to_generic_with_
// converter performs before calling the user's function.
func buildGenericArg(field []rune, mode ByteConversionMode) string {
	switch mode {
	case ByteConversionLatin1BeforeCallback, ByteConversionDefaultBytesPath:
		b := make([]byte, len(field))
		for i, r := range field {
			b[i] = byte(r)
		}
		return string(b)
	default:
		return string(field)
	}
}

// ConvertGeneric runs the default (no-callback) or user-callback
// generic conversion path and returns the resulting value.
func ConvertGeneric(field []rune, cfg Config, conv Converter) (any, error) {
	s := buildGenericArg(field, cfg.ByteConversionMode)
	if conv == nil {
		return s, nil
	}
	return conv(s)
}
