package readtext

import "math"

// ReadOptions carries the per-call knobs the row reader needs beyond
// the Tokenizer/Config/Dtype triple: which rows to skip, how many to
// read, which input columns to keep, and any per-column converter
// callbacks. It is the Go shape of genfromtxt/loadtxt's skiprows,
// max_rows, usecols, and converters parameters.
type ReadOptions struct {
	// SkipLines is the number of rows consumed and discarded before
	// the first row counted as data.
	SkipLines int
	// MaxRows caps the number of data rows read. Negative means
	// unlimited; the output grows geometrically instead of being
	// exactly sized up front.
	MaxRows int
	// UseCols selects and orders which input columns become output
	// columns. Negative indices count from the end, resolved once the
	// first data row's field count is known. Nil means all columns,
	// in file order.
	UseCols []int
	// Converters maps an input column index (post UseCols-negative
	// normalization, pre UseCols selection) to a callback. Keys that
	// don't correspond to any selected column are silently ignored,
	// mirroring genfromtxt's tolerance of stale converter keys.
	Converters map[int]Converter
}

// RowsResult is ReadRows's return value: the byte-backed numeric
// output plus, when the dtype carries any TypeGeneric columns, the
// side table of decoded objects those columns produced (SliceArrayWriter
// has no byte representation for an arbitrary Go value).
type RowsResult struct {
	Writer  *SliceArrayWriter
	Generic map[int]map[int]any // [row][outputColumn] -> value
}

// nextDataRow advances past rows the tokenizer reports as having zero
// fields — blank lines and comment-only lines — which count as line
// noise, not data, per spec §4.2. It returns ok=false only once the
// stream is genuinely exhausted.
func nextDataRow(tok *Tokenizer) (bool, error) {
	for {
		ok, err := tok.TokenizeRow()
		if err != nil || !ok {
			return ok, err
		}
		if tok.NumFields > 0 {
			return true, nil
		}
	}
}

// normalizeIndex resolves a possibly-negative index against n items,
// per Python slice-index conventions.
func normalizeIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// ReadRows implements the row reader from spec §4.3: skip phase,
// first-row field-count discovery, usecols/converter resolution, output
// allocation, per-row conversion with ragged-row detection, and a final
// trim to the actual row count.
func ReadRows(tok *Tokenizer, cfg Config, dtype Dtype, opts ReadOptions, log *sessionLogger) (*RowsResult, error) {
	for i := 0; i < opts.SkipLines; i++ {
		ok, err := tok.TokenizeRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			return &RowsResult{Writer: NewSliceArrayWriter(dtype.RowSize(0), 0)}, nil
		}
	}

	ok, err := nextDataRow(tok)
	if err != nil {
		return nil, err
	}
	if !ok {
		rowSize := 0
		if dtype.Homogeneous {
			rowSize = 0
		} else {
			rowSize = dtype.RowSize(0)
		}
		return &RowsResult{Writer: NewSliceArrayWriter(rowSize, 0)}, nil
	}
	actualNumFields := tok.NumFields

	noSelection := opts.UseCols == nil
	var cols []int
	if noSelection {
		cols = make([]int, actualNumFields)
		for i := range cols {
			cols[i] = i
		}
	} else {
		cols = make([]int, len(opts.UseCols))
		for i, raw := range opts.UseCols {
			idx, okIdx := normalizeIndex(raw, actualNumFields)
			if !okIdx {
				return nil, &ArgumentError{Arg: "usecols", Err: ErrInvalidChars}
			}
			cols[i] = idx
		}
	}

	converters := make(map[int]Converter, len(opts.Converters))
	for rawKey, conv := range opts.Converters {
		key, okKey := normalizeIndex(rawKey, actualNumFields)
		if okKey {
			converters[key] = conv
		}
	}

	descs, err := resolveDescriptors(dtype, len(cols))
	if err != nil {
		return nil, err
	}
	inferVariableWidths(descs, tok, cols)

	rowSize := 0
	for _, d := range descs {
		rowSize += d.ItemSize
	}

	var writer *SliceArrayWriter
	var growth growthStrategy
	exact := opts.MaxRows >= 0
	if exact {
		writer = NewSliceArrayWriter(rowSize, opts.MaxRows)
	} else {
		growth = newGrowthStrategy(rowSize, log)
		writer = NewSliceArrayWriter(rowSize, growth.next(0, 1))
	}

	var genericRows map[int]map[int]any
	row := 0

	processRow := func() error {
		if exact && row >= writer.Rows() {
			return nil // caller already capped at MaxRows
		}
		if !noSelection && tok.NumFields != actualNumFields {
			// usecols selection tolerates ragged rows as long as every
			// selected column is still present.
			for _, c := range cols {
				if c >= tok.NumFields {
					if log != nil {
						log.raggedRow(row+1, actualNumFields, tok.NumFields)
					}
					return &RaggedRowError{Row: row + 1, Expected: actualNumFields, Got: tok.NumFields}
				}
			}
		} else if noSelection && tok.NumFields != actualNumFields {
			if log != nil {
				log.raggedRow(row+1, actualNumFields, tok.NumFields)
			}
			return &RaggedRowError{Row: row + 1, Expected: actualNumFields, Got: tok.NumFields}
		}

		if !exact && row >= writer.Rows() {
			if err := writer.Grow(growth.next(writer.Rows(), row+1)); err != nil {
				return err
			}
		}

		dst := writer.RowBytes(row)
		offset := 0
		for outCol, inCol := range cols {
			field, _ := tok.Field(inCol)
			desc := descs[outCol]
			conv := converters[inCol]
			if err := convertOne(field, desc, cfg, conv, dst[offset:offset+desc.ItemSize], row+1, inCol+1); err != nil {
				if ce, ok := err.(*genericValue); ok {
					if genericRows == nil {
						genericRows = make(map[int]map[int]any)
					}
					if genericRows[row] == nil {
						genericRows[row] = make(map[int]any)
					}
					genericRows[row][outCol] = ce.v
				} else {
					return err
				}
			}
			offset += desc.ItemSize
		}
		row++
		return nil
	}

	if err := processRow(); err != nil {
		return nil, err
	}

	for opts.MaxRows < 0 || row < opts.MaxRows {
		ok, err := nextDataRow(tok)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := processRow(); err != nil {
			return nil, err
		}
	}

	if err := writer.Grow(row); err != nil {
		return nil, err
	}
	return &RowsResult{Writer: writer, Generic: genericRows}, nil
}

// inferVariableWidths fixes the itemsize of any TypeBytes/TypeWide
// descriptor left at 0 (the caller's "infer from the data" sentinel)
// using the first data row's field length, then recomputes every
// descriptor's byte offset for the new, now-fully-fixed row layout.
// tok must already have tokenized the first data row.
func inferVariableWidths(descs []FieldDescriptor, tok *Tokenizer, cols []int) {
	needsFix := false
	for i := range descs {
		if descs[i].ItemSize == 0 && (descs[i].Type == TypeBytes || descs[i].Type == TypeWide) {
			field, _ := tok.Field(cols[i])
			if descs[i].Type == TypeWide {
				descs[i].ItemSize = len(field) * 4
			} else {
				descs[i].ItemSize = len(field)
			}
			needsFix = true
		}
	}
	if !needsFix {
		return
	}
	offset := 0
	for i := range descs {
		descs[i].ByteOffset = offset
		offset += descs[i].ItemSize
	}
}

// resolveDescriptors expands dtype into exactly numCols per-column
// descriptors: the homogeneous case broadcasts its single descriptor,
// the structured case requires an exact length match.
func resolveDescriptors(dtype Dtype, numCols int) ([]FieldDescriptor, error) {
	if dtype.Homogeneous {
		d := dtype.Fields[0]
		out := make([]FieldDescriptor, numCols)
		offset := 0
		for i := range out {
			out[i] = d
			out[i].ByteOffset = offset
			offset += d.ItemSize
		}
		return out, nil
	}
	if len(dtype.Fields) != numCols {
		return nil, &ArgumentError{Arg: "dtype", Err: ErrInvalidDtype}
	}
	return dtype.Fields, nil
}

// genericValue is the sentinel "error" convertOne uses to hand a
// decoded TypeGeneric value back to its caller without forcing every
// other column type to return (value, error) pairs of interface{}.
type genericValue struct{ v any }

func (g *genericValue) Error() string { return "generic column value" }

// convertOne dispatches field to the converter matching desc.Type,
// writing fixed-width results into dst. TypeGeneric never writes to
// dst (ItemSize is 0 for generic columns); it instead returns its
// value wrapped in *genericValue, which the caller special-cases. row
// and col are carried through verbatim into any error raised — the
// caller is responsible for passing the 1-based numbering spec §8
// expects in a reported error.
func convertOne(field []rune, desc FieldDescriptor, cfg Config, conv Converter, dst []byte, row, col int) error {
	switch desc.Type {
	case TypeInt:
		v, err := ConvertInt(field, desc.ItemSize*8, cfg)
		if err != nil {
			return &ConversionError{Row: row, Column: col, TargetType: desc.String(), Err: err}
		}
		putIntSwapped(dst, uint64(v), desc.ItemSize*8, desc.Swapped)
		return nil

	case TypeUint:
		v, err := ConvertUint(field, desc.ItemSize*8, cfg)
		if err != nil {
			return &ConversionError{Row: row, Column: col, TargetType: desc.String(), Err: err}
		}
		putIntSwapped(dst, v, desc.ItemSize*8, desc.Swapped)
		return nil

	case TypeFloat:
		if desc.ItemSize == 4 {
			v, err := ConvertFloat32(field)
			if err != nil {
				return &ConversionError{Row: row, Column: col, TargetType: desc.String(), Err: err}
			}
			putIntSwapped(dst, uint64(math.Float32bits(v)), 32, desc.Swapped)
			return nil
		}
		v, err := ConvertFloat64(field)
		if err != nil {
			return &ConversionError{Row: row, Column: col, TargetType: desc.String(), Err: err}
		}
		putIntSwapped(dst, math.Float64bits(v), 64, desc.Swapped)
		return nil

	case TypeComplex:
		half := desc.ItemSize / 2
		if half == 4 {
			v, err := ConvertComplex64(field, cfg)
			if err != nil {
				return &ConversionError{Row: row, Column: col, TargetType: desc.String(), Err: err}
			}
			putIntSwapped(dst[:4], uint64(math.Float32bits(real(v))), 32, desc.Swapped)
			putIntSwapped(dst[4:8], uint64(math.Float32bits(imag(v))), 32, desc.Swapped)
			return nil
		}
		v, err := ConvertComplex128(field, cfg)
		if err != nil {
			return &ConversionError{Row: row, Column: col, TargetType: desc.String(), Err: err}
		}
		putIntSwapped(dst[:8], math.Float64bits(real(v)), 64, desc.Swapped)
		putIntSwapped(dst[8:16], math.Float64bits(imag(v)), 64, desc.Swapped)
		return nil

	case TypeBytes:
		if err := ConvertByteString(field, dst); err != nil {
			return &ConversionError{Row: row, Column: col, TargetType: desc.String(), Err: err}
		}
		return nil

	case TypeWide:
		if err := ConvertWideString(field, dst, desc.Swapped); err != nil {
			return &ConversionError{Row: row, Column: col, TargetType: desc.String(), Err: err}
		}
		return nil

	case TypeGeneric:
		v, err := ConvertGeneric(field, cfg, conv)
		if err != nil {
			return &CallbackError{Row: row, Column: col, Err: err}
		}
		return &genericValue{v: v}

	default:
		return &ArgumentError{Arg: "dtype", Err: ErrInvalidDtype}
	}
}
