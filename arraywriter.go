package readtext

// ArrayWriter is the caller-owned output array described in spec §1 as
// "the target array allocator" — treated here as an abstract typed
// buffer with byte-level access and a row dimension that the reader is
// allowed to resize. ReadRows does not accept an ArrayWriter from its
// caller: it always allocates a SliceArrayWriter, the reference
// implementation below, and returns it in RowsResult.Writer.
type ArrayWriter interface {
	// RowSize is the fixed number of bytes per row.
	RowSize() int
	// Rows is the current row count.
	Rows() int
	// Grow resizes the writer to exactly newRows rows, preserving any
	// existing row contents. newRows may be smaller than Rows (the
	// final trim in spec §4.3 step 7).
	Grow(newRows int) error
	// RowBytes returns the byte slice backing row, which must satisfy
	// 0 <= row < Rows().
	RowBytes(row int) []byte
}

// SliceArrayWriter is the in-module reference ArrayWriter: a flat
// []byte grown by reallocation and copy, the simplest possible
// implementation of the contract.
type SliceArrayWriter struct {
	rowSize int
	rows    int
	buf     []byte
}

// NewSliceArrayWriter creates a writer with the given row size and an
// initial (possibly zero) row count.
func NewSliceArrayWriter(rowSize, initialRows int) *SliceArrayWriter {
	w := &SliceArrayWriter{rowSize: rowSize}
	if initialRows > 0 {
		_ = w.Grow(initialRows)
	}
	return w
}

func (w *SliceArrayWriter) RowSize() int { return w.rowSize }
func (w *SliceArrayWriter) Rows() int    { return w.rows }

func (w *SliceArrayWriter) Grow(newRows int) error {
	if newRows < 0 {
		return &AllocationError{What: "output array", Err: ErrOverflow}
	}
	need := newRows * w.rowSize
	if need > cap(w.buf) {
		grown := make([]byte, need)
		copy(grown, w.buf)
		w.buf = grown
	} else {
		w.buf = w.buf[:need]
	}
	w.rows = newRows
	return nil
}

func (w *SliceArrayWriter) RowBytes(row int) []byte {
	start := row * w.rowSize
	return w.buf[start : start+w.rowSize]
}

// Bytes returns the full backing array, valid for Rows() rows.
func (w *SliceArrayWriter) Bytes() []byte { return w.buf[:w.rows*w.rowSize] }
