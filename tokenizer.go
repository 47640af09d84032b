package readtext

import "io"

// tokenizerState names the states of the row-segmentation state
// machine described in spec §4.2. INIT begins every field; EAT_NEWLINE
// is the state that ends a row.
type tokenizerState int

const (
	stateInit tokenizerState = iota
	stateUnquoted
	stateQuoted
	stateQuotedCheckDoubleQuote
	stateCheckComment
	stateFinalizeLine
	stateEatNewline
)

// FieldSpan locates one field within the tokenizer's row buffer. The
// length of field i is spans[i+1].Offset - spans[i].Offset - 1: the
// tokenizer always appends one extra trailing span so every field's
// length can be computed without a special case for the last one.
type FieldSpan struct {
	Offset int
	Quoted bool
}

// Tokenizer drives the row-segmentation state machine over a Stream,
// producing one row buffer and field-span table per TokenizeRow call.
// A Tokenizer owns its row buffer and span table exclusively; neither
// is safe to share across goroutines or across concurrent reads.
type Tokenizer struct {
	stream Stream
	cfg    Config

	cur []rune
	pos int
	eof bool // the stream has signaled end of file and cur is drained

	rowBuf []rune
	rowLen int
	spans  []FieldSpan

	// NumFields is the field count of the most recent successful
	// TokenizeRow call.
	NumFields int
}

// NewTokenizer constructs a Tokenizer reading from stream under cfg.
func NewTokenizer(stream Stream, cfg Config) *Tokenizer {
	return &Tokenizer{
		stream: stream,
		cfg:    cfg,
		rowBuf: make([]rune, 0, 256),
		spans:  make([]FieldSpan, 0, 16),
	}
}

// LineNumber reports the stream's current line, for error decoration.
func (t *Tokenizer) LineNumber() int { return t.stream.LineNumber() }

// ensure guarantees at least one rune is available at t.cur[t.pos],
// refilling from the stream as needed. ok is false only once the
// stream is genuinely exhausted.
func (t *Tokenizer) ensure() (ok bool, err error) {
	if t.pos < len(t.cur) {
		return true, nil
	}
	if t.eof {
		return false, nil
	}
	buf, _, err := t.stream.NextBuffer()
	if err != nil {
		if err == io.EOF {
			t.eof = true
			t.cur = nil
			t.pos = 0
			return false, nil
		}
		return false, err
	}
	t.cur = buf
	t.pos = 0
	if len(t.cur) == 0 {
		return t.ensure()
	}
	return true, nil
}

// peek returns the current rune without consuming it. Call ensure first.
func (t *Tokenizer) peek() rune { return t.cur[t.pos] }

// growRowBuf grows the row buffer to the next multiple of four that is
// at least the requested size, per spec §3's row-buffer growth rule.
func growRowBuf(buf []rune, need int) []rune {
	if cap(buf) >= need {
		return buf
	}
	size := (need + 3) &^ 3
	grown := make([]rune, len(buf), size)
	copy(grown, buf)
	return grown
}

func (t *Tokenizer) appendRune(r rune) {
	t.rowBuf = growRowBuf(t.rowBuf, t.rowLen+1)
	t.rowBuf = t.rowBuf[:t.rowLen+1]
	t.rowBuf[t.rowLen] = r
	t.rowLen++
}

func (t *Tokenizer) appendRunes(rs []rune) {
	t.rowBuf = growRowBuf(t.rowBuf, t.rowLen+len(rs))
	t.rowBuf = t.rowBuf[:t.rowLen+len(rs)]
	copy(t.rowBuf[t.rowLen:], rs)
	t.rowLen += len(rs)
}

// finalizeField closes out the field that began at wordStart: writes
// the NUL sentinel and records its span.
func (t *Tokenizer) finalizeField(wordStart int, quoted bool) {
	t.appendRune(0)
	t.spans = append(t.spans, FieldSpan{Offset: wordStart, Quoted: quoted})
}

// finishRow appends the trailing sentinel span and applies the
// single-empty-field-means-empty-row rule from spec §3's invariants.
func (t *Tokenizer) finishRow() {
	t.spans = append(t.spans, FieldSpan{Offset: t.rowLen})
	n := len(t.spans) - 1
	if n == 1 && t.spans[1].Offset-t.spans[0].Offset-1 == 0 {
		t.spans = t.spans[:0]
		n = 0
	}
	t.NumFields = n
}

// Field returns the content (excluding the NUL sentinel) and quoted
// flag of field i of the most recently tokenized row.
func (t *Tokenizer) Field(i int) ([]rune, bool) {
	start := t.spans[i].Offset
	end := t.spans[i+1].Offset - 1
	return t.rowBuf[start:end], t.spans[i].Quoted
}

func isNewline(r rune) bool { return r == '\n' || r == '\r' }

// isSpace reports whether r counts as whitespace for leading-space
// trimming and whitespace-delimited splitting: space or tab, matching
// the corpus's own isWhitespace helper.
func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// TokenizeRow implements the per-row operation from spec §4.2: ok is
// false with a nil error only at a clean end of file. Any other error
// is an I/O failure surfaced by the Stream.
func (t *Tokenizer) TokenizeRow() (ok bool, err error) {
	t.rowLen = 0
	t.spans = t.spans[:0]

	state := stateInit
	quoted := false
	wordStart := 0
	haveField := false // true once a field has been opened for this row

	for {
		available, err := t.ensure()
		if err != nil {
			return false, err
		}
		if !available {
			if !haveField && len(t.spans) == 0 {
				return false, nil
			}
			if haveField {
				t.finalizeField(wordStart, quoted)
			}
			t.finishRow()
			return true, nil
		}

		switch state {
		case stateInit:
			quoted = false
			if t.cfg.trimLeading() {
				for t.pos < len(t.cur) && isSpace(t.cur[t.pos]) {
					t.pos++
				}
				if t.pos >= len(t.cur) {
					continue
				}
			}
			r := t.peek()
			if t.cfg.whitespaceDelimited() && isNewline(r) && len(t.spans) > 0 {
				// Trailing whitespace run before the line terminator:
				// don't open an empty trailing field.
				state = stateFinalizeLine
				continue
			}
			wordStart = t.rowLen
			haveField = true
			if t.cfg.Quote != 0 && r == t.cfg.Quote {
				quoted = true
				t.pos++
				state = stateQuoted
			} else {
				state = stateUnquoted
			}

		case stateUnquoted:
			start := t.pos
			terminated := false
			for t.pos < len(t.cur) {
				if !t.cfg.whitespaceDelimited() {
					if hit := scanUnquotedRun(t.cur, t.pos, t.cfg.Delimiter, t.cfg.Comment, t.cfg.Comment != 0); hit > 0 {
						t.pos += hit
						continue
					}
				}
				r := t.cur[t.pos]
				if isNewline(r) {
					t.appendRunes(t.cur[start:t.pos])
					state = stateEatNewline
					terminated = true
					break
				}
				if t.cfg.whitespaceDelimited() {
					if isSpace(r) {
						t.appendRunes(t.cur[start:t.pos])
						t.pos++
						t.finalizeField(wordStart, quoted)
						haveField = false
						state = stateInit
						terminated = true
						break
					}
				} else if r == t.cfg.Delimiter {
					t.appendRunes(t.cur[start:t.pos])
					t.pos++
					t.finalizeField(wordStart, quoted)
					haveField = false
					state = stateInit
					terminated = true
					break
				}
				if t.cfg.Comment != 0 && r == t.cfg.Comment {
					t.appendRunes(t.cur[start:t.pos])
					t.pos++
					if t.cfg.CommentAlt != 0 {
						state = stateCheckComment
					} else {
						state = stateFinalizeLine
					}
					terminated = true
					break
				}
				t.pos++
			}
			if !terminated {
				t.appendRunes(t.cur[start:t.pos])
			}

		case stateQuoted:
			start := t.pos
			terminated := false
			for t.pos < len(t.cur) {
				r := t.cur[t.pos]
				if !t.cfg.AllowEmbeddedNewline && isNewline(r) {
					t.appendRunes(t.cur[start:t.pos])
					state = stateEatNewline
					terminated = true
					break
				}
				if r == t.cfg.Quote {
					t.appendRunes(t.cur[start:t.pos])
					t.pos++
					state = stateQuotedCheckDoubleQuote
					terminated = true
					break
				}
				t.pos++
			}
			if !terminated {
				t.appendRunes(t.cur[start:t.pos])
			}

		case stateQuotedCheckDoubleQuote:
			r := t.peek()
			if r == t.cfg.Quote {
				t.appendRune(r)
				t.pos++
				state = stateQuoted
			} else {
				state = stateUnquoted
			}

		case stateCheckComment:
			r := t.peek()
			if r == t.cfg.CommentAlt {
				t.pos++
				state = stateFinalizeLine
			} else {
				t.appendRune(t.cfg.Comment)
				state = stateUnquoted
			}

		case stateFinalizeLine:
			for t.pos < len(t.cur) && !isNewline(t.cur[t.pos]) {
				t.pos++
			}
			if t.pos < len(t.cur) {
				state = stateEatNewline
			}

		case stateEatNewline:
			r := t.cur[t.pos]
			t.pos++
			if t.pos < len(t.cur) && isOtherNewline(t.cur[t.pos], r) {
				t.pos++
			}
			if haveField {
				t.finalizeField(wordStart, quoted)
			}
			t.finishRow()
			return true, nil
		}
	}
}

// isOtherNewline reports whether next completes a universal-newline
// pair with first (\n\r or \r\n).
func isOtherNewline(next, first rune) bool {
	return (first == '\n' && next == '\r') || (first == '\r' && next == '\n')
}
