package readtext

import "io"

// LineStream is a Stream over an iterable of strings where each item
// becomes one buffer ending at a newline, per spec §4.1(b). It is the
// Go analogue of reading from an open text file object line by line.
type LineStream struct {
	lines []string
	idx   int
	line  int
}

// NewLineStream wraps lines as a Stream. Each string is treated as one
// physical line; a trailing '\n' is appended if the caller omitted one,
// so the tokenizer always sees a terminated line.
func NewLineStream(lines []string) *LineStream {
	return &LineStream{lines: lines, line: 1}
}

func (s *LineStream) NextBuffer() ([]rune, BufferState, error) {
	if s.idx >= len(s.lines) {
		return nil, EndOfFile, io.EOF
	}
	text := s.lines[s.idx]
	s.idx++
	s.line++

	runes := make([]rune, 0, len(text)+1)
	for _, r := range text {
		runes = append(runes, r)
	}
	// Each supplied string is one complete, self-contained line: there's
	// no cross-call boundary to carry a pending '\r' across, so a
	// trailing lone '\r' here is simply resolved below like any other
	// line missing its terminator.
	runes, _, _ = collapseNewlines(runes, false)
	if len(runes) == 0 || runes[len(runes)-1] != '\n' {
		runes = append(runes, '\n')
	}

	state := NoNewlineInBuffer
	if s.idx >= len(s.lines) {
		state = EndOfFile
	}
	return runes, state, nil
}

func (s *LineStream) LineNumber() int { return s.line }

func (s *LineStream) Close(RestorePolicy) error { return nil }
