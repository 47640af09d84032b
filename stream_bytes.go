package readtext

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const byteStreamBufferRunes = 64 * 1024

// EncodingByName resolves the `encoding` argument of ReadText (spec §6)
// to a golang.org/x/text encoding.Encoding. "utf-8" and "" decode the
// bytes as UTF-8; "bytes" is handled without a decoder (each byte
// becomes one Latin-1 codepoint). Anything else must name one of the
// charmap/unicode encodings below.
//
// Grounded on golang.org/x/text/encoding, a dependency already present
// in the retrieved corpus (JonMunkholm-UiUpload, mdhender-tnrpt).
func EncodingByName(name string) (encoding.Encoding, error) {
	switch name {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "bytes":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1", "8859-1":
		return charmap.ISO8859_1, nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "ascii", "us-ascii":
		return charmap.Windows1252, nil
	default:
		return nil, &ArgumentError{Arg: "encoding", Err: fmt.Errorf("unknown encoding %q", name)}
	}
}

// ByteStream is a Stream over an in-memory byte slice with an explicit
// encoding, per spec §4.1(c). A nil enc treats data as raw bytes whose
// values become codepoints 0-255 (numpy loadtxt's historical "bytes"
// behavior, see to_string in conversions.c), matching the
// ByteConversionDefaultBytesPath contract.
type ByteStream struct {
	r         io.RuneReader
	line      int
	done      bool
	pendingCR bool // a lone '\r' left unresolved at the end of the previous buffer
}

// NewByteStream decodes data with enc (nil for raw byte-as-codepoint
// decoding) and wraps the result as a Stream.
func NewByteStream(data []byte, enc encoding.Encoding) (*ByteStream, error) {
	if enc == nil {
		return &ByteStream{r: &latin1RuneReader{data: data}, line: 1}, nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, &ArgumentError{Arg: "encoding", Err: err}
	}
	return &ByteStream{r: bytes.NewReader(decoded), line: 1}, nil
}

func (s *ByteStream) NextBuffer() ([]rune, BufferState, error) {
	if s.done {
		return nil, EndOfFile, io.EOF
	}
	buf := make([]rune, 0, byteStreamBufferRunes)
	for len(buf) < byteStreamBufferRunes {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				s.done = true
				break
			}
			return nil, MayContainNewline, err
		}
		buf = append(buf, r)
	}
	buf, newlines, trailingCR := collapseNewlines(buf, s.pendingCR)
	s.pendingCR = trailingCR
	if trailingCR && s.done {
		// No further buffer is coming to pair this '\r' with: it's a
		// bare newline in its own right.
		buf = append(buf, '\n')
		newlines++
		s.pendingCR = false
	}
	s.line += newlines
	if s.done && len(buf) == 0 {
		return nil, EndOfFile, io.EOF
	}
	state := MayContainNewline
	if s.done {
		state = EndOfFile
	}
	return buf, state, nil
}

func (s *ByteStream) LineNumber() int { return s.line }

func (s *ByteStream) Close(RestorePolicy) error { return nil }

// latin1RuneReader treats each input byte as one codepoint in [0,255],
// the behavior numpy's loadtxt historically assumed for byte sources
// with no encoding given.
type latin1RuneReader struct {
	data []byte
	pos  int
}

func (l *latin1RuneReader) ReadRune() (rune, int, error) {
	if l.pos >= len(l.data) {
		return 0, 0, io.EOF
	}
	b := l.data[l.pos]
	l.pos++
	return rune(b), 1, nil
}
