package readtext

import (
	"context"

	"github.com/spf13/afero"
)

// sourceKind tags which of Source's payload fields is live.
type sourceKind int

const (
	sourcePath sourceKind = iota
	sourceLines
	sourceBytes
)

// Source names where ReadText reads from: a filesystem path, an
// already-split sequence of lines, or an in-memory byte slice — the
// three stream constructors spec §4.1 describes.
type Source struct {
	kind  sourceKind
	fs    afero.Fs
	path  string
	lines []string
	data  []byte
}

// FromFile reads path from the real filesystem.
func FromFile(path string) Source { return Source{kind: sourcePath, path: path} }

// FromFileFS reads path from fs, the seam tests use to substitute
// afero.NewMemMapFs() for the real disk.
func FromFileFS(fs afero.Fs, path string) Source {
	return Source{kind: sourcePath, fs: fs, path: path}
}

// FromLines treats lines as an already-open iterable of text lines.
func FromLines(lines []string) Source { return Source{kind: sourceLines, lines: lines} }

// FromBytes reads an in-memory buffer, decoded per the WithEncoding option.
func FromBytes(data []byte) Source { return Source{kind: sourceBytes, data: data} }

// settings accumulates the Config/ReadOptions/encoding state every
// Option mutates before ReadText builds the actual Stream/Tokenizer.
type settings struct {
	cfg      Config
	opts     ReadOptions
	encoding string
}

// Option configures one aspect of a ReadText call, the functional-
// options replacement for loadtxt's keyword arguments (spec §6).
type Option func(*settings)

func WithDelimiter(r rune) Option { return func(s *settings) { s.cfg.Delimiter = r } }
func WithComment(r rune) Option   { return func(s *settings) { s.cfg.Comment = r } }
func WithCommentAlt(r rune) Option {
	return func(s *settings) { s.cfg.CommentAlt = r }
}
func WithQuote(r rune) Option         { return func(s *settings) { s.cfg.Quote = r } }
func WithImaginaryUnit(r rune) Option { return func(s *settings) { s.cfg.ImaginaryUnit = r } }

func WithAllowEmbeddedNewline(v bool) Option {
	return func(s *settings) { s.cfg.AllowEmbeddedNewline = v }
}
func WithIgnoreLeadingWhitespace(v bool) Option {
	return func(s *settings) { s.cfg.IgnoreLeadingWhitespace = v }
}
func WithAllowFloatForInt(v bool) Option {
	return func(s *settings) { s.cfg.AllowFloatForInt = v }
}

// WithByteConverters makes user converter callbacks receive Latin-1
// encoded bytes rather than a Unicode string (python_byte_converters).
func WithByteConverters() Option {
	return func(s *settings) { s.cfg.ByteConversionMode = ByteConversionLatin1BeforeCallback }
}

// WithCByteConverters applies the same Latin-1 encoding on the default
// (no-callback) generic path (c_byte_converters).
func WithCByteConverters() Option {
	return func(s *settings) { s.cfg.ByteConversionMode = ByteConversionDefaultBytesPath }
}

func WithUseCols(cols []int) Option { return func(s *settings) { s.opts.UseCols = cols } }
func WithSkipRows(n int) Option     { return func(s *settings) { s.opts.SkipLines = n } }
func WithMaxRows(n int) Option      { return func(s *settings) { s.opts.MaxRows = n } }
func WithConverters(conv map[int]Converter) Option {
	return func(s *settings) { s.opts.Converters = conv }
}

// WithEncoding names the byte decoding ByteStream applies; ignored for
// file and line sources. See EncodingByName for accepted names.
func WithEncoding(name string) Option { return func(s *settings) { s.encoding = name } }

// ReadText is readtext's single entry point: it reads source under
// dtype's layout and opts, returning the converted rows (plus any
// decoded generic-column objects) or the first error encountered.
func ReadText(source Source, dtype Dtype, opts ...Option) (*RowsResult, error) {
	st := &settings{cfg: DefaultConfig(), opts: ReadOptions{MaxRows: -1}}
	for _, o := range opts {
		o(st)
	}
	if err := st.cfg.validate(); err != nil {
		return nil, err
	}
	if err := dtype.validate(); err != nil {
		return nil, err
	}

	stream, err := buildStream(source, st.encoding)
	if err != nil {
		return nil, err
	}
	defer stream.Close(RestoreNone)

	log := newSessionLogger(context.Background())
	log.start(sourceLabel(source), dtype)

	tok := NewTokenizer(stream, st.cfg)
	result, err := ReadRows(tok, st.cfg, dtype, st.opts, log)
	rows := 0
	if result != nil {
		rows = result.Writer.Rows()
	}
	log.done(rows, err)
	return result, err
}

func buildStream(source Source, encodingName string) (Stream, error) {
	switch source.kind {
	case sourcePath:
		return NewFileStream(source.fs, source.path)
	case sourceLines:
		return NewLineStream(source.lines), nil
	case sourceBytes:
		enc, err := EncodingByName(encodingName)
		if err != nil {
			return nil, err
		}
		return NewByteStream(source.data, enc)
	default:
		return nil, &ArgumentError{Arg: "source", Err: ErrStreamClosed}
	}
}

func sourceLabel(source Source) string {
	switch source.kind {
	case sourcePath:
		return source.path
	case sourceLines:
		return "<lines>"
	default:
		return "<bytes>"
	}
}
