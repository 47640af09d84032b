package readtext

import (
	"bufio"
	"io"

	"github.com/spf13/afero"
)

// defaultFS is the filesystem FileStream uses when none is supplied.
// Tests substitute afero.NewMemMapFs() so path-based reads never touch
// the real disk, the way the teacher substitutes a bytes.Reader for its
// io.Reader-based Reader in tests.
var defaultFS afero.Fs = afero.NewOsFs()

const fileStreamBufferRunes = 64 * 1024

// FileStream is a Stream backed by a path opened through an afero.Fs.
// It decodes the file's bytes as UTF-8.
type FileStream struct {
	fs   afero.Fs
	path string

	f         afero.File
	br        *bufio.Reader
	line      int
	lastBuf   []rune
	eof       bool
	pendingCR bool // a lone '\r' left unresolved at the end of the previous buffer
}

// NewFileStream opens path for reading through fs. A nil fs uses the
// real OS filesystem.
func NewFileStream(fs afero.Fs, path string) (*FileStream, error) {
	if fs == nil {
		fs = defaultFS
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, &ArgumentError{Arg: "source", Err: err}
	}
	return &FileStream{
		fs:      fs,
		path:    path,
		f:       f,
		br:      bufio.NewReaderSize(f, fileStreamBufferRunes*4),
		line:    1,
		lastBuf: make([]rune, 0, fileStreamBufferRunes),
	}, nil
}

func (s *FileStream) NextBuffer() ([]rune, BufferState, error) {
	if s.eof {
		return nil, EndOfFile, io.EOF
	}
	buf := s.lastBuf[:0]
	for len(buf) < fileStreamBufferRunes {
		r, _, err := s.br.ReadRune()
		if err != nil {
			if err == io.EOF {
				s.eof = true
				break
			}
			return nil, MayContainNewline, err
		}
		buf = append(buf, r)
	}
	buf, newlines, trailingCR := collapseNewlines(buf, s.pendingCR)
	s.pendingCR = trailingCR
	if trailingCR && s.eof {
		// No further buffer is coming to pair this '\r' with: it's a
		// bare newline in its own right.
		buf = append(buf, '\n')
		newlines++
		s.pendingCR = false
	}
	s.line += newlines
	s.lastBuf = buf
	state := MayContainNewline
	if s.eof {
		state = EndOfFile
	}
	if len(buf) == 0 && s.eof {
		return nil, EndOfFile, io.EOF
	}
	return buf, state, nil
}

func (s *FileStream) LineNumber() int { return s.line }

func (s *FileStream) Close(policy RestorePolicy) error {
	switch policy {
	case RestoreInitialPosition:
		if seeker, ok := s.f.(io.Seeker); ok {
			_, _ = seeker.Seek(0, io.SeekStart)
		}
	case RestoreCurrentPosition, RestoreNone:
		// nothing to rewind
	}
	return s.f.Close()
}
