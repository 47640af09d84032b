package readtext

import (
	"bytes"
	"strings"
	"testing"
)

func TestCollapseNewlines(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		want       string
		newline    int
		trailingCR bool
	}{
		{"lf only", "a\nb\n", "a\nb\n", 2, false},
		{"crlf", "a\r\nb\r\n", "a\nb\n", 2, false},
		{"lfcr", "a\n\rb\n\r", "a\nb\n", 2, false},
		// A bare '\r' at the very end of the buffer is left unresolved:
		// the caller doesn't yet know whether the next buffer starts
		// with '\n' (completing a split CRLF pair) or not.
		{"bare cr", "a\rb\r", "a\nb", 1, true},
		{"no newline", "abc", "abc", 0, false},
		{"mixed", "a\r\nb\rc\n\rd", "a\nb\nc\nd", 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, n, trailingCR := collapseNewlines([]rune(tt.in), false)
			if string(out) != tt.want {
				t.Errorf("collapseNewlines(%q) = %q, want %q", tt.in, string(out), tt.want)
			}
			if n != tt.newline {
				t.Errorf("collapseNewlines(%q) newlines = %d, want %d", tt.in, n, tt.newline)
			}
			if trailingCR != tt.trailingCR {
				t.Errorf("collapseNewlines(%q) trailingCR = %v, want %v", tt.in, trailingCR, tt.trailingCR)
			}
		})
	}
}

func TestCollapseNewlinesPendingCRCompletesCRLFAcrossBoundary(t *testing.T) {
	// "a\r" | "\nb" split across two buffers: the CRLF pair straddles
	// the boundary and must still collapse to exactly one newline.
	first, n1, pending := collapseNewlines([]rune("a\r"), false)
	if string(first) != "a" || n1 != 0 || !pending {
		t.Fatalf("first chunk = %q, newlines=%d, pending=%v", first, n1, pending)
	}
	second, n2, pending2 := collapseNewlines([]rune("\nb"), pending)
	if string(second) != "\nb" || n2 != 1 || pending2 {
		t.Fatalf("second chunk = %q, newlines=%d, pending=%v", second, n2, pending2)
	}
}

func TestCollapseNewlinesPendingCRNotFollowedByLF(t *testing.T) {
	// "a\r" | "b" split across two buffers: the '\r' was a bare newline
	// in its own right, unrelated to what follows.
	first, _, pending := collapseNewlines([]rune("a\r"), false)
	if string(first) != "a" || !pending {
		t.Fatalf("first chunk = %q, pending=%v", first, pending)
	}
	second, n2, pending2 := collapseNewlines([]rune("b"), pending)
	if string(second) != "\nb" || n2 != 1 || pending2 {
		t.Fatalf("second chunk = %q, newlines=%d, pending=%v", second, n2, pending2)
	}
}

func TestByteStreamCRLFSplitAcrossBufferBoundary(t *testing.T) {
	n := byteStreamBufferRunes
	filler := bytes.Repeat([]byte("a"), n-1)
	data := append(append(filler, '\r', '\n'), []byte("X\n")...)

	s, err := NewByteStream(data, nil)
	if err != nil {
		t.Fatalf("NewByteStream: %v", err)
	}
	first, _, err := s.NextBuffer()
	if err != nil {
		t.Fatalf("first NextBuffer: %v", err)
	}
	if string(first) != string(bytes.Repeat([]byte("a"), n-1)) {
		t.Fatalf("first buffer should hold exactly the filler, unterminated (CR deferred)")
	}
	second, _, err := s.NextBuffer()
	if err != nil {
		t.Fatalf("second NextBuffer: %v", err)
	}
	got := string(first) + string(second)
	want := string(bytes.Repeat([]byte("a"), n-1)) + "\nX\n"
	if got != want {
		t.Errorf("CRLF split across a buffer boundary collapsed wrong:\n got %d newlines\nwant %d newlines",
			strings.Count(got, "\n"), strings.Count(want, "\n"))
	}
}

func TestLineStreamAppendsTrailingNewline(t *testing.T) {
	s := NewLineStream([]string{"1,2,3"})
	buf, state, err := s.NextBuffer()
	if err != nil {
		t.Fatalf("NextBuffer: %v", err)
	}
	if string(buf) != "1,2,3\n" {
		t.Errorf("got %q, want trailing newline appended", string(buf))
	}
	if state != EndOfFile {
		t.Errorf("state = %v, want EndOfFile for last line", state)
	}
	if _, _, err := s.NextBuffer(); err == nil {
		t.Error("expected io.EOF after exhausting lines")
	}
}

func TestLineStreamLineNumberAdvances(t *testing.T) {
	s := NewLineStream([]string{"a", "b", "c"})
	for i := 0; i < 3; i++ {
		if _, _, err := s.NextBuffer(); err != nil {
			t.Fatalf("NextBuffer %d: %v", i, err)
		}
	}
	if s.LineNumber() != 4 {
		t.Errorf("LineNumber = %d, want 4", s.LineNumber())
	}
}

func TestByteStreamLatin1Default(t *testing.T) {
	s, err := NewByteStream([]byte{0xE9, 'a'}, nil) // 0xE9 = Latin-1 'é'
	if err != nil {
		t.Fatalf("NewByteStream: %v", err)
	}
	buf, _, err := s.NextBuffer()
	if err != nil {
		t.Fatalf("NextBuffer: %v", err)
	}
	if len(buf) != 2 || buf[0] != 0xE9 || buf[1] != 'a' {
		t.Errorf("got %v, want [0xE9 'a']", buf)
	}
}

func TestEncodingByNameUnknown(t *testing.T) {
	if _, err := EncodingByName("made-up-encoding"); err == nil {
		t.Error("expected error for unknown encoding name")
	}
}
