package readtext

import "testing"

func TestConvertByteString(t *testing.T) {
	dst := make([]byte, 5)
	if err := ConvertByteString([]rune("ab"), dst); err != nil {
		t.Fatalf("ConvertByteString: %v", err)
	}
	want := []byte{'a', 'b', 0, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestConvertByteStringTruncates(t *testing.T) {
	dst := make([]byte, 2)
	if err := ConvertByteString([]rune("abcdef"), dst); err != nil {
		t.Fatalf("ConvertByteString: %v", err)
	}
	if string(dst) != "ab" {
		t.Errorf("dst = %q, want %q", dst, "ab")
	}
}

func TestConvertByteStringRejectsWideRune(t *testing.T) {
	dst := make([]byte, 2)
	if err := ConvertByteString([]rune("ሴ"), dst); err == nil {
		t.Error("expected ErrValueTooWide for rune above 255")
	}
}

func TestConvertWideString(t *testing.T) {
	dst := make([]byte, 8) // 2 codepoints
	if err := ConvertWideString([]rune("hi"), dst, false); err != nil {
		t.Fatalf("ConvertWideString: %v", err)
	}
	if dst[0] != 'h' || dst[4] != 'i' {
		t.Errorf("dst = %v, want codepoints h,i at offsets 0,4", dst)
	}
}

func TestPutIntSwapped(t *testing.T) {
	dst := make([]byte, 4)
	putIntSwapped(dst, 0x01020304, 32, false)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("little-endian dst = %v, want %v", dst, want)
		}
	}
	putIntSwapped(dst, 0x01020304, 32, true)
	want = []byte{0x01, 0x02, 0x03, 0x04}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("swapped dst = %v, want %v", dst, want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {5, 8}, {16, 16}, {17, 32},
	}
	for _, tt := range tests {
		if got := nextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
