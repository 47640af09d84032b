package readtext

import "testing"

func TestConvertComplex128(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		in   string
		want complex128
	}{
		{"1+2j", complex(1, 2)},
		{"3j", complex(0, 3)},
		{"5", complex(5, 0)},
		{"(1+2j)", complex(1, 2)},
		{"-1-2j", complex(-1, -2)},
		{"(3)", complex(3, 0)},
	}
	for _, tt := range tests {
		got, err := ConvertComplex128([]rune(tt.in), cfg)
		if err != nil {
			t.Errorf("ConvertComplex128(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ConvertComplex128(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertComplex128Invalid(t *testing.T) {
	cfg := DefaultConfig()
	tests := []string{"1+2", "(1+2j", "1+2j)", "j"}
	for _, in := range tests {
		if _, err := ConvertComplex128([]rune(in), cfg); err == nil {
			t.Errorf("ConvertComplex128(%q) expected error", in)
		}
	}
}

func TestConvertComplex128CustomImaginaryUnit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImaginaryUnit = 'i'
	got, err := ConvertComplex128([]rune("1+2i"), cfg)
	if err != nil {
		t.Fatalf("ConvertComplex128: %v", err)
	}
	if got != complex(1, 2) {
		t.Errorf("got %v, want 1+2i", got)
	}
}
