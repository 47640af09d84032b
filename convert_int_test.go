package readtext

import "testing"

func TestConvertIntBasic(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		in      string
		bitSize int
		want    int64
	}{
		{"42", 64, 42},
		{"-42", 64, -42},
		{"  7  ", 32, 7},
		{"+5", 8, 5},
	}
	for _, tt := range tests {
		got, err := ConvertInt([]rune(tt.in), tt.bitSize, cfg)
		if err != nil {
			t.Errorf("ConvertInt(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ConvertInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConvertIntOverflow(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := ConvertInt([]rune("300"), 8, cfg); err == nil {
		t.Error("expected overflow error for 300 as int8")
	}
	if _, err := ConvertInt([]rune("9223372036854775808"), 64, cfg); err == nil {
		t.Error("expected overflow error for MaxInt64+1")
	}
	if _, err := ConvertInt([]rune("-9223372036854775809"), 64, cfg); err == nil {
		t.Error("expected overflow error for MinInt64-1")
	}
}

func TestConvertIntBoundaryExact(t *testing.T) {
	cfg := DefaultConfig()
	got, err := ConvertInt([]rune("127"), 8, cfg)
	if err != nil || got != 127 {
		t.Errorf("ConvertInt(127, int8) = %d, %v", got, err)
	}
	got, err = ConvertInt([]rune("-128"), 8, cfg)
	if err != nil || got != -128 {
		t.Errorf("ConvertInt(-128, int8) = %d, %v", got, err)
	}
}

func TestConvertUintRejectsMinus(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := ConvertUint([]rune("-1"), 64, cfg); err == nil {
		t.Error("expected error converting -1 to uint")
	}
}

func TestConvertIntNoDigits(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := ConvertInt([]rune("   "), 64, cfg); err == nil {
		t.Error("expected ErrNoDigits for blank field")
	}
	if _, err := ConvertInt([]rune("12x"), 64, cfg); err == nil {
		t.Error("expected error for trailing garbage")
	}
}

func TestConvertIntAllowFloatForInt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowFloatForInt = true
	got, err := ConvertInt([]rune("3.9"), 64, cfg)
	if err != nil {
		t.Fatalf("ConvertInt(3.9) with AllowFloatForInt: %v", err)
	}
	if got != 3 {
		t.Errorf("got %d, want 3 (truncated)", got)
	}
}
