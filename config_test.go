package readtext

import "testing"

func TestConfigValidateRejectsNewlineDelimiter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delimiter = '\n'
	if err := cfg.validate(); err == nil {
		t.Error("expected error for newline delimiter")
	}
}

func TestConfigValidateRejectsCommentCollidingWithDelimiter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Comment = cfg.Delimiter
	if err := cfg.validate(); err == nil {
		t.Error("expected error for comment == delimiter")
	}
}

func TestConfigWhitespaceDelimitedForcesLeadingTrim(t *testing.T) {
	cfg := Config{Delimiter: 0}
	if !cfg.trimLeading() {
		t.Error("whitespace-delimited config should force leading-whitespace trim")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().validate(); err != nil {
		t.Errorf("DefaultConfig() should validate cleanly: %v", err)
	}
}
