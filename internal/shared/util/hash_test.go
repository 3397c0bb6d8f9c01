package util

import "testing"

func TestHashContactKey(t *testing.T) {
	email := "Ada@Example.com"
	got := HashContactKey(email)
	if got != HashContactKey("  ada@example.com ") {
		t.Fatalf("expected hash to ignore case and whitespace")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
