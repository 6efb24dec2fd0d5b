package ingestion

import "testing"

func TestContentHashIsDeterministic(t *testing.T) {
	a := ContentHash([]byte("same content"))
	b := ContentHash([]byte("same content"))
	if a != b {
		t.Fatalf("identical content hashed differently: %q vs %q", a, b)
	}

	c := ContentHash([]byte("other content"))
	if a == c {
		t.Fatalf("different content produced identical hash")
	}
}

func TestContentHashIgnoresFileName(t *testing.T) {
	// The hash is a function of bytes only; there is no file name input by
	// construction. Guard the digest shape instead: SHA-256 base64 is 44
	// characters.
	if got := len(ContentHash([]byte("x"))); got != 44 {
		t.Fatalf("expected 44-character digest, got %d", got)
	}
}
