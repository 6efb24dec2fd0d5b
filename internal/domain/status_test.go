package domain

import "testing"

func TestMapStatusCodeCoversEveryKnownStatus(t *testing.T) {
	cases := map[string]string{
		"Approved": StatusCodeApproved,
		"Failed":   StatusCodeRejected,
		"Rejected": StatusCodeRejected,
		"Finished": StatusCodeDone,
		"Done":     StatusCodeDone,
	}

	for status, want := range cases {
		got, err := MapStatusCode(status)
		if err != nil {
			t.Fatalf("MapStatusCode(%q) returned error: %v", status, err)
		}
		if got != want {
			t.Fatalf("MapStatusCode(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestMapStatusCodeIsCaseInsensitive(t *testing.T) {
	for _, status := range []string{"approved", "APPROVED", "ApPrOvEd"} {
		got, err := MapStatusCode(status)
		if err != nil {
			t.Fatalf("MapStatusCode(%q) returned error: %v", status, err)
		}
		if got != StatusCodeApproved {
			t.Fatalf("MapStatusCode(%q) = %q, want %q", status, got, StatusCodeApproved)
		}
	}
}

func TestMapStatusCodeRejectsUnknownStatus(t *testing.T) {
	if _, err := MapStatusCode("Pending"); err == nil {
		t.Fatalf("expected error for unmapped status")
	}
}

func TestKnownStatus(t *testing.T) {
	if !KnownStatus("done") {
		t.Fatalf("expected done to be a known status")
	}
	if KnownStatus("Cancelled") {
		t.Fatalf("did not expect Cancelled to be a known status")
	}
}
