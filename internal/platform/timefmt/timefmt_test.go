package timefmt

import (
	"testing"
	"time"
)

func TestISO(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 3, 1, 14, 30, 0, 500000000, loc)
	if got := ISO(ts); got != "2024-03-01T12:30:00.5Z" {
		t.Fatalf("ISO: got %q", got)
	}
	if _, err := time.Parse(time.RFC3339Nano, ISO(time.Now())); err != nil {
		t.Fatalf("ISO output not parseable: %v", err)
	}
}

func TestISOPtr(t *testing.T) {
	if got := ISOPtr(nil); got != nil {
		t.Fatalf("nil timestamp should stay nil, got %q", *got)
	}
	zero := time.Time{}
	if got := ISOPtr(&zero); got != nil {
		t.Fatalf("zero timestamp should stay nil, got %q", *got)
	}
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := ISOPtr(&ts)
	if got == nil || *got != "2024-01-02T03:04:05Z" {
		t.Fatalf("ISOPtr: got %v", got)
	}
}
