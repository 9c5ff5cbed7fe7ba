package archive

import (
	"testing"
	"time"

	"vms-gateway/internal/domain"
)

func TestTimelineMorningSequence(t *testing.T) {
	seq := domain.ArchiveSequence{
		Start: time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC),
	}
	span := Timeline(seq)
	if span.Start != 0.25 {
		t.Fatalf("start = %v, want 0.25", span.Start)
	}
	if span.End != 0.3125 {
		t.Fatalf("end = %v, want 0.3125", span.End)
	}
}

func TestTimelineDayBounds(t *testing.T) {
	seq := domain.ArchiveSequence{
		Start: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC),
	}
	span := Timeline(seq)
	if span.Start != 0 {
		t.Fatalf("start = %v, want 0", span.Start)
	}
	if span.End <= 0.999 || span.End > 1 {
		t.Fatalf("end = %v, want just under 1", span.End)
	}
}

func TestSpeedRoundTrip(t *testing.T) {
	for _, speed := range []float64{1, 0.25, 0, 4, 0.5} {
		got, err := DecodeSpeed(EncodeSpeed(speed))
		if err != nil {
			t.Fatalf("decode %v: %v", speed, err)
		}
		if got != speed {
			t.Fatalf("round trip %v -> %q -> %v", speed, EncodeSpeed(speed), got)
		}
	}
}

func TestDecodeSpeedRejectsGarbage(t *testing.T) {
	if _, err := DecodeSpeed("fast"); err == nil {
		t.Fatalf("expected error for non-numeric speed")
	}
}
