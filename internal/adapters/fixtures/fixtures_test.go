package fixtures

import (
	"context"
	"testing"
	"time"

	"vms-gateway/internal/domain"
)

func TestSequencesFollowRequestedDay(t *testing.T) {
	s := New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	seqs, err := s.ListSequences(context.Background(), "cam-entrance", day)
	if err != nil {
		t.Fatalf("list sequences: %v", err)
	}
	if len(seqs) != 2 {
		t.Fatalf("sequences = %d, want 2", len(seqs))
	}
	if seqs[0].Start.Hour() != 6 || seqs[0].End.Hour() != 7 || seqs[0].End.Minute() != 30 {
		t.Fatalf("first sequence = %v..%v, want 06:00..07:30", seqs[0].Start, seqs[0].End)
	}
	if !seqs[0].Start.Truncate(24 * time.Hour).Equal(day) {
		t.Fatalf("sequence day = %v, want %v", seqs[0].Start, day)
	}
}

func TestSessionClockAdvancesWithSpeed(t *testing.T) {
	s := New()
	at := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	sid, err := s.StartSession(context.Background(), "cam-entrance", at, domain.DirectionForward)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if _, err := s.Frame(context.Background(), sid, 4); err != nil {
		t.Fatalf("frame: %v", err)
	}
	got, err := s.CurrentTime(context.Background(), sid)
	if err != nil {
		t.Fatalf("current time: %v", err)
	}
	if want := at.Add(4 * time.Second); !got.Equal(want) {
		t.Fatalf("clock = %v, want %v", got, want)
	}

	// speed 0 freezes
	if _, err := s.Frame(context.Background(), sid, 0); err != nil {
		t.Fatalf("frame: %v", err)
	}
	got, _ = s.CurrentTime(context.Background(), sid)
	if want := at.Add(4 * time.Second); !got.Equal(want) {
		t.Fatalf("speed-0 frame must not advance: %v", got)
	}
}

func TestStopToleratesUnknownSession(t *testing.T) {
	s := New()
	if err := s.StopSession(context.Background(), "never-started"); err != nil {
		t.Fatalf("stop of unknown session: %v", err)
	}
}

func TestUnknownCameraRefused(t *testing.T) {
	s := New()
	if _, err := s.StartSession(context.Background(), "cam-bogus", time.Now(), domain.DirectionForward); err == nil {
		t.Fatalf("unknown camera must refuse")
	}
	if _, _, err := s.Snapshot(context.Background(), "cam-bogus"); err == nil {
		t.Fatalf("unknown camera must refuse")
	}
}
