package store

import (
	"errors"
	"testing"
	"time"

	"github.com/Sylviettee/fjordgard/internal/weather"
)

func snapAt(ts time.Time, temp float64) weather.Snapshot {
	return weather.Snapshot{Timestamp: ts, Temperature: temp}
}

func TestLatestAndNotFound(t *testing.T) {
	s := NewMemoryStore(0, 0)

	if _, err := s.Latest("Oslo"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	now := time.Now().UTC()
	s.Save("Oslo", snapAt(now.Add(-time.Hour), 1.0))
	s.Save("Oslo", snapAt(now, 2.0))

	latest, err := s.Latest("Oslo")
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.Temperature != 2.0 {
		t.Fatalf("expected most recent snapshot, got %+v", latest)
	}
}

func TestRetentionByCount(t *testing.T) {
	s := NewMemoryStore(2, 0)
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		s.Save("Oslo", snapAt(now.Add(time.Duration(i)*time.Minute), float64(i)))
	}

	snaps, err := s.Range("Oslo", now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(snaps) != 2 || snaps[0].Temperature != 3 || snaps[1].Temperature != 4 {
		t.Fatalf("unexpected retained snapshots: %+v", snaps)
	}
}

func TestRetentionByAge(t *testing.T) {
	s := NewMemoryStore(0, time.Hour)
	now := time.Now().UTC()

	s.Save("Oslo", snapAt(now.Add(-2*time.Hour), 1.0))
	s.Save("Oslo", snapAt(now, 2.0))

	snaps, err := s.Range("Oslo", now.Add(-24*time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(snaps) != 1 || snaps[0].Temperature != 2.0 {
		t.Fatalf("expected only the fresh snapshot, got %+v", snaps)
	}
}

func TestRangeBounds(t *testing.T) {
	s := NewMemoryStore(0, 0)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		s.Save("Oslo", snapAt(base.Add(time.Duration(i)*time.Hour), float64(i)))
	}

	snaps, err := s.Range("Oslo", base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots in range, got %d", len(snaps))
	}

	if _, err := s.Range("Oslo", base.Add(10*time.Hour), base.Add(11*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty range, got %v", err)
	}
}
