package state

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewStoreZeroed(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()

	if snap.Running {
		t.Error("new store should not be running")
	}
	if snap.FrameCount != 0 || snap.Version != 0 {
		t.Errorf("new store frame=%d version=%d, want 0, 0",
			snap.FrameCount, snap.Version)
	}
	if s.SessionID() == uuid.Nil {
		t.Error("session ID should be set")
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	s := NewStore()

	s.Update(func(r *Record) {
		r.Running = true
		r.LineCount = 1
		r.CursorLine = 2
		r.CursorCol = 5
	})
	s.Publish()

	snap := s.Snapshot()
	if !snap.Running || snap.CursorLine != 2 || snap.CursorCol != 5 {
		t.Errorf("snapshot = %+v", snap.Record)
	}
	if snap.Version != 1 {
		t.Errorf("Version = %d, want 1", snap.Version)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()

	s.Update(func(r *Record) { r.CursorCol = 9 })

	if snap.CursorCol != 0 {
		t.Error("snapshot should not see later writes")
	}
}

func TestPublishIncrements(t *testing.T) {
	s := NewStore()
	for i := uint64(1); i <= 3; i++ {
		if v := s.Publish(); v != i {
			t.Errorf("Publish() = %d, want %d", v, i)
		}
	}
	if s.Version() != 3 {
		t.Errorf("Version() = %d, want 3", s.Version())
	}
}
