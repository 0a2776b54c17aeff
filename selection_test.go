package vista

import "testing"

func TestSelectionOpenReplaces(t *testing.T) {
	var s SelectionStore
	var log []string
	s.OnChange(func(sel Selection, open bool) {
		if open {
			log = append(log, "open:"+sel.Region.ID)
		} else {
			log = append(log, "close:"+sel.Region.ID)
		}
	})

	s.Open(Selection{Kind: SelectionRegion, Region: Region{ID: "r1"}})
	s.Open(Selection{Kind: SelectionRegion, Region: Region{ID: "r2"}})

	cur, ok := s.Current()
	if !ok || cur.Region.ID != "r2" {
		t.Fatalf("Current = %q, %v, want r2", cur.Region.ID, ok)
	}
	if len(log) != 2 || log[0] != "open:r1" || log[1] != "open:r2" {
		t.Errorf("notifications = %v, want [open:r1 open:r2] with no close", log)
	}

	s.Close()
	if s.IsOpen() {
		t.Error("store still open after Close")
	}
	if len(log) != 3 || log[2] != "close:r2" {
		t.Errorf("notifications = %v", log)
	}
}

func TestSelectionCloseEmpty(t *testing.T) {
	var s SelectionStore
	calls := 0
	s.OnChange(func(Selection, bool) { calls++ })
	s.Close()
	if calls != 0 {
		t.Errorf("Close on empty store notified %d times", calls)
	}
	if _, ok := s.Current(); ok {
		t.Error("empty store reports an open selection")
	}
}
