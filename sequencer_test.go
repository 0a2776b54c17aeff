package vista

import (
	"errors"
	"testing"
)

func scenes(sizes ...int) []Scene {
	keys := "abcdefghij"
	out := make([]Scene, len(sizes))
	for i, n := range sizes {
		out[i].Key = string(keys[i])
		for j := 0; j < n; j++ {
			out[i].Annotations = append(out[i].Annotations, Annotation{
				Key: out[i].Key + string(rune('0'+j)),
			})
		}
	}
	return out
}

func mustSequencer(t *testing.T, sc []Scene) *Sequencer {
	t.Helper()
	s, err := NewSequencer(sc)
	if err != nil {
		t.Fatalf("NewSequencer: %v", err)
	}
	return s
}

func TestNewSequencerErrors(t *testing.T) {
	if _, err := NewSequencer(nil); !errors.Is(err, ErrNoScenes) {
		t.Errorf("err = %v, want ErrNoScenes", err)
	}
	if _, err := NewSequencer(scenes(2, 0)); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("err = %v, want ErrEmptyScene", err)
	}
}

func TestSequencerNextCrossesScenesAndWraps(t *testing.T) {
	s := mustSequencer(t, scenes(2, 1))
	s.Next()
	if s.State() != (SequencerState{0, 1}) {
		t.Fatalf("state = %v, want (0,1)", s.State())
	}
	s.Next()
	if s.State() != (SequencerState{1, 0}) {
		t.Fatalf("state = %v, want (1,0)", s.State())
	}
	if !s.IsAtEnd() {
		t.Error("IsAtEnd = false at last annotation")
	}
	s.Next()
	if s.State() != (SequencerState{0, 0}) {
		t.Errorf("state = %v, want wrap to (0,0)", s.State())
	}
	if !s.IsAtStart() || s.IsAtEnd() {
		t.Error("predicates wrong after wrap")
	}
}

func TestSequencerFullCycle(t *testing.T) {
	for _, sizes := range [][]int{{1}, {3}, {2, 1}, {1, 4, 2}, {5, 5, 5, 1}} {
		s := mustSequencer(t, scenes(sizes...))
		seen := make(map[SequencerState]bool)
		for i := 0; i < s.Total(); i++ {
			if seen[s.State()] {
				t.Fatalf("sizes %v: state %v visited twice", sizes, s.State())
			}
			seen[s.State()] = true
			if s.Position() != i+1 {
				t.Fatalf("sizes %v: Position = %d, want %d", sizes, s.Position(), i+1)
			}
			s.Next()
		}
		if s.State() != (SequencerState{}) {
			t.Errorf("sizes %v: after Total() nexts state = %v, want (0,0)", sizes, s.State())
		}
	}
}

func TestSequencerPrev(t *testing.T) {
	s := mustSequencer(t, scenes(2, 3))
	if s.Prev() {
		t.Error("Prev at start should be rejected")
	}
	if s.State() != (SequencerState{}) {
		t.Errorf("Prev at start changed state to %v", s.State())
	}

	s.JumpToScene("b")
	if !s.Prev() {
		t.Fatal("Prev from (1,0) rejected")
	}
	if s.State() != (SequencerState{0, 1}) {
		t.Errorf("state = %v, want last of previous scene (0,1)", s.State())
	}
	s.Prev()
	if s.State() != (SequencerState{0, 0}) {
		t.Errorf("state = %v, want (0,0)", s.State())
	}
}

func TestSequencerPrevUndoesNext(t *testing.T) {
	s := mustSequencer(t, scenes(3, 1, 2))
	for i := 0; i < s.Total()-1; i++ {
		before := s.State()
		s.Next()
		s.Prev()
		if s.State() != before {
			t.Fatalf("Next then Prev from %v landed on %v", before, s.State())
		}
		s.Next()
	}
}

func TestSequencerJumpToScene(t *testing.T) {
	s := mustSequencer(t, scenes(2, 2, 2))
	s.Next()
	if !s.JumpToScene("c") {
		t.Fatal("JumpToScene(c) = false")
	}
	if s.State() != (SequencerState{2, 0}) {
		t.Errorf("state = %v, want (2,0)", s.State())
	}
	if s.JumpToScene("zzz") {
		t.Error("JumpToScene(unknown) = true")
	}
	if s.State() != (SequencerState{2, 0}) {
		t.Errorf("unknown key changed state to %v", s.State())
	}
}

func TestSequencerJumpTo(t *testing.T) {
	s := mustSequencer(t, scenes(2, 3))
	if !s.JumpTo("b", "b2") || s.State() != (SequencerState{1, 2}) {
		t.Errorf("JumpTo(b, b2) -> %v", s.State())
	}
	if s.JumpTo("b", "nope") {
		t.Error("JumpTo with unknown annotation = true")
	}
	if !s.JumpTo("a", "") || s.State() != (SequencerState{0, 0}) {
		t.Errorf("JumpTo(a, \"\") -> %v", s.State())
	}
	if s.Current().Key != "a0" || s.CurrentScene().Key != "a" {
		t.Errorf("Current = %q in %q", s.Current().Key, s.CurrentScene().Key)
	}
}

func TestSequencerSingleAnnotation(t *testing.T) {
	s := mustSequencer(t, scenes(1))
	if !s.IsAtStart() || !s.IsAtEnd() {
		t.Error("single annotation should be both start and end")
	}
	s.Next()
	if s.State() != (SequencerState{}) {
		t.Errorf("state = %v", s.State())
	}
	if s.Prev() {
		t.Error("Prev should be rejected")
	}
}
