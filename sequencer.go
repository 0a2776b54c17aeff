package vista

import (
	"errors"
	"fmt"
)

var (
	// ErrNoScenes is returned when a sequencer is built over no scenes.
	ErrNoScenes = errors.New("vista: no scenes")
	// ErrEmptyScene is returned when a scene has no annotations.
	ErrEmptyScene = errors.New("vista: scene has no annotations")
)

// SequencerState is a position in the annotation sequence: a scene index and
// an annotation index within that scene.
type SequencerState struct {
	Scene      int
	Annotation int
}

// Sequencer steps through the annotations of an ordered list of scenes.
// Its state is always a valid pair of indices.
type Sequencer struct {
	scenes []Scene
	state  SequencerState
}

// NewSequencer creates a sequencer positioned at (0,0). Every scene must
// have at least one annotation.
func NewSequencer(scenes []Scene) (*Sequencer, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}
	for i := range scenes {
		if len(scenes[i].Annotations) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyScene, scenes[i].Key)
		}
	}
	return &Sequencer{scenes: scenes}, nil
}

// State returns the current position.
func (s *Sequencer) State() SequencerState { return s.state }

// Scenes returns the scene list. The returned slice MUST NOT be mutated.
func (s *Sequencer) Scenes() []Scene { return s.scenes }

// CurrentScene returns the active scene.
func (s *Sequencer) CurrentScene() Scene { return s.scenes[s.state.Scene] }

// Current returns the active annotation.
func (s *Sequencer) Current() Annotation {
	return s.scenes[s.state.Scene].Annotations[s.state.Annotation]
}

// IsAtStart reports whether the sequence is at its first annotation.
func (s *Sequencer) IsAtStart() bool {
	return s.state.Scene == 0 && s.state.Annotation == 0
}

// IsAtEnd reports whether the sequence is at the last annotation of the last
// scene.
func (s *Sequencer) IsAtEnd() bool {
	last := len(s.scenes) - 1
	return s.state.Scene == last &&
		s.state.Annotation == len(s.scenes[last].Annotations)-1
}

// Next advances one annotation, crossing into the next scene after the last
// annotation of a scene and wrapping to (0,0) after the very last one.
func (s *Sequencer) Next() {
	switch {
	case s.IsAtEnd():
		s.state = SequencerState{}
	case s.state.Annotation == len(s.scenes[s.state.Scene].Annotations)-1:
		s.state = SequencerState{Scene: s.state.Scene + 1}
	default:
		s.state.Annotation++
	}
}

// Prev steps back one annotation. At the start it is rejected: the state is
// unchanged and Prev returns false.
func (s *Sequencer) Prev() bool {
	switch {
	case s.IsAtStart():
		return false
	case s.state.Annotation == 0:
		prev := s.state.Scene - 1
		s.state = SequencerState{Scene: prev, Annotation: len(s.scenes[prev].Annotations) - 1}
	default:
		s.state.Annotation--
	}
	return true
}

// JumpToScene moves to the first annotation of the scene with the given key.
// An unknown key leaves the state unchanged and returns false.
func (s *Sequencer) JumpToScene(key string) bool {
	i := s.sceneIndex(key)
	if i < 0 {
		return false
	}
	s.state = SequencerState{Scene: i}
	return true
}

// JumpTo moves to a specific annotation. An empty annotationKey selects the
// scene's first annotation. Unknown keys leave the state unchanged.
func (s *Sequencer) JumpTo(sceneKey, annotationKey string) bool {
	i := s.sceneIndex(sceneKey)
	if i < 0 {
		return false
	}
	if annotationKey == "" {
		s.state = SequencerState{Scene: i}
		return true
	}
	for j, a := range s.scenes[i].Annotations {
		if a.Key == annotationKey {
			s.state = SequencerState{Scene: i, Annotation: j}
			return true
		}
	}
	return false
}

// Total returns the number of annotations across all scenes.
func (s *Sequencer) Total() int {
	n := 0
	for i := range s.scenes {
		n += len(s.scenes[i].Annotations)
	}
	return n
}

// Position returns the 1-based ordinal of the current annotation across all
// scenes, suitable for "3 / 7" style counters.
func (s *Sequencer) Position() int {
	n := s.state.Annotation + 1
	for i := 0; i < s.state.Scene; i++ {
		n += len(s.scenes[i].Annotations)
	}
	return n
}

func (s *Sequencer) sceneIndex(key string) int {
	for i := range s.scenes {
		if s.scenes[i].Key == key {
			return i
		}
	}
	return -1
}
