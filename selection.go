package vista

// SelectionKind distinguishes what an open Selection refers to.
type SelectionKind uint8

const (
	SelectionRegion     SelectionKind = iota + 1 // a clicked region's card
	SelectionAnnotation                          // an annotation from the sequence
)

// Selection is the card currently open. For SelectionRegion, Scene and
// Region identify the hit region; for SelectionAnnotation, State identifies
// the annotation.
type Selection struct {
	Kind   SelectionKind
	Scene  int
	Region Region
	State  SequencerState
}

// SelectionStore holds zero or one open Selection.
//
// Open replaces, it does not compose with Close: opening while something is
// open swaps the slot and notifies once, with no close notification for the
// replaced selection.
type SelectionStore struct {
	current Selection
	open    bool

	onChange []func(sel Selection, open bool)
}

// Current returns the open selection, if any.
func (s *SelectionStore) Current() (Selection, bool) {
	return s.current, s.open
}

// IsOpen reports whether a selection is open.
func (s *SelectionStore) IsOpen() bool { return s.open }

// OnChange registers fn to run after every Open and after every Close that
// cleared something. open is false for a close.
func (s *SelectionStore) OnChange(fn func(sel Selection, open bool)) {
	s.onChange = append(s.onChange, fn)
}

// Open makes sel the open selection, replacing any previous one.
func (s *SelectionStore) Open(sel Selection) {
	s.current = sel
	s.open = true
	for _, fn := range s.onChange {
		fn(sel, true)
	}
}

// Close clears the open selection. Closing an empty store does nothing.
func (s *SelectionStore) Close() {
	if !s.open {
		return
	}
	prev := s.current
	s.current = Selection{}
	s.open = false
	for _, fn := range s.onChange {
		fn(prev, false)
	}
}
