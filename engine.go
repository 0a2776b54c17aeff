package vista

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	maxFrameStep        = 0.25
)

// EngineConfig configures a new Engine. Zero values select defaults.
type EngineConfig struct {
	// Viewport is the initial viewport size, applied without debounce.
	Viewport Dimensions
	// ResizeQuiet is the resize debounce period. Defaults to
	// DefaultResizeQuiet; a negative value disables debouncing.
	ResizeQuiet time.Duration
	// DragDeadZone is the pointer travel in pixels beyond which a press
	// counts as a drag instead of a click. Defaults to 4; a negative value
	// means any movement is a drag.
	DragDeadZone float64
	// Zoom scales the content surface. Defaults to 1.
	Zoom float64
	// FocusDuration, when positive, pans to centre each newly sequenced
	// annotation's anchor over that many seconds.
	FocusDuration float32
	// FocusEase is the easing used for focus pans. Defaults to ease.OutQuad.
	FocusEase ease.TweenFunc
	// Logger receives debug logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// pointerState tracks the single pointer gesture.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
}

// Engine wires the viewport, drag tracker, hit tester, sequencer and
// selection store into one event-driven state machine. All methods must be
// called from a single goroutine (the host's update loop).
type Engine struct {
	story     *Story
	viewport  *Viewport
	tracker   *DragTracker
	seq       *Sequencer
	selection SelectionStore

	handlers eventRegistry
	store    EventStore
	log      *slog.Logger
	debug    bool

	pointer       pointerState
	deadZone      float64
	focusDuration float32
	focusEase     ease.TweenFunc
	lastUpdate    time.Time
}

// NewEngine creates an Engine over a validated story.
func NewEngine(story *Story, cfg EngineConfig) (*Engine, error) {
	if story == nil {
		return nil, fmt.Errorf("new engine: %w: nil story", ErrInvalidStory)
	}
	if err := story.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	seq, err := NewSequencer(story.Scenes)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	quiet := cfg.ResizeQuiet
	if quiet == 0 {
		quiet = DefaultResizeQuiet
	}
	deadZone := cfg.DragDeadZone
	if deadZone == 0 {
		deadZone = defaultDragDeadZone
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	focusEase := cfg.FocusEase
	if focusEase == nil {
		focusEase = ease.OutQuad
	}

	vp := NewViewport(story.Content, cfg.Viewport, quiet)
	if cfg.Zoom > 0 {
		vp.SetZoom(cfg.Zoom)
	}

	e := &Engine{
		story:         story,
		viewport:      vp,
		tracker:       NewDragTracker(vp.Bounds()),
		seq:           seq,
		log:           logger,
		deadZone:      deadZone,
		focusDuration: cfg.FocusDuration,
		focusEase:     focusEase,
	}

	// Bounds flow from the viewport into the tracker; offset changes and
	// selection changes flow out as events.
	vp.OnBoundsChange(e.tracker.SetBounds)
	e.tracker.OnOffsetChange(func(off Vec2) {
		e.emit(Event{Type: EventOffset, Offset: off, Bounds: e.tracker.Bounds()})
	})
	e.selection.OnChange(func(sel Selection, open bool) {
		t := EventClose
		if open {
			t = EventOpen
		}
		e.emit(Event{Type: t, Selection: sel, State: e.seq.State()})
	})
	return e, nil
}

// SetLogger replaces the engine logger.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.log = l
	}
}

// Story returns the loaded story.
func (e *Engine) Story() *Story { return e.story }

// Viewport returns the viewport geometry component.
func (e *Engine) Viewport() *Viewport { return e.viewport }

// Tracker returns the drag/offset tracker.
func (e *Engine) Tracker() *DragTracker { return e.tracker }

// Sequencer returns the annotation sequencer.
func (e *Engine) Sequencer() *Sequencer { return e.seq }

// Selection returns the open selection, if any.
func (e *Engine) Selection() (Selection, bool) { return e.selection.Current() }

// --- Resize ---

// Resize records a raw viewport resize signal. The new size is applied by a
// later Update once the debounce quiet period has elapsed.
func (e *Engine) Resize(width, height float64, now time.Time) {
	e.viewport.Resize(width, height, now)
}

// Update advances time-driven state: the resize debounce and any animated
// pan. Call it once per frame.
func (e *Engine) Update(now time.Time) {
	if e.viewport.Update(now) {
		d := e.viewport.Dimensions()
		e.log.Debug("viewport resized", "width", d.Width, "height", d.Height,
			"bounds", e.viewport.Bounds())
		e.emit(Event{Type: EventResize, Dimensions: d, Bounds: e.viewport.Bounds(),
			Offset: e.tracker.Offset()})
	}
	if !e.lastUpdate.IsZero() {
		dt := now.Sub(e.lastUpdate).Seconds()
		e.tracker.Advance(float32(math.Min(math.Max(dt, 0), maxFrameStep)))
	}
	e.lastUpdate = now
}

// --- Coordinates ---

// ScreenToContent converts a viewport point to un-offset content-local
// coordinates.
func (e *Engine) ScreenToContent(p Vec2) Vec2 {
	off := e.tracker.Offset()
	z := e.viewport.Zoom()
	return Vec2{(p.X - off.X) / z, (p.Y - off.Y) / z}
}

// ContentToScreen converts a content-local point to viewport coordinates.
func (e *Engine) ContentToScreen(p Vec2) Vec2 {
	off := e.tracker.Offset()
	z := e.viewport.Zoom()
	return Vec2{p.X*z + off.X, p.Y*z + off.Y}
}

// --- Pointer ---

// PointerDown starts a gesture at the viewport point p.
func (e *Engine) PointerDown(p Vec2) {
	ps := &e.pointer
	if ps.down {
		return
	}
	ps.down = true
	ps.startX, ps.startY = p.X, p.Y
	ps.lastX, ps.lastY = p.X, p.Y
	ps.dragging = false
	e.tracker.BeginDrag(p)
}

// PointerMove updates the gesture. The offset follows the pointer from the
// first pixel; the dead zone only decides whether the release is a click.
func (e *Engine) PointerMove(p Vec2) {
	ps := &e.pointer
	if !ps.down || (p.X == ps.lastX && p.Y == ps.lastY) {
		return
	}
	e.tracker.DragTo(p)
	if !ps.dragging {
		dx := p.X - ps.startX
		dy := p.Y - ps.startY
		if math.Sqrt(dx*dx+dy*dy) > e.deadZone {
			ps.dragging = true
			e.emit(Event{Type: EventDragStart, Point: Vec2{ps.startX, ps.startY},
				Offset: e.tracker.Offset()})
		}
	}
	ps.lastX, ps.lastY = p.X, p.Y
}

// PointerUp ends the gesture. A release that never left the dead zone is
// treated as a click at p.
func (e *Engine) PointerUp(p Vec2) {
	ps := &e.pointer
	if !ps.down {
		return
	}
	e.PointerMove(p)
	off := e.tracker.EndDrag()
	dragging := ps.dragging
	*ps = pointerState{}

	if dragging {
		e.emit(Event{Type: EventDragEnd, Offset: off})
		return
	}
	e.Click(p)
}

// Click hit-tests the viewport point p against the active scene's regions
// and opens the first match. It reports whether a region was hit; a miss
// leaves the selection unchanged.
func (e *Engine) Click(p Vec2) bool {
	local := e.ScreenToContent(p)
	sceneIdx := e.seq.State().Scene
	r, ok := FirstHit(local, e.seq.CurrentScene().Regions)
	if !ok {
		e.log.Debug("click missed", "x", local.X, "y", local.Y)
		return false
	}
	e.log.Debug("region hit", "region", r.ID, "x", local.X, "y", local.Y)
	e.emit(Event{Type: EventRegionHit, Point: local, RegionID: r.ID, State: e.seq.State()})
	e.selection.Open(Selection{Kind: SelectionRegion, Scene: sceneIdx, Region: r})
	return true
}

// --- Sequencing ---

// OpenCurrent opens the sequencer's current annotation card.
func (e *Engine) OpenCurrent() {
	e.selection.Open(Selection{Kind: SelectionAnnotation, State: e.seq.State()})
	e.focus()
}

// Next advances the sequence (wrapping at the end) and opens the new
// annotation.
func (e *Engine) Next() {
	e.seq.Next()
	e.sequenced()
}

// Prev steps the sequence back and opens the new annotation. At the start
// nothing changes and Prev returns false.
func (e *Engine) Prev() bool {
	if !e.seq.Prev() {
		return false
	}
	e.sequenced()
	return true
}

// JumpToScene moves to the first annotation of the named scene. An unknown
// key changes nothing and returns false.
func (e *Engine) JumpToScene(key string) bool {
	if !e.seq.JumpToScene(key) {
		e.log.Debug("scene not found", "scene", key)
		return false
	}
	e.sequenced()
	return true
}

// JumpTo moves to a specific annotation. Unknown keys change nothing.
func (e *Engine) JumpTo(sceneKey, annotationKey string) bool {
	if !e.seq.JumpTo(sceneKey, annotationKey) {
		e.log.Debug("annotation not found", "scene", sceneKey, "annotation", annotationKey)
		return false
	}
	e.sequenced()
	return true
}

func (e *Engine) sequenced() {
	st := e.seq.State()
	e.log.Debug("sequence moved", "scene", st.Scene, "annotation", st.Annotation,
		"key", e.seq.Current().Key)
	e.emit(Event{Type: EventSequence, State: st})
	e.OpenCurrent()
}

// focus pans so the current annotation's anchor sits at the viewport
// center, when focus pans are enabled.
func (e *Engine) focus() {
	if e.focusDuration <= 0 || e.pointer.down {
		return
	}
	anchor := e.seq.Current().Anchor
	z := e.viewport.Zoom()
	c := e.viewport.Dimensions().Center()
	e.tracker.PanTo(Vec2{c.X - anchor.X*z, c.Y - anchor.Y*z}, e.focusDuration, e.focusEase)
}

// --- Selection ---

// Close clears the open card.
func (e *Engine) Close() {
	e.selection.Close()
}

// Activate performs the open card's primary action: story cards advance the
// sequence, launch cards emit EventLaunch, and regions targeting an
// annotation jump to it. It reports whether anything happened.
func (e *Engine) Activate() bool {
	sel, ok := e.selection.Current()
	if !ok {
		return false
	}
	switch sel.Kind {
	case SelectionRegion:
		r := sel.Region
		switch {
		case r.Kind == RegionLaunch || r.Target.Action == ActionLaunch:
			e.launch(r.Target.App, r.ID)
		case r.Target.Action == ActionAnnotation:
			return e.JumpTo(r.Target.Scene, r.Target.Annotation)
		default:
			e.Next()
		}
	case SelectionAnnotation:
		a := e.seq.Current()
		if a.Kind == RegionLaunch {
			e.launch(a.App, "")
		} else {
			e.Next()
		}
	}
	return true
}

func (e *Engine) launch(app, regionID string) {
	e.log.Info("launch requested", "app", app, "region", regionID)
	sel, _ := e.selection.Current()
	e.emit(Event{Type: EventLaunch, App: app, RegionID: regionID, Selection: sel,
		State: e.seq.State()})
}

// --- Reload ---

// Reload replaces the story. The sequencer stays on the same scene key when
// it still exists, otherwise it restarts at (0,0). The open selection is
// closed and the current offset is re-clamped to the new content size.
func (e *Engine) Reload(story *Story) error {
	if story == nil {
		return fmt.Errorf("reload: %w: nil story", ErrInvalidStory)
	}
	if err := story.Validate(); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	seq, err := NewSequencer(story.Scenes)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	prev := e.seq.CurrentScene().Key
	prevAnn := e.seq.Current().Key
	if !seq.JumpTo(prev, prevAnn) {
		seq.JumpToScene(prev)
	}

	e.selection.Close()
	e.story = story
	e.seq = seq
	e.viewport.SetContentSize(story.Content)
	e.log.Info("story reloaded", "scenes", len(story.Scenes), "scene", seq.CurrentScene().Key)
	e.emit(Event{Type: EventReload, State: seq.State(), Bounds: e.viewport.Bounds(),
		Offset: e.tracker.Offset()})
	return nil
}

// --- Snapshot ---

// Snapshot is the engine state the presentation layer renders.
type Snapshot struct {
	Dimensions    Dimensions
	Bounds        Bounds
	Offset        Vec2
	Zoom          float64
	State         SequencerState
	AtStart       bool
	AtEnd         bool
	Position      int
	Total         int
	Selection     Selection
	SelectionOpen bool
	Dragging      bool
}

// Snapshot returns the current presentation state.
func (e *Engine) Snapshot() Snapshot {
	sel, open := e.selection.Current()
	return Snapshot{
		Dimensions:    e.viewport.Dimensions(),
		Bounds:        e.viewport.Bounds(),
		Offset:        e.tracker.Offset(),
		Zoom:          e.viewport.Zoom(),
		State:         e.seq.State(),
		AtStart:       e.seq.IsAtStart(),
		AtEnd:         e.seq.IsAtEnd(),
		Position:      e.seq.Position(),
		Total:         e.seq.Total(),
		Selection:     sel,
		SelectionOpen: open,
		Dragging:      e.pointer.dragging,
	}
}
