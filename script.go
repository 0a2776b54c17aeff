package vista

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ScriptFrame is the simulated time between two script steps.
const ScriptFrame = time.Second / 60

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action     string  `yaml:"action"`
	Label      string  `yaml:"label,omitempty"`
	X          float64 `yaml:"x,omitempty"`
	Y          float64 `yaml:"y,omitempty"`
	FromX      float64 `yaml:"fromX,omitempty"`
	FromY      float64 `yaml:"fromY,omitempty"`
	ToX        float64 `yaml:"toX,omitempty"`
	ToY        float64 `yaml:"toY,omitempty"`
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	Frames     int     `yaml:"frames,omitempty"`
	Ms         int     `yaml:"ms,omitempty"`
	Scene      string  `yaml:"scene,omitempty"`
	Annotation string  `yaml:"annotation,omitempty"`
}

var scriptActions = map[string]bool{
	"snapshot": true, "resize": true, "press": true, "move": true,
	"release": true, "click": true, "drag": true, "next": true,
	"prev": true, "jump": true, "close": true, "activate": true,
	"open": true, "wait": true,
}

// Script is a recorded sequence of input events replayed against an Engine
// with a simulated clock, one frame per step.
type Script struct {
	steps []scriptStep
}

// Checkpoint is the engine state captured by a "snapshot" step.
type Checkpoint struct {
	Label    string
	Snapshot Snapshot
}

// LoadScript parses a YAML or JSON script of the form
// {"steps": [{"action": "drag", "fromX": 500, ...}, ...]}.
func LoadScript(data []byte) (*Script, error) {
	var doc struct {
		Steps []scriptStep `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range doc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// Run replays the script against e starting at clock now. Every step is
// followed by one simulated frame (an Engine.Update). It returns the
// captured checkpoints and the final simulated time.
func (s *Script) Run(e *Engine, now time.Time) ([]Checkpoint, time.Time) {
	var checkpoints []Checkpoint
	frame := func() {
		now = now.Add(ScriptFrame)
		e.Update(now)
	}
	e.Update(now)

	for _, st := range s.steps {
		switch st.Action {
		case "snapshot":
			checkpoints = append(checkpoints, Checkpoint{Label: st.Label, Snapshot: e.Snapshot()})
		case "resize":
			e.Resize(st.Width, st.Height, now)
		case "press":
			e.PointerDown(Vec2{st.X, st.Y})
		case "move":
			e.PointerMove(Vec2{st.X, st.Y})
		case "release":
			e.PointerUp(Vec2{st.X, st.Y})
		case "click":
			e.PointerDown(Vec2{st.X, st.Y})
			frame()
			e.PointerUp(Vec2{st.X, st.Y})
		case "drag":
			s.drag(e, st, frame)
		case "next":
			e.Next()
		case "prev":
			e.Prev()
		case "jump":
			if st.Annotation != "" {
				e.JumpTo(st.Scene, st.Annotation)
			} else {
				e.JumpToScene(st.Scene)
			}
		case "close":
			e.Close()
		case "activate":
			e.Activate()
		case "open":
			e.OpenCurrent()
		case "wait":
			for elapsed := time.Duration(0); elapsed < time.Duration(st.Ms)*time.Millisecond; elapsed += ScriptFrame {
				frame()
			}
			for i := 1; i < st.Frames; i++ {
				frame()
			}
		}
		frame()
	}
	return checkpoints, now
}

// drag presses at (fromX, fromY), moves through frames-2 linearly
// interpolated points, and releases at (toX, toY).
func (s *Script) drag(e *Engine, st scriptStep, frame func()) {
	frames := st.Frames
	if frames < 2 {
		frames = 2
	}
	e.PointerDown(Vec2{st.FromX, st.FromY})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		frame()
		t := float64(i) / float64(steps+1)
		e.PointerMove(Vec2{
			X: st.FromX + (st.ToX-st.FromX)*t,
			Y: st.FromY + (st.ToY-st.FromY)*t,
		})
	}
	frame()
	e.PointerUp(Vec2{st.ToX, st.ToY})
}
