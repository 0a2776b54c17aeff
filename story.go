package vista

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default tooltip offsets applied when a document omits them.
const (
	DefaultTooltipOffsetX = 40
	DefaultTooltipOffsetY = 30
)

// ErrInvalidStory wraps every validation failure reported by Story.Validate.
var ErrInvalidStory = errors.New("invalid story")

// Tooltip positions an annotation's callout in content-local pixels.
type Tooltip struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

// Annotation is a titled callout inside a scene.
type Annotation struct {
	Key     string     `yaml:"key"`
	Title   string     `yaml:"title"`
	Body    []string   `yaml:"body,omitempty"`
	Kind    RegionKind `yaml:"kind,omitempty"`
	App     string     `yaml:"app,omitempty"`
	Tooltip Tooltip    `yaml:"tooltip"`
	// Anchor is the content-local point the annotation refers to; a focus
	// pan centres the viewport on it.
	Anchor Vec2 `yaml:"anchor"`
}

// Scene is an ordered group of annotations plus the clickable regions shown
// while the scene is active.
type Scene struct {
	Key         string       `yaml:"key"`
	Title       string       `yaml:"title,omitempty"`
	Annotations []Annotation `yaml:"annotations"`
	Regions     []Region     `yaml:"regions,omitempty"`
}

// Story is the static content document: the content surface and its scenes.
type Story struct {
	Content    ContentSize `yaml:"content"`
	Background string      `yaml:"background,omitempty"`
	Scenes     []Scene     `yaml:"scenes"`
}

// ParseStory decodes a YAML (or JSON) story document, applies defaults, and
// validates it.
func ParseStory(data []byte) (*Story, error) {
	var st Story
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse story: %w", err)
	}
	st.applyDefaults(data)
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("parse story: %w", err)
	}
	return &st, nil
}

// LoadStory reads and parses a story document from r.
func LoadStory(r io.Reader) (*Story, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read story: %w", err)
	}
	return ParseStory(data)
}

// LoadStoryFile reads and parses the story document at path.
func LoadStoryFile(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read story: %w", err)
	}
	return ParseStory(data)
}

// applyDefaults fills tooltip offsets that the document left out. Explicit
// zero offsets are kept, so the raw document is consulted for presence.
func (st *Story) applyDefaults(data []byte) {
	var raw struct {
		Scenes []struct {
			Annotations []struct {
				Tooltip map[string]any `yaml:"tooltip"`
			} `yaml:"annotations"`
		} `yaml:"scenes"`
	}
	_ = yaml.Unmarshal(data, &raw)

	for i := range st.Scenes {
		for j := range st.Scenes[i].Annotations {
			var set map[string]any
			if i < len(raw.Scenes) && j < len(raw.Scenes[i].Annotations) {
				set = raw.Scenes[i].Annotations[j].Tooltip
			}
			tt := &st.Scenes[i].Annotations[j].Tooltip
			if _, ok := set["offsetX"]; !ok {
				tt.OffsetX = DefaultTooltipOffsetX
			}
			if _, ok := set["offsetY"]; !ok {
				tt.OffsetY = DefaultTooltipOffsetY
			}
		}
	}
}

// Validate checks the structural invariants the engine relies on.
func (st *Story) Validate() error {
	if st.Content.Width <= 0 || st.Content.Height <= 0 {
		return fmt.Errorf("%w: content size %vx%v must be positive",
			ErrInvalidStory, st.Content.Width, st.Content.Height)
	}
	if len(st.Scenes) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidStory, ErrNoScenes)
	}
	keys := make(map[string]bool, len(st.Scenes))
	for i, sc := range st.Scenes {
		if sc.Key == "" {
			return fmt.Errorf("%w: scene %d has no key", ErrInvalidStory, i)
		}
		if keys[sc.Key] {
			return fmt.Errorf("%w: duplicate scene key %q", ErrInvalidStory, sc.Key)
		}
		keys[sc.Key] = true
		if len(sc.Annotations) == 0 {
			return fmt.Errorf("%w: %w: %q", ErrInvalidStory, ErrEmptyScene, sc.Key)
		}
		for _, a := range sc.Annotations {
			if err := validateAnnotation(sc.Key, a); err != nil {
				return err
			}
		}
		ids := make(map[string]bool, len(sc.Regions))
		for _, r := range sc.Regions {
			if err := validateRegion(sc.Key, r, ids); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateAnnotation(scene string, a Annotation) error {
	switch a.Kind {
	case "", RegionStory:
	case RegionLaunch:
		if a.App == "" {
			return fmt.Errorf("%w: scene %q: launch annotation %q has no app", ErrInvalidStory, scene, a.Key)
		}
	default:
		return fmt.Errorf("%w: scene %q: annotation %q has unknown kind %q", ErrInvalidStory, scene, a.Key, a.Kind)
	}
	return nil
}

func validateRegion(scene string, r Region, seen map[string]bool) error {
	if r.ID == "" {
		return fmt.Errorf("%w: scene %q has a region without id", ErrInvalidStory, scene)
	}
	if seen[r.ID] {
		return fmt.Errorf("%w: scene %q: duplicate region id %q", ErrInvalidStory, scene, r.ID)
	}
	seen[r.ID] = true
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: region %q has negative size", ErrInvalidStory, r.ID)
	}
	switch r.Kind {
	case "", RegionStory, RegionLaunch:
	default:
		return fmt.Errorf("%w: region %q has unknown kind %q", ErrInvalidStory, r.ID, r.Kind)
	}
	if (r.Kind == RegionLaunch || r.Target.Action == ActionLaunch) && r.Target.App == "" {
		return fmt.Errorf("%w: launch region %q has no app", ErrInvalidStory, r.ID)
	}
	switch r.Target.Action {
	case "", ActionNext, ActionLaunch:
	case ActionAnnotation:
		if r.Target.Scene == "" {
			return fmt.Errorf("%w: region %q targets an annotation without a scene", ErrInvalidStory, r.ID)
		}
	default:
		return fmt.Errorf("%w: region %q has unknown action %q", ErrInvalidStory, r.ID, r.Target.Action)
	}
	return nil
}
