package vista

// RegionKind tags what a region's card does when activated.
type RegionKind string

const (
	RegionStory  RegionKind = "story"  // card advances the story
	RegionLaunch RegionKind = "launch" // card launches an external app
)

// Target actions carried by a region.
const (
	ActionNext       = "next"       // advance the annotation sequence
	ActionAnnotation = "annotation" // jump to a specific annotation
	ActionLaunch     = "launch"     // launch an external app
)

// Target is what activating a region's card does.
type Target struct {
	Action     string `yaml:"action"`
	Scene      string `yaml:"scene,omitempty"`
	Annotation string `yaml:"annotation,omitempty"`
	App        string `yaml:"app,omitempty"`
}

// Region is a static rectangular hotspot in content-local coordinates.
// Regions are immutable once loaded.
type Region struct {
	ID     string     `yaml:"id"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Kind   RegionKind `yaml:"kind,omitempty"`
	Target Target     `yaml:"target,omitempty"`

	// Title and Body are presentation data for the region's card.
	Title string   `yaml:"title,omitempty"`
	Body  []string `yaml:"body,omitempty"`

	// Payload carries caller data the engine never inspects.
	Payload any `yaml:"-"`
}

// Rect returns the region's rectangle.
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Contains reports whether the content-local point p lies in the region.
// Edges are inclusive.
func (r Region) Contains(p Vec2) bool {
	return r.Rect().Contains(p.X, p.Y)
}

// HitTest returns every region containing p, in declaration order. Overlaps
// are not resolved by area or z-order; callers conventionally take the
// first match. The result is nil when nothing is hit.
func HitTest(p Vec2, regions []Region) []Region {
	var hits []Region
	for _, r := range regions {
		if r.Contains(p) {
			hits = append(hits, r)
		}
	}
	return hits
}

// FirstHit returns the first region in declaration order containing p.
func FirstHit(p Vec2, regions []Region) (Region, bool) {
	for _, r := range regions {
		if r.Contains(p) {
			return r, true
		}
	}
	return Region{}, false
}
