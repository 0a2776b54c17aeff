package host

import (
	"fmt"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/vista"
)

// Card enter animation: the card slides in from cardSlide pixels left of its
// resting place while fading in.
const (
	cardSlide    = 50
	cardDuration = 1.6 // seconds

	cardWidth   = 320
	cardPadding = 10
	glyphW      = 6 // ebitenutil debug font cell
	glyphH      = 16
)

// cardAnim drives the open card's slide and fade tweens.
type cardAnim struct {
	slide *gween.Tween
	fade  *gween.Tween

	dx    float32
	alpha float32
}

func newCardAnim() *cardAnim {
	return &cardAnim{alpha: 1}
}

// start restarts the enter animation.
func (c *cardAnim) start() {
	c.slide = gween.New(-cardSlide, 0, cardDuration, ease.OutCubic)
	c.fade = gween.New(0, 1, cardDuration, ease.OutQuad)
	c.dx = -cardSlide
	c.alpha = 0
}

// update advances both tweens by dt seconds.
func (c *cardAnim) update(dt float32) {
	if c.slide != nil {
		v, done := c.slide.Update(dt)
		c.dx = v
		if done {
			c.slide = nil
		}
	}
	if c.fade != nil {
		v, done := c.fade.Update(dt)
		c.alpha = v
		if done {
			c.fade = nil
		}
	}
}

func (c *cardAnim) running() bool { return c.slide != nil || c.fade != nil }

// cardContent is the text of an open card.
type cardContent struct {
	Title string
	Body  []string
	// Anchor is the content-local point the card is placed next to.
	Anchor vista.Vec2
	Launch bool
}

// contentFor resolves the card text for sel against the story.
func contentFor(st *vista.Story, sel vista.Selection) (cardContent, bool) {
	switch sel.Kind {
	case vista.SelectionRegion:
		r := sel.Region
		title := r.Title
		if title == "" {
			title = r.ID
		}
		return cardContent{
			Title:  title,
			Body:   r.Body,
			Anchor: vista.Vec2{X: r.X + r.Width, Y: r.Y},
			Launch: r.Kind == vista.RegionLaunch || r.Target.Action == vista.ActionLaunch,
		}, true
	case vista.SelectionAnnotation:
		s := sel.State
		if s.Scene < 0 || s.Scene >= len(st.Scenes) {
			return cardContent{}, false
		}
		anns := st.Scenes[s.Scene].Annotations
		if s.Annotation < 0 || s.Annotation >= len(anns) {
			return cardContent{}, false
		}
		a := anns[s.Annotation]
		return cardContent{
			Title:  a.Title,
			Body:   a.Body,
			Anchor: tooltipPoint(a.Tooltip),
			Launch: a.Kind == vista.RegionLaunch,
		}, true
	}
	return cardContent{}, false
}

// tooltipPoint is where an annotation's callout sits in content space.
func tooltipPoint(t vista.Tooltip) vista.Vec2 {
	return vista.Vec2{X: t.X + t.OffsetX, Y: t.Y + t.OffsetY}
}

// wrapLines word-wraps paragraphs to at most cols characters per line.
// Words longer than cols are split.
func wrapLines(paragraphs []string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var out []string
	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var line strings.Builder
		for _, w := range words {
			for len(w) > cols {
				if line.Len() > 0 {
					out = append(out, line.String())
					line.Reset()
				}
				out = append(out, w[:cols])
				w = w[cols:]
			}
			switch {
			case line.Len() == 0:
				line.WriteString(w)
			case line.Len()+1+len(w) <= cols:
				line.WriteByte(' ')
				line.WriteString(w)
			default:
				out = append(out, line.String())
				line.Reset()
				line.WriteString(w)
			}
		}
		if line.Len() > 0 {
			out = append(out, line.String())
		}
	}
	return out
}

// cardLines lays out the card text. The last line is the action hint.
func cardLines(c cardContent) []string {
	cols := (cardWidth - 2*cardPadding) / glyphW
	lines := wrapLines([]string{c.Title}, cols)
	if len(c.Body) > 0 {
		lines = append(lines, "")
		lines = append(lines, wrapLines(c.Body, cols)...)
	}
	hint := "[Enter] next  [Esc] close"
	if c.Launch {
		hint = "[Enter] launch  [Esc] close"
	}
	return append(lines, "", hint)
}

// cardHeight is the pixel height of a card with n lines.
func cardHeight(n int) int {
	return n*glyphH + 2*cardPadding
}

// placeCard positions a w x h card to the right of anchor (screen space),
// flipping to the left when it would overflow and clamping it on screen.
func placeCard(anchor vista.Vec2, w, h float64, screen vista.Dimensions) vista.Vec2 {
	x := anchor.X + cardPadding
	if x+w > screen.Width {
		x = anchor.X - cardPadding - w
	}
	y := anchor.Y
	x = min(max(x, 0), max(screen.Width-w, 0))
	y = min(max(y, 0), max(screen.Height-h, 0))
	return vista.Vec2{X: x, Y: y}
}

// statusLine is the footer: scene title, position and key hints.
func statusLine(snap vista.Snapshot, st *vista.Story) string {
	title := ""
	if snap.State.Scene < len(st.Scenes) {
		sc := st.Scenes[snap.State.Scene]
		title = sc.Title
		if title == "" {
			title = sc.Key
		}
	}
	return fmt.Sprintf("%s  %d/%d  [<-/->] step  [Tab] regions  [Q] quit",
		title, snap.Position, snap.Total)
}
