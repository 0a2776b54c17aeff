package vista

import (
	"fmt"
	"log/slog"
)

// SetDebugMode enables or disables debug mode. When enabled, every emitted
// event is logged at Info level together with a one-line state summary.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// debugEvent logs ev and the state it left behind.
func (e *Engine) debugEvent(ev Event) {
	attrs := []any{
		slog.String("event", ev.Type.String()),
		slog.String("state", e.Snapshot().String()),
	}
	switch ev.Type {
	case EventRegionHit:
		attrs = append(attrs, slog.String("region", ev.RegionID))
	case EventLaunch:
		attrs = append(attrs, slog.String("app", ev.App))
	}
	e.log.Info("[vista]", attrs...)
}

// String summarizes the snapshot on one line.
func (s Snapshot) String() string {
	sel := "none"
	if s.SelectionOpen {
		switch s.Selection.Kind {
		case SelectionRegion:
			sel = "region:" + s.Selection.Region.ID
		case SelectionAnnotation:
			sel = fmt.Sprintf("annotation:%d/%d", s.Selection.State.Scene, s.Selection.State.Annotation)
		}
	}
	return fmt.Sprintf("viewport %.0fx%.0f | bounds [%.0f,%.0f..%.0f,%.0f] | offset (%.1f,%.1f) | seq %d/%d (%d,%d) | open %s",
		s.Dimensions.Width, s.Dimensions.Height,
		s.Bounds.Left, s.Bounds.Top, s.Bounds.Right, s.Bounds.Bottom,
		s.Offset.X, s.Offset.Y,
		s.Position, s.Total, s.State.Scene, s.State.Annotation,
		sel)
}
