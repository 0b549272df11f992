package editor

import (
	"polysketch/pkg/geometry"
)

// Controller owns the editor State and applies canonical pointer and command
// events to it. Every method reports whether the state changed, so callers
// can tell an accepted mutation from a defined no-op; the change listener
// fires exactly once per accepted event, after the transition completes.
type Controller struct {
	state    State
	history  *history
	onChange func(Snapshot)
}

// New creates a controller with empty geometry and empty history.
func New() *Controller {
	return &Controller{history: newHistory()}
}

// OnChange registers the listener invoked with a fresh snapshot after every
// state-changing event. Pass nil to disable notifications.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.onChange = fn
}

// Snapshot returns a read-only deep copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return c.state.snapshot()
}

// CanUndo reports whether an Undo would change state.
func (c *Controller) CanUndo() bool { return c.history.canUndo() }

// CanRedo reports whether a Redo would change state.
func (c *Controller) CanRedo() bool { return c.history.canRedo() }

// Commit places a point at p, or closes the active polygon.
//
// A commit within CloseRadius of the active polygon's first vertex moves the
// whole polygon to the committed list and starts a fresh active polygon.
// Otherwise the point is appended to the active polygon, snapped to the
// nearest committed vertex when one is within SnapRadius. The active
// polygon's own vertices are never snap candidates.
//
// Commits are suppressed while a drag session is open.
func (c *Controller) Commit(p geometry.Point2D) bool {
	if c.state.Drag != nil {
		return false
	}

	if len(c.state.Active) > 0 && p.DistanceSq(c.state.Active[0]) < CloseRadius*CloseRadius {
		c.state.Committed = append(c.state.Committed, c.state.Active)
		c.state.Active = nil
	} else if v, ok := resolveSnap(p, c.state.Committed); ok {
		c.state.Active = append(c.state.Active, v)
	} else {
		c.state.Active = append(c.state.Active, p)
	}

	c.history.record(c.state.Committed, c.state.Active)
	c.notify()
	return true
}

// StartDrag opens a drag session for the first vertex within SnapRadius of p,
// scanning committed polygons in draw order and vertex order, then the active
// polygon. Reports false when nothing is hit or a session is already open.
func (c *Controller) StartDrag(p geometry.Point2D) bool {
	if c.state.Drag != nil {
		return false
	}
	for pi, poly := range c.state.Committed {
		if vi, ok := hitVertex(p, poly); ok {
			c.state.Drag = &DragSession{Polygon: pi, Vertex: vi}
			c.notify()
			return true
		}
	}
	if vi, ok := hitVertex(p, c.state.Active); ok {
		c.state.Drag = &DragSession{Polygon: ActivePolygon, Vertex: vi}
		c.notify()
		return true
	}
	return false
}

// MoveDrag relocates the dragged vertex to p. The move is immediate and
// unrecorded: no snapping, and nothing is written to history. The targeted
// polygon is replaced copy-on-write so previously taken snapshots stay
// intact. Reports false when no session is open or the target no longer
// exists (a command event may have reshaped the geometry mid-drag).
func (c *Controller) MoveDrag(p geometry.Point2D) bool {
	d := c.state.Drag
	if d == nil {
		return false
	}
	if d.Polygon == ActivePolygon {
		if d.Vertex >= len(c.state.Active) {
			return false
		}
		c.state.Active = c.state.Active.withVertex(d.Vertex, p)
	} else {
		if d.Polygon >= len(c.state.Committed) || d.Vertex >= len(c.state.Committed[d.Polygon]) {
			return false
		}
		committed := make([]Polygon, len(c.state.Committed))
		copy(committed, c.state.Committed)
		committed[d.Polygon] = committed[d.Polygon].withVertex(d.Vertex, p)
		c.state.Committed = committed
	}
	c.notify()
	return true
}

// EndDrag discards the drag session. Vertex positions keep whatever the last
// move set; nothing is recorded. Reports false when no session is open.
func (c *Controller) EndDrag() bool {
	if c.state.Drag == nil {
		return false
	}
	c.state.Drag = nil
	c.notify()
	return true
}

// Undo restores the previous recorded geometry, rolling back one placed
// point or one closed polygon. A no-op at the baseline.
func (c *Controller) Undo() bool {
	e, ok := c.history.undo()
	if !ok {
		return false
	}
	c.restore(e)
	return true
}

// Redo restores the next recorded geometry. A no-op at the newest entry.
func (c *Controller) Redo() bool {
	e, ok := c.history.redo()
	if !ok {
		return false
	}
	c.restore(e)
	return true
}

func (c *Controller) restore(e historyEntry) {
	c.state.Committed = e.committed
	c.state.Active = e.active
	c.notify()
}

// Clear empties the geometry and the history. Reports false when everything
// is already empty.
func (c *Controller) Clear() bool {
	if len(c.state.Committed) == 0 && len(c.state.Active) == 0 && c.state.Drag == nil &&
		!c.history.canUndo() && !c.history.canRedo() {
		return false
	}
	c.state = State{}
	c.history.reset()
	c.notify()
	return true
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.state.snapshot())
	}
}
