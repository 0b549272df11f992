// Package editor implements the polygon-editing engine: the geometry model,
// vertex snapping, point placement and closing, drag sessions, and undo/redo.
//
// The engine is single-threaded and event-driven. One Controller owns the one
// mutable State; callers feed it canonical pointer and command events and read
// back immutable snapshots. A multi-threaded host must serialize event
// delivery itself.
package editor

import (
	"polysketch/pkg/geometry"
)

// SnapRadius is the shared distance threshold, in canvas units, for vertex
// snapping, polygon closing, and drag hit-tests.
const SnapRadius = 10.0

// CloseRadius is the distance from the active polygon's first vertex within
// which a commit closes the polygon. It is the same threshold as SnapRadius.
const CloseRadius = SnapRadius

// Polygon is an ordered vertex list. Insertion order defines edge
// connectivity; the closing edge from last to first vertex is implicit.
type Polygon []geometry.Point2D

// clone returns an independent copy of the polygon.
func (p Polygon) clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// withVertex returns a copy of the polygon with vertex i replaced. The
// original is never written: every reader holding the old slice keeps a
// consistent view.
func (p Polygon) withVertex(i int, v geometry.Point2D) Polygon {
	out := p.clone()
	out[i] = v
	return out
}

func clonePolygons(polys []Polygon) []Polygon {
	if polys == nil {
		return nil
	}
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.clone()
	}
	return out
}

// ActivePolygon is the DragSession.Polygon value identifying the in-progress
// polygon rather than a committed one.
const ActivePolygon = -1

// DragSession identifies the vertex currently being relocated. Polygon is an
// index into the committed polygons, or ActivePolygon. At most one session is
// open at a time.
type DragSession struct {
	Polygon int
	Vertex  int
}

// State is the mutable editor state: the committed polygons in draw order,
// the active (in-progress) polygon, and the open drag session, if any.
type State struct {
	Committed []Polygon
	Active    Polygon
	Drag      *DragSession
}

// Snapshot is a read-only deep copy of the editor state, safe to hand to
// renderers and to hold across later edits.
type Snapshot struct {
	Committed []Polygon
	Active    Polygon
	Drag      *DragSession
}

func (s *State) snapshot() Snapshot {
	snap := Snapshot{
		Committed: clonePolygons(s.Committed),
		Active:    s.Active.clone(),
	}
	if s.Drag != nil {
		d := *s.Drag
		snap.Drag = &d
	}
	return snap
}
