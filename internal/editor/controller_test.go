package editor

import (
	"reflect"
	"testing"

	"github.com/cheekybits/is"

	"polysketch/pkg/geometry"
)

func pt(x, y float64) geometry.Point2D {
	return geometry.NewPoint2D(x, y)
}

// commitSquare draws and closes a 50-unit square with its top-left corner at
// (ox, oy). Keep squares more than SnapRadius apart or later placements will
// snap to them.
func commitSquare(t *testing.T, c *Controller, ox, oy float64) {
	t.Helper()
	for _, p := range []geometry.Point2D{
		pt(ox, oy), pt(ox+50, oy), pt(ox+50, oy+50), pt(ox, oy+50),
	} {
		if !c.Commit(p) {
			t.Fatalf("commit of %v rejected", p)
		}
	}
	if !c.Commit(pt(ox+2, oy)) {
		t.Fatal("closing commit rejected")
	}
}

func TestCommitClosesWithinRadius(t *testing.T) {
	is := is.New(t)
	c := New()

	is.True(c.Commit(pt(0, 0)))
	is.True(c.Commit(pt(100, 100)))
	// (4,4) is within 10 units of the first vertex (0,0): close.
	is.True(c.Commit(pt(4, 4)))

	snap := c.Snapshot()
	is.Equal(len(snap.Committed), 1)
	is.Equal(snap.Committed[0], Polygon{pt(0, 0), pt(100, 100)})
	is.Equal(len(snap.Active), 0)
}

func TestCommitClosesSingleVertexPolygon(t *testing.T) {
	// Closing is permissive: polygons shorter than 3 vertices commit too.
	is := is.New(t)
	c := New()

	is.True(c.Commit(pt(0, 0)))
	is.True(c.Commit(pt(4, 4)))

	snap := c.Snapshot()
	is.Equal(len(snap.Committed), 1)
	is.Equal(snap.Committed[0], Polygon{pt(0, 0)})
	is.Equal(len(snap.Active), 0)
}

func TestCommitSnapsToCommittedVertex(t *testing.T) {
	is := is.New(t)
	c := New()
	commitSquare(t, c, 50, 50)

	// (54,53) is 5 units from the committed corner (50,50): the appended
	// point must be the corner's exact coordinates, not (54,53).
	is.True(c.Commit(pt(54, 53)))

	snap := c.Snapshot()
	is.Equal(len(snap.Active), 1)
	is.Equal(snap.Active[0], pt(50, 50))
}

func TestSnapIgnoresActivePolygon(t *testing.T) {
	is := is.New(t)
	c := New()

	// Active polygon has a vertex at (50,50); nothing is committed. A commit
	// 5 units away must be appended verbatim: the active polygon's own
	// vertices are never snap candidates.
	is.True(c.Commit(pt(200, 200)))
	is.True(c.Commit(pt(50, 50)))
	is.True(c.Commit(pt(54, 53)))

	snap := c.Snapshot()
	is.Equal(len(snap.Committed), 0)
	is.Equal(snap.Active, Polygon{pt(200, 200), pt(50, 50), pt(54, 53)})
}

func TestDragIsolation(t *testing.T) {
	is := is.New(t)
	c := New()
	commitSquare(t, c, 0, 0)
	commitSquare(t, c, 200, 200)
	is.True(c.Commit(pt(400, 400)))

	before := c.Snapshot()

	// Grab the second square's (250,250) corner and drag it.
	is.True(c.StartDrag(pt(252, 248)))
	is.True(c.MoveDrag(pt(300, 310)))
	is.True(c.EndDrag())

	after := c.Snapshot()
	is.Equal(after.Committed[1][2], pt(300, 310))

	// Everything except that one vertex is untouched.
	is.Equal(after.Committed[0], before.Committed[0])
	is.Equal(after.Active, before.Active)
	is.Equal(after.Committed[1][0], before.Committed[1][0])
	is.Equal(after.Committed[1][1], before.Committed[1][1])
	is.Equal(after.Committed[1][3], before.Committed[1][3])
}

func TestDragActivePolygonVertex(t *testing.T) {
	is := is.New(t)
	c := New()
	is.True(c.Commit(pt(100, 100)))
	is.True(c.Commit(pt(160, 100)))

	is.True(c.StartDrag(pt(158, 103)))
	snap := c.Snapshot()
	is.NotNil(snap.Drag)
	is.Equal(snap.Drag.Polygon, ActivePolygon)
	is.Equal(snap.Drag.Vertex, 1)

	is.True(c.MoveDrag(pt(180, 120)))
	is.True(c.EndDrag())

	snap = c.Snapshot()
	is.Nil(snap.Drag)
	is.Equal(snap.Active, Polygon{pt(100, 100), pt(180, 120)})
}

func TestDragPrefersCommittedOverActive(t *testing.T) {
	is := is.New(t)
	c := New()
	commitSquare(t, c, 0, 0)
	// Active vertex sits right on top of the committed (50,0) corner.
	is.True(c.Commit(pt(52, 2)))

	is.True(c.StartDrag(pt(51, 1)))
	snap := c.Snapshot()
	is.NotNil(snap.Drag)
	is.Equal(snap.Drag.Polygon, 0)
}

func TestDragStartMissIsNoOp(t *testing.T) {
	is := is.New(t)
	c := New()
	commitSquare(t, c, 0, 0)

	before := c.Snapshot()
	is.True(!c.StartDrag(pt(500, 500)))
	is.True(!c.MoveDrag(pt(510, 510)))
	is.True(!c.EndDrag())
	is.Equal(c.Snapshot(), before)
}

func TestCommitSuppressedWhileDragging(t *testing.T) {
	is := is.New(t)
	c := New()
	commitSquare(t, c, 0, 0)

	is.True(c.StartDrag(pt(1, 1)))
	before := c.Snapshot()
	is.True(!c.Commit(pt(300, 300)))
	is.Equal(c.Snapshot(), before)

	is.True(c.EndDrag())
	is.True(c.Commit(pt(300, 300)))
	is.Equal(len(c.Snapshot().Active), 1)
}

func TestDragInvisibleToHistory(t *testing.T) {
	// Undo after a drag must land in the same state as undo without the
	// drag ever happening.
	script := func(c *Controller) {
		commitSquare(t, c, 0, 0)
		c.Commit(pt(300, 300))
		c.Commit(pt(360, 300))
	}

	plain := New()
	script(plain)
	plain.Undo()

	dragged := New()
	script(dragged)
	dragged.StartDrag(pt(2, 1))
	dragged.MoveDrag(pt(80, 90))
	dragged.MoveDrag(pt(85, 95))
	dragged.EndDrag()
	dragged.Undo()

	if !reflect.DeepEqual(plain.Snapshot(), dragged.Snapshot()) {
		t.Fatalf("undo after drag diverged:\nplain:   %+v\ndragged: %+v",
			plain.Snapshot(), dragged.Snapshot())
	}
}

func TestUndoRemovesLastPlacedPoint(t *testing.T) {
	is := is.New(t)
	c := New()
	is.True(c.Commit(pt(0, 0)))
	is.True(c.Commit(pt(100, 0)))
	is.True(c.Commit(pt(100, 100)))

	is.True(c.Undo())
	is.Equal(c.Snapshot().Active, Polygon{pt(0, 0), pt(100, 0)})

	is.True(c.Undo())
	is.Equal(c.Snapshot().Active, Polygon{pt(0, 0)})

	is.True(c.Undo())
	is.Equal(len(c.Snapshot().Active), 0)

	is.True(!c.Undo())
}

func TestUndoRollsBackClosedPolygon(t *testing.T) {
	is := is.New(t)
	c := New()
	is.True(c.Commit(pt(0, 0)))
	is.True(c.Commit(pt(100, 0)))
	is.True(c.Commit(pt(50, 80)))
	is.True(c.Commit(pt(3, 0))) // close

	is.Equal(len(c.Snapshot().Committed), 1)
	is.Equal(len(c.Snapshot().Active), 0)

	// One undo reopens the polygon as the active one, not committed.
	is.True(c.Undo())
	snap := c.Snapshot()
	is.Equal(len(snap.Committed), 0)
	is.Equal(snap.Active, Polygon{pt(0, 0), pt(100, 0), pt(50, 80)})
}

func TestUndoRedoRoundTrip(t *testing.T) {
	c := New()
	commitSquare(t, c, 0, 0)
	commitSquare(t, c, 200, 0)
	c.Commit(pt(100, 300))

	for i := 0; i < 3; i++ {
		pre := c.Snapshot()
		if !c.Undo() {
			t.Fatalf("undo %d rejected", i)
		}
		if !c.Redo() {
			t.Fatalf("redo %d rejected", i)
		}
		if !reflect.DeepEqual(c.Snapshot(), pre) {
			t.Fatalf("round trip %d: got %+v, want %+v", i, c.Snapshot(), pre)
		}
		// Walk one step deeper for the next round.
		c.Undo()
	}
}

func TestRedoBranchDiscarded(t *testing.T) {
	is := is.New(t)
	c := New()
	is.True(c.Commit(pt(0, 0)))
	is.True(c.Commit(pt(100, 0)))

	is.True(c.Undo())
	is.True(c.CanRedo())

	// A fresh edit abandons the redo-able future.
	is.True(c.Commit(pt(200, 200)))
	is.True(!c.CanRedo())
	is.True(!c.Redo())
	is.Equal(c.Snapshot().Active, Polygon{pt(0, 0), pt(200, 200)})
}

func TestClearResetsEverything(t *testing.T) {
	is := is.New(t)
	c := New()
	commitSquare(t, c, 0, 0)
	is.True(c.Commit(pt(300, 300)))

	is.True(c.Clear())
	snap := c.Snapshot()
	is.Equal(len(snap.Committed), 0)
	is.Equal(len(snap.Active), 0)
	is.Nil(snap.Drag)

	is.True(!c.Undo())
	is.True(!c.Redo())
	is.True(!c.Clear())
}

func TestBoundaryNoOps(t *testing.T) {
	is := is.New(t)
	c := New()

	before := c.Snapshot()
	is.True(!c.Undo())
	is.True(!c.Redo())
	is.Equal(c.Snapshot(), before)

	is.True(c.Commit(pt(0, 0)))
	is.True(!c.Redo()) // already at the top
}

func TestChangeListenerFiresPerAcceptedEvent(t *testing.T) {
	is := is.New(t)
	c := New()

	var fired int
	var last Snapshot
	c.OnChange(func(s Snapshot) {
		fired++
		last = s
	})

	is.True(c.Commit(pt(0, 0)))
	is.Equal(fired, 1)
	is.Equal(last.Active, Polygon{pt(0, 0)})

	is.True(c.Undo())
	is.True(c.Redo())
	is.Equal(fired, 3)

	// Rejected events stay silent.
	fired = 0
	is.True(!c.Redo())
	is.True(!c.EndDrag())
	is.True(!c.MoveDrag(pt(5, 5)))
	is.True(!c.StartDrag(pt(500, 500)))
	is.Equal(fired, 0)
}
