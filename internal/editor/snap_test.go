package editor

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestResolveSnapNearestInPolygon(t *testing.T) {
	is := is.New(t)
	poly := Polygon{pt(0, 0), pt(9, 0), pt(100, 100)}

	// (6,0) is 6 from vertex 0 and 3 from vertex 1: nearest wins.
	v, ok := resolveSnap(pt(6, 0), []Polygon{poly})
	is.True(ok)
	is.Equal(v, pt(9, 0))
}

func TestResolveSnapTieLowestIndex(t *testing.T) {
	is := is.New(t)
	poly := Polygon{pt(0, 0), pt(10, 0)}

	// (5,0) is exactly 5 from both vertices: the lower index wins.
	v, ok := resolveSnap(pt(5, 0), []Polygon{poly})
	is.True(ok)
	is.Equal(v, pt(0, 0))
}

func TestResolveSnapFirstPolygonWins(t *testing.T) {
	is := is.New(t)
	far := Polygon{pt(9, 0)}  // distance 9 from the probe
	near := Polygon{pt(1, 0)} // distance 1, but scanned second

	// Snapping is nearest-within-first-matching-polygon, not globally
	// nearest: the second polygon is never consulted.
	v, ok := resolveSnap(pt(0, 0), []Polygon{far, near})
	is.True(ok)
	is.Equal(v, pt(9, 0))
}

func TestResolveSnapRadiusIsStrict(t *testing.T) {
	is := is.New(t)
	poly := Polygon{pt(10, 0)}

	_, ok := resolveSnap(pt(0, 0), []Polygon{poly}) // distance exactly 10
	is.True(!ok)

	v, ok := resolveSnap(pt(0.5, 0), []Polygon{poly})
	is.True(ok)
	is.Equal(v, pt(10, 0))
}

func TestResolveSnapNoCommitted(t *testing.T) {
	is := is.New(t)
	_, ok := resolveSnap(pt(0, 0), nil)
	is.True(!ok)
	_, ok = resolveSnap(pt(0, 0), []Polygon{{}})
	is.True(!ok)
}

func TestHitVertexFirstMatch(t *testing.T) {
	is := is.New(t)
	// Vertex 1 is closer, but vertex 0 is already within radius and is
	// scanned first. Drag targeting is first-match by contract.
	poly := Polygon{pt(8, 0), pt(1, 0)}

	vi, ok := hitVertex(pt(0, 0), poly)
	is.True(ok)
	is.Equal(vi, 0)

	_, ok = hitVertex(pt(50, 50), poly)
	is.True(!ok)
}
