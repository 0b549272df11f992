package geometry

import (
	"math"
	"testing"
)

var unitSquare = []Point2D{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

func TestPointInPolygon(t *testing.T) {
	cases := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"center", Point2D{5, 5}, true},
		{"outside_right", Point2D{15, 5}, false},
		{"outside_above", Point2D{5, -3}, false},
		{"near_edge_inside", Point2D{9.9, 5}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PointInPolygon(c.p, unitSquare); got != c.want {
				t.Fatalf("PointInPolygon(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Point2D{0, 0}, []Point2D{{0, 0}, {1, 1}}) {
		t.Fatal("two-vertex polygon has no interior")
	}
}

func TestArea(t *testing.T) {
	if got := Area(unitSquare); math.Abs(got-100) > 1e-9 {
		t.Fatalf("Area = %v, want 100", got)
	}
	// Winding direction must not affect the unsigned area.
	reversed := []Point2D{{0, 10}, {10, 10}, {10, 0}, {0, 0}}
	if got := Area(reversed); math.Abs(got-100) > 1e-9 {
		t.Fatalf("Area reversed = %v, want 100", got)
	}
	if SignedArea(reversed) > 0 {
		t.Fatal("clockwise polygon should have negative signed area")
	}
}

func TestPerimeter(t *testing.T) {
	if got := Perimeter(unitSquare); math.Abs(got-40) > 1e-9 {
		t.Fatalf("Perimeter = %v, want 40", got)
	}
	if got := Perimeter([]Point2D{{1, 2}}); got != 0 {
		t.Fatalf("Perimeter of single point = %v, want 0", got)
	}
}

func TestCentroid(t *testing.T) {
	got := Centroid(unitSquare)
	if math.Abs(got.X-5) > 1e-9 || math.Abs(got.Y-5) > 1e-9 {
		t.Fatalf("Centroid = %v, want (5,5)", got)
	}
}

func TestBoundingBox(t *testing.T) {
	r := BoundingBox([]Point2D{{3, 7}, {-2, 4}, {5, -1}})
	want := Rect{X: -2, Y: -1, Width: 7, Height: 8}
	if r != want {
		t.Fatalf("BoundingBox = %+v, want %+v", r, want)
	}
	if !r.Contains(Point2D{0, 0}) {
		t.Fatal("box should contain origin")
	}
}
