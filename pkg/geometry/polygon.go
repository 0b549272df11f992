package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PointInPolygon tests if a point is inside a polygon using ray casting.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Check if ray from p going right intersects edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}

// Perimeter returns the total edge length of the closed polygon.
func Perimeter(polygon []Point2D) float64 {
	n := len(polygon)
	if n < 2 {
		return 0
	}
	lengths := make([]float64, n)
	for i := 0; i < n; i++ {
		lengths[i] = polygon[i].Distance(polygon[(i+1)%n])
	}
	return floats.Sum(lengths)
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counter-clockwise winding, negative for clockwise.
func SignedArea(polygon []Point2D) float64 {
	n := len(polygon)
	if n < 3 {
		return 0
	}
	terms := make([]float64, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		terms[i] = polygon[i].X*polygon[j].Y - polygon[j].X*polygon[i].Y
	}
	return floats.Sum(terms) / 2
}

// Area returns the unsigned area of the polygon.
func Area(polygon []Point2D) float64 {
	return math.Abs(SignedArea(polygon))
}

// Centroid computes the centroid (average position) of a set of points.
func Centroid(points []Point2D) Point2D {
	if len(points) == 0 {
		return Point2D{}
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	n := float64(len(points))
	return Point2D{X: floats.Sum(xs) / n, Y: floats.Sum(ys) / n}
}
