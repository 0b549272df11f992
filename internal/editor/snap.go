package editor

import (
	"polysketch/pkg/geometry"
)

// resolveSnap finds the committed vertex a new point should snap to.
//
// Committed polygons are scanned in draw order; the first polygon with any
// vertex closer than SnapRadius wins, and within it the nearest vertex
// (lowest index on ties) is returned with its exact coordinates. Later
// polygons are not consulted even if they hold a closer vertex: the scan
// order is part of the contract, not an accident.
func resolveSnap(p geometry.Point2D, committed []Polygon) (geometry.Point2D, bool) {
	limit := SnapRadius * SnapRadius
	for _, poly := range committed {
		best := -1
		bestDist := limit
		for i, v := range poly {
			if d := p.DistanceSq(v); d < bestDist {
				best = i
				bestDist = d
			}
		}
		if best >= 0 {
			return poly[best], true
		}
	}
	return geometry.Point2D{}, false
}

// hitVertex returns the first vertex of the polygon closer than SnapRadius to
// p, in vertex order. Unlike resolveSnap this is first-match, not nearest:
// drag targeting takes whichever handle the scan reaches first.
func hitVertex(p geometry.Point2D, poly Polygon) (int, bool) {
	limit := SnapRadius * SnapRadius
	for i, v := range poly {
		if p.DistanceSq(v) < limit {
			return i, true
		}
	}
	return 0, false
}
