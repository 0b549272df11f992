// Package canvas provides drawing primitives for the editor raster.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"golang.org/x/image/colornames"

	"polysketch/internal/app"
	"polysketch/internal/editor"
	"polysketch/pkg/geometry"
)

const handleRadius = 3.5

var dragHighlight = colornames.Orangered

// draw is the raster generator: it paints the current engine snapshot with
// the current style. w and h are device pixels; engine coordinates are
// widget points, so everything is scaled by the pixel density.
func (c *EditorCanvas) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	scale := 1.0
	if size := c.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}

	snap := c.state.Editor.Snapshot()
	style := c.state.Style()

	for i, poly := range snap.Committed {
		drawCommitted(img, poly, style, scale, dragTargets(snap, i))
	}
	drawActive(img, snap.Active, style, scale, dragTargets(snap, editor.ActivePolygon))

	return img
}

// dragTargets returns the dragged vertex index for the given polygon, or -1.
func dragTargets(snap editor.Snapshot, polygon int) int {
	if snap.Drag != nil && snap.Drag.Polygon == polygon {
		return snap.Drag.Vertex
	}
	return -1
}

// drawCommitted paints a closed polygon: scanline fill, outline, and a
// handle on every vertex.
func drawCommitted(img *image.RGBA, poly editor.Polygon, style app.Style, scale float64, dragged int) {
	pts := scalePoints(poly, scale)
	if len(pts) >= 3 {
		fillPolygon(img, pts, style.FillColor)
	}

	thickness := scaleThickness(style.LineWidth, scale)
	n := len(pts)
	for i := 0; i < n; i++ {
		p1 := pts[i]
		p2 := pts[(i+1)%n]
		drawLine(img, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), style.StrokeColor, thickness)
	}

	drawHandles(img, pts, style.StrokeColor, scale, dragged)
}

// drawActive paints the in-progress polygon: an open polyline, vertex
// handles, and a close-radius ring around the first vertex so the closing
// affordance is visible.
func drawActive(img *image.RGBA, poly editor.Polygon, style app.Style, scale float64, dragged int) {
	pts := scalePoints(poly, scale)
	if len(pts) == 0 {
		return
	}

	thickness := scaleThickness(style.LineWidth, scale)
	for i := 0; i+1 < len(pts); i++ {
		drawLine(img, int(pts[i].X), int(pts[i].Y), int(pts[i+1].X), int(pts[i+1].Y), style.StrokeColor, thickness)
	}

	drawCircle(img, pts[0], editor.CloseRadius*scale, style.StrokeColor, false)
	drawHandles(img, pts, style.StrokeColor, scale, dragged)
}

func drawHandles(img *image.RGBA, pts []geometry.Point2D, col color.RGBA, scale float64, dragged int) {
	r := handleRadius * scale
	for i, p := range pts {
		drawCircle(img, p, r, col, true)
		if i == dragged {
			drawCircle(img, p, r*2, dragHighlight, false)
		}
	}
}

func scalePoints(poly editor.Polygon, scale float64) []geometry.Point2D {
	pts := make([]geometry.Point2D, len(poly))
	for i, p := range poly {
		pts[i] = p.Scale(scale)
	}
	return pts
}

func scaleThickness(lineWidth int, scale float64) int {
	if lineWidth < 1 {
		lineWidth = 1
	}
	t := int(float64(lineWidth) * scale)
	if t < 1 {
		t = 1
	}
	return t
}

// fillPolygon fills a polygon using the scanline algorithm.
func fillPolygon(img *image.RGBA, pts []geometry.Point2D, col color.RGBA) {
	bounds := img.Bounds()
	box := geometry.BoundingBox(pts)

	for y := int(box.Y); y <= int(box.Y+box.Height); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}

		// Find all x intersections with polygon edges at this y
		var xs []float64
		n := len(pts)
		for i := 0; i < n; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%n]
			if (p1.Y <= float64(y) && p2.Y > float64(y)) ||
				(p2.Y <= float64(y) && p1.Y > float64(y)) {
				t := (float64(y) - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)

		// Fill between pairs of intersections
		for i := 0; i+1 < len(xs); i += 2 {
			x1 := int(xs[i])
			x2 := int(xs[i+1])
			for x := x1; x <= x2; x++ {
				if x >= bounds.Min.X && x < bounds.Max.X {
					img.Set(x, y, col)
				}
			}
		}
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := img.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		// Draw thick point
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					img.Set(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawCircle draws a filled or outlined circle centered at p.
func drawCircle(img *image.RGBA, p geometry.Point2D, radius float64, col color.RGBA, filled bool) {
	bounds := img.Bounds()

	minX := int(p.X - radius - 1)
	maxX := int(p.X + radius + 1)
	minY := int(p.Y - radius - 1)
	maxY := int(p.Y + radius + 1)

	r2 := radius * radius
	inner := radius - 1.5
	if inner < 0 {
		inner = 0
	}
	innerR2 := inner * inner

	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) - p.X
			dy := float64(y) - p.Y
			dist2 := dx*dx + dy*dy

			if filled {
				if dist2 <= r2 {
					img.Set(x, y, col)
				}
			} else if dist2 <= r2 && dist2 >= innerR2 {
				img.Set(x, y, col)
			}
		}
	}
}
