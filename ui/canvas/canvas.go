// Package canvas provides the interactive polygon-editing canvas.
//
// The widget is the boundary between Fyne and the editing engine: it
// normalizes tap, drag, and hover events into the engine's canonical pointer
// events, and repaints from read-only engine snapshots whenever the
// application state reports a change. All editing rules live in the engine;
// the canvas never mutates geometry itself.
package canvas

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"polysketch/internal/app"
	"polysketch/pkg/geometry"
)

// EditorCanvas displays the sketch and feeds pointer input to the editor.
type EditorCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	// dragging tracks the Fyne drag gesture, not the engine session: a
	// gesture that misses every vertex handle still produces Dragged events,
	// which the engine then rejects one by one.
	dragging bool

	onHover    func(p geometry.Point2D)
	onHoverEnd func()
}

var _ fyne.Tappable = (*EditorCanvas)(nil)
var _ fyne.Draggable = (*EditorCanvas)(nil)
var _ desktop.Hoverable = (*EditorCanvas)(nil)

// NewEditorCanvas creates the canvas bound to the application state.
func NewEditorCanvas(state *app.State) *EditorCanvas {
	c := &EditorCanvas{state: state}
	c.raster = fynecanvas.NewRaster(c.draw)
	c.ExtendBaseWidget(c)

	state.On(app.EventGeometryChanged, func(interface{}) { c.raster.Refresh() })
	state.On(app.EventStyleChanged, func(interface{}) { c.raster.Refresh() })

	return c
}

// SetHoverHandler registers callbacks for pointer hover and hover end.
func (c *EditorCanvas) SetHoverHandler(onHover func(p geometry.Point2D), onHoverEnd func()) {
	c.onHover = onHover
	c.onHoverEnd = onHoverEnd
}

func (c *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func (c *EditorCanvas) MinSize() fyne.Size {
	return fyne.NewSize(480, 360)
}

// Tapped places a point or closes the active polygon.
func (c *EditorCanvas) Tapped(ev *fyne.PointEvent) {
	c.state.Editor.Commit(toPoint(ev.Position))
}

// Dragged relocates a vertex handle. The first event of a gesture opens the
// engine drag session at the gesture's origin (current position minus the
// accumulated delta); every event, including the first, moves the vertex.
func (c *EditorCanvas) Dragged(ev *fyne.DragEvent) {
	if !c.dragging {
		c.dragging = true
		origin := fyne.NewPos(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY)
		c.state.Editor.StartDrag(toPoint(origin))
	}
	c.state.Editor.MoveDrag(toPoint(ev.Position))
}

// DragEnd releases the vertex.
func (c *EditorCanvas) DragEnd() {
	c.dragging = false
	c.state.Editor.EndDrag()
}

func (c *EditorCanvas) MouseIn(ev *desktop.MouseEvent) {
	if c.onHover != nil {
		c.onHover(toPoint(ev.Position))
	}
}

func (c *EditorCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if c.onHover != nil {
		c.onHover(toPoint(ev.Position))
	}
}

func (c *EditorCanvas) MouseOut() {
	if c.onHoverEnd != nil {
		c.onHoverEnd()
	}
}

func toPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}
