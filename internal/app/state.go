// Package app provides application lifecycle management, state, and events.
package app

import (
	"image/color"
	"sync"

	"polysketch/internal/editor"

	"golang.org/x/image/colornames"
)

// Style configures how the canvas paints polygons. The editing engine never
// interprets it; it is handed through to the renderer as-is.
type Style struct {
	FillColor   color.RGBA
	StrokeColor color.RGBA
	LineWidth   int
}

// DefaultStyle returns the startup render style.
func DefaultStyle() Style {
	return Style{
		FillColor:   colornames.Lightsteelblue,
		StrokeColor: colornames.Midnightblue,
		LineWidth:   2,
	}
}

// EventType identifies different application events.
type EventType int

const (
	EventGeometryChanged EventType = iota
	EventStyleChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the one editing engine, the render
// style, and the event-listener registry that drives UI refreshes.
type State struct {
	mu sync.RWMutex

	// Editor owns all polygon geometry. Event delivery is serialized on the
	// UI goroutine; State only guards its own fields.
	Editor *editor.Controller

	style    Style
	modified bool

	listeners map[EventType][]EventListener
}

// NewState creates the application state with an empty editor.
func NewState() *State {
	s := &State{
		Editor:    editor.New(),
		style:     DefaultStyle(),
		listeners: make(map[EventType][]EventListener),
	}
	s.Editor.OnChange(func(snap editor.Snapshot) {
		s.SetModified(true)
		s.Emit(EventGeometryChanged, snap)
	})
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Style returns the current render style.
func (s *State) Style() Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.style
}

// SetStyle replaces the render style and emits an event.
func (s *State) SetStyle(style Style) {
	s.mu.Lock()
	s.style = style
	s.mu.Unlock()
	s.Emit(EventStyleChanged, style)
}

// Modified reports whether the sketch changed since the last reset.
func (s *State) Modified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}

// SetModified marks the sketch as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	changed := s.modified != modified
	s.modified = modified
	s.mu.Unlock()
	if changed {
		s.Emit(EventModified, modified)
	}
}
