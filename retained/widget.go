// Package retained provides a headless retained-mode widget system: widgets
// with frames and visibility, scroll and list containers with observable
// content geometry, pan gestures, and a single-goroutine loop that drives
// timers and animations.
//
// All widget state is owned by the loop goroutine. Widgets still guard their
// fields with a mutex so renderers running elsewhere can take consistent
// snapshots.
package retained

import (
	"sync"
	"sync/atomic"
)

// WidgetID uniquely identifies a widget in the tree.
// IDs are stable across updates and used for delta tracking.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the type of widget for rendering.
type WidgetKind string

const (
	KindContainer         WidgetKind = "container"
	KindScrollView        WidgetKind = "scroll_view"
	KindList              WidgetKind = "list"
	KindRow               WidgetKind = "row"
	KindText              WidgetKind = "text"
	KindActivityIndicator WidgetKind = "activity_indicator"
	KindCustom            WidgetKind = "custom"
)

// Widget represents a UI element in the retained tree.
// Widgets are thread-safe for concurrent property updates.
type Widget struct {
	mu sync.RWMutex

	id       WidgetID
	kind     WidgetKind
	parent   *Widget
	children []*Widget

	// Frame in the parent's content coordinate space
	x, y          float32
	width, height float32

	// Visual properties
	backgroundColor *uint32
	opacity         float32
	rotation        float32 // Rotation angle in radians (around center)
	visible         bool

	// Content
	text string

	// Dirty tracking
	dirty     bool
	dirtyMask uint64
	onDirty   func(w *Widget, flags uint64)
}

// Property change flags for dirty tracking
const (
	DirtyPosition uint64 = 1 << iota
	DirtySize
	DirtyBackground
	DirtyOpacity
	DirtyRotation
	DirtyVisible
	DirtyText
	DirtyScroll
	DirtyInset
	DirtyChildren
)

// NewWidget creates a widget with default values.
// The widget is not attached to any tree until added as a child.
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		id:      newWidgetID(),
		kind:    kind,
		opacity: 1.0,
		visible: true,
	}
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Kind returns the widget type.
func (w *Widget) Kind() WidgetKind {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.kind
}

// OnDirty installs a hook that receives every property change of this widget.
// Renderers use it to schedule redraws. The hook runs with the widget locked
// and must not call back into it.
func (w *Widget) OnDirty(fn func(w *Widget, flags uint64)) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onDirty = fn
	return w
}

// ============================================================================
// Tree Structure
// ============================================================================

// Parent returns the widget's parent, or nil if it's the root.
func (w *Widget) Parent() *Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Children returns a copy of the widget's children slice.
func (w *Widget) Children() []*Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*Widget, len(w.children))
	copy(result, w.children)
	return result
}

// ChildCount returns the number of direct children.
func (w *Widget) ChildCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.children)
}

// AddChild appends a child widget. A child that already has a parent is
// moved.
func (w *Widget) AddChild(child *Widget) *Widget {
	if old := child.Parent(); old != nil {
		old.RemoveChild(child)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	child.mu.Lock()
	child.parent = w
	child.mu.Unlock()

	w.children = append(w.children, child)
	w.markDirty(DirtyChildren)
	return w
}

// RemoveChild removes a child by reference.
func (w *Widget) RemoveChild(child *Widget) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.mu.Lock()
			child.parent = nil
			child.mu.Unlock()
			w.markDirty(DirtyChildren)
			return true
		}
	}
	return false
}

// RemoveFromParent removes this widget from its parent.
func (w *Widget) RemoveFromParent() {
	w.mu.RLock()
	parent := w.parent
	w.mu.RUnlock()

	if parent != nil {
		parent.RemoveChild(w)
	}
}

// ============================================================================
// Property Setters (all thread-safe, trigger dirty tracking)
// ============================================================================

// markDirty must be called with w.mu held.
func (w *Widget) markDirty(flags uint64) {
	w.dirty = true
	w.dirtyMask |= flags

	if w.onDirty != nil {
		w.onDirty(w, flags)
	}
}

// SetPosition sets x and y coordinates of the top-left corner.
func (w *Widget) SetPosition(x, y float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.x != x || w.y != y {
		w.x, w.y = x, y
		w.markDirty(DirtyPosition)
	}
	return w
}

// SetSize sets width and height.
func (w *Widget) SetSize(width, height float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.width != width || w.height != height {
		w.width, w.height = width, height
		w.markDirty(DirtySize)
	}
	return w
}

// SetFrame sets position and size in one call.
func (w *Widget) SetFrame(x, y, width, height float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	var flags uint64
	if w.x != x || w.y != y {
		w.x, w.y = x, y
		flags |= DirtyPosition
	}
	if w.width != width || w.height != height {
		w.width, w.height = width, height
		flags |= DirtySize
	}
	if flags != 0 {
		w.markDirty(flags)
	}
	return w
}

// SetCenter moves the widget so its frame is centered on p, keeping its size.
func (w *Widget) SetCenter(p Point) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	x := p.X - w.width*0.5
	y := p.Y - w.height*0.5
	if w.x != x || w.y != y {
		w.x, w.y = x, y
		w.markDirty(DirtyPosition)
	}
	return w
}

// SetBackgroundColor sets the background color (RGBA).
func (w *Widget) SetBackgroundColor(color uint32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.backgroundColor == nil || *w.backgroundColor != color {
		w.backgroundColor = &color
		w.markDirty(DirtyBackground)
	}
	return w
}

// SetOpacity sets the opacity (0.0 to 1.0).
func (w *Widget) SetOpacity(opacity float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.opacity != opacity {
		w.opacity = opacity
		w.markDirty(DirtyOpacity)
	}
	return w
}

// SetRotation sets the rotation angle in radians (around center).
func (w *Widget) SetRotation(radians float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.rotation != radians {
		w.rotation = radians
		w.markDirty(DirtyRotation)
	}
	return w
}

// SetVisible sets whether the widget is rendered.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.visible != visible {
		w.visible = visible
		w.markDirty(DirtyVisible)
	}
	return w
}

// SetText sets the text content.
func (w *Widget) SetText(text string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.text != text {
		w.text = text
		w.markDirty(DirtyText)
	}
	return w
}

// ============================================================================
// Property Getters
// ============================================================================

// Position returns x and y coordinates.
func (w *Widget) Position() (x, y float32) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.x, w.y
}

// Size returns width and height.
func (w *Widget) Size() (width, height float32) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width, w.height
}

// Frame returns position and size.
func (w *Widget) Frame() Bounds {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return Bounds{X: w.x, Y: w.y, Width: w.width, Height: w.height}
}

// Center returns the midpoint of the widget's frame.
func (w *Widget) Center() Point {
	return w.Frame().Center()
}

// BackgroundColor returns the background color, or 0 if not set.
func (w *Widget) BackgroundColor() (color uint32, ok bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.backgroundColor != nil {
		return *w.backgroundColor, true
	}
	return 0, false
}

// Opacity returns the current opacity.
func (w *Widget) Opacity() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.opacity
}

// Rotation returns the current rotation angle in radians.
func (w *Widget) Rotation() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.rotation
}

// Visible reports whether the widget is rendered.
func (w *Widget) Visible() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.visible
}

// Text returns the text content.
func (w *Widget) Text() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text
}

// IsDirty returns whether the widget has pending changes.
func (w *Widget) IsDirty() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirty
}

// DirtyMask returns the bitmask of changed properties.
func (w *Widget) DirtyMask() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirtyMask
}

// ClearDirty resets the dirty state (called after sync to renderer).
func (w *Widget) ClearDirty() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dirty = false
	w.dirtyMask = 0
}
