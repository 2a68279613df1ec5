package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidgetTree(t *testing.T) {
	a := NewWidget(KindContainer)
	b := NewWidget(KindContainer)
	child := NewWidget(KindText)

	a.AddChild(child)
	assert.Same(t, a, child.Parent())
	assert.Equal(t, 1, a.ChildCount())

	b.AddChild(child)
	assert.Same(t, b, child.Parent(), "adding to a new parent moves the child")
	assert.Zero(t, a.ChildCount())

	child.RemoveFromParent()
	assert.Nil(t, child.Parent())
	assert.Zero(t, b.ChildCount())
	assert.False(t, b.RemoveChild(child))

	child.RemoveFromParent() // no parent, no-op
}

func TestWidgetDirtyTracking(t *testing.T) {
	tests := []struct {
		name  string
		apply func(w *Widget)
		want  uint64
	}{
		{"position", func(w *Widget) { w.SetPosition(1, 2) }, DirtyPosition},
		{"size", func(w *Widget) { w.SetSize(10, 10) }, DirtySize},
		{"frame", func(w *Widget) { w.SetFrame(1, 1, 5, 5) }, DirtyPosition | DirtySize},
		{"center", func(w *Widget) { w.SetCenter(Point{X: 3, Y: 3}) }, DirtyPosition},
		{"rotation", func(w *Widget) { w.SetRotation(1) }, DirtyRotation},
		{"visible", func(w *Widget) { w.SetVisible(false) }, DirtyVisible},
		{"text", func(w *Widget) { w.SetText("hi") }, DirtyText},
		{"unchanged position", func(w *Widget) { w.SetPosition(0, 0) }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWidget(KindContainer)
			var hooked uint64
			w.OnDirty(func(_ *Widget, flags uint64) { hooked |= flags })

			tt.apply(w)

			if got := w.DirtyMask(); got != tt.want {
				t.Errorf("DirtyMask() = %b, want %b", got, tt.want)
			}
			if hooked != tt.want {
				t.Errorf("OnDirty flags = %b, want %b", hooked, tt.want)
			}
			w.ClearDirty()
			if w.IsDirty() {
				t.Error("expected clean widget after ClearDirty")
			}
		})
	}
}

func TestWidgetCenter(t *testing.T) {
	w := NewWidget(KindActivityIndicator)
	w.SetSize(20, 20)
	w.SetCenter(Point{X: 160, Y: 1021})

	assert.Equal(t, Bounds{X: 150, Y: 1011, Width: 20, Height: 20}, w.Frame())
	assert.Equal(t, Point{X: 160, Y: 1021}, w.Center())
}
