package retained

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollViewObservers(t *testing.T) {
	loop, _ := newTestLoop(t)
	sv := NewScrollView(loop, 320, 480)

	var sizes []Size
	var offsets []Point
	sizeObs := sv.ObserveContentSize(func(s Size) { sizes = append(sizes, s) })
	offsetObs := sv.ObserveContentOffset(func(p Point) { offsets = append(offsets, p) })
	assert.Equal(t, 2, sv.ObserverCount())

	sv.SetContentSize(Size{Width: 320, Height: 1000})
	sv.SetContentSize(Size{Width: 320, Height: 1000}) // unchanged, no delivery
	sv.SetContentOffset(Point{Y: 100}, false)

	assert.Equal(t, []Size{{Width: 320, Height: 1000}}, sizes)
	assert.Equal(t, []Point{{Y: 100}}, offsets)

	sizeObs.Invalidate()
	sizeObs.Invalidate()
	offsetObs.Invalidate()
	assert.False(t, sizeObs.Valid())
	assert.Zero(t, sv.ObserverCount())

	sv.SetContentSize(Size{Width: 320, Height: 2000})
	assert.Len(t, sizes, 1)
}

func TestScrollViewAnimatedOffset(t *testing.T) {
	loop, clock := newTestLoop(t)
	sv := NewScrollView(loop, 320, 480)
	sv.SetScrollToConfig(ScrollToConfig{Duration: 100 * time.Millisecond, Easing: EaseLinear})

	var offsets []Point
	sv.ObserveContentOffset(func(p Point) { offsets = append(offsets, p) })

	sv.SetContentOffset(Point{Y: 200}, true)
	assert.Equal(t, Point{}, sv.ContentOffset(), "animated scroll starts on the next tick")

	step(loop, clock, 50*time.Millisecond)
	assert.Equal(t, Point{Y: 100}, sv.ContentOffset())

	step(loop, clock, 50*time.Millisecond)
	assert.Equal(t, Point{Y: 200}, sv.ContentOffset())
	assert.Len(t, offsets, 2)
}

func TestScrollViewDragStopsOffsetAnimation(t *testing.T) {
	loop, clock := newTestLoop(t)
	sv := NewScrollView(loop, 320, 480)
	sv.SetScrollToConfig(ScrollToConfig{Duration: 100 * time.Millisecond, Easing: EaseLinear})

	sv.SetContentOffset(Point{Y: 200}, true)
	step(loop, clock, 50*time.Millisecond)

	sv.BeginDragging()
	require.True(t, sv.IsDragging())
	step(loop, clock, 100*time.Millisecond)
	assert.Equal(t, Point{Y: 100}, sv.ContentOffset(), "offset stays where the drag caught it")

	sv.Drag(Point{Y: -30}, Point{Y: -500})
	assert.Equal(t, Point{Y: 130}, sv.ContentOffset())
	assert.Equal(t, Point{Y: -500}, sv.PanGesture().Velocity())
	assert.Equal(t, Point{Y: -30}, sv.PanGesture().Translation())
}

func TestScrollViewEndDraggingNotifiesAfterClearingFlag(t *testing.T) {
	loop, _ := newTestLoop(t)
	sv := NewScrollView(loop, 320, 480)

	var states []GestureState
	var draggingAtEnd bool
	id := sv.PanGesture().AddTarget(func(g *PanGesture) {
		states = append(states, g.State())
		if g.State() == GestureEnded {
			draggingAtEnd = sv.IsDragging()
		}
	})

	sv.Drag(Point{Y: -10}, Point{Y: -100})
	sv.EndDragging(Point{Y: -100})
	sv.EndDragging(Point{}) // not dragging, ignored

	assert.Equal(t, []GestureState{GestureBegan, GestureChanged, GestureEnded}, states)
	assert.False(t, draggingAtEnd)
	assert.Equal(t, GesturePossible, sv.PanGesture().State())

	assert.True(t, sv.PanGesture().RemoveTarget(id))
	assert.False(t, sv.PanGesture().RemoveTarget(id))
	assert.Zero(t, sv.PanGesture().TargetCount())
}

func TestScrollViewAnimateContentInset(t *testing.T) {
	loop, clock := newTestLoop(t)
	sv := NewScrollView(loop, 320, 480)
	target := Insets{Bottom: 42}

	var done []bool
	sv.AnimateContentInset(target, 100*time.Millisecond, func(f bool) { done = append(done, f) })

	assert.Equal(t, target, sv.ContentInset(), "model value changes at once")
	assert.Equal(t, Insets{}, sv.PresentationContentInset())

	step(loop, clock, 50*time.Millisecond)
	assert.InDelta(t, 21, sv.PresentationContentInset().Bottom, 1e-4)

	step(loop, clock, 50*time.Millisecond)
	assert.Equal(t, target, sv.PresentationContentInset())
	assert.Equal(t, []bool{true}, done)
}

func TestScrollViewAnimateContentInsetInterrupted(t *testing.T) {
	loop, clock := newTestLoop(t)
	sv := NewScrollView(loop, 320, 480)

	var first, second []bool
	sv.AnimateContentInset(Insets{Bottom: 100}, 100*time.Millisecond, func(f bool) { first = append(first, f) })
	step(loop, clock, 50*time.Millisecond)
	mid := sv.PresentationContentInset()

	sv.AnimateContentInset(Insets{}, 100*time.Millisecond, func(f bool) { second = append(second, f) })
	assert.Equal(t, Insets{}, sv.ContentInset())

	step(loop, clock, time.Millisecond)
	assert.Equal(t, []bool{false}, first)
	assert.LessOrEqual(t, sv.PresentationContentInset().Bottom, mid.Bottom, "continues from the interrupted value")

	step(loop, clock, 100*time.Millisecond)
	assert.Equal(t, []bool{true}, second)
	assert.Equal(t, Insets{}, sv.PresentationContentInset())
}

func TestScrollViewAnimateContentInsetImmediate(t *testing.T) {
	loop, _ := newTestLoop(t)
	sv := NewScrollView(loop, 320, 480)

	called := false
	sv.AnimateContentInset(Insets{Top: 5}, 0, func(f bool) { called = f })

	assert.True(t, called, "zero duration completes synchronously")
	assert.Equal(t, Insets{Top: 5}, sv.PresentationContentInset())
}

func TestScrollViewOffsetLimits(t *testing.T) {
	loop, _ := newTestLoop(t)
	sv := NewScrollView(loop, 300, 400)
	sv.SetContentSize(Size{Width: 300, Height: 1000})
	sv.SetContentInset(Insets{Top: 10, Bottom: 20})
	sv.SetSafeAreaInsets(Insets{Top: 5})

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{Y: 300}, Point{Y: 300}},
		{"before start", Point{Y: -100}, Point{Y: -15}},
		{"past end", Point{Y: 5000}, Point{Y: 620}},
		{"horizontal pinned", Point{X: 50, Y: 0}, Point{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, sv.ClampOffset(tt.in)); diff != "" {
				t.Errorf("ClampOffset() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.Equal(t, Insets{Top: 15, Bottom: 20}, sv.AdjustedContentInset())
}
