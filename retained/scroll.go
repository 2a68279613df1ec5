package retained

import (
	"time"
)

// ============================================================================
// Scroll View
// ============================================================================

// ScrollToConfig configures programmatic offset animations.
type ScrollToConfig struct {
	Duration time.Duration // Animation duration (default: 250ms)
	Easing   EasingFunc    // Easing function (default: EaseOutCubic)
}

// DefaultScrollToConfig returns sensible defaults for scroll animations.
func DefaultScrollToConfig() ScrollToConfig {
	return ScrollToConfig{
		Duration: 250 * time.Millisecond,
		Easing:   EaseOutCubic,
	}
}

// ObservationID identifies a registered observer.
type ObservationID uint64

// Observation is a subscription handle returned by the Observe* methods.
type Observation struct {
	cancel func()
	done   bool
}

// Invalidate stops delivery. Safe to call more than once.
func (o *Observation) Invalidate() {
	if o == nil || o.done {
		return
	}
	o.done = true
	o.cancel()
}

// Valid reports whether the observation still delivers changes.
func (o *Observation) Valid() bool {
	return o != nil && !o.done
}

type observerList[T any] struct {
	next  ObservationID
	fns   map[ObservationID]func(T)
	order []ObservationID
}

func (l *observerList[T]) add(fn func(T)) *Observation {
	if l.fns == nil {
		l.fns = make(map[ObservationID]func(T))
	}
	l.next++
	id := l.next
	l.fns[id] = fn
	l.order = append(l.order, id)
	return &Observation{cancel: func() { l.remove(id) }}
}

func (l *observerList[T]) remove(id ObservationID) {
	delete(l.fns, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}

func (l *observerList[T]) notify(v T) {
	ids := make([]ObservationID, len(l.order))
	copy(ids, l.order)
	for _, id := range ids {
		if fn, ok := l.fns[id]; ok {
			fn(v)
		}
	}
}

// ScrollView is a container whose content can be larger than its bounds.
// Content size, offset and inset are loop-owned; changes to size and offset
// are delivered synchronously to observers, whatever their source.
type ScrollView struct {
	*Widget

	loop   *Loop
	scroll ScrollToConfig

	contentSize    Size
	contentOffset  Point
	contentInset   Insets // model value
	safeAreaInsets Insets

	presentationInset Insets

	dragging bool
	pan      *PanGesture

	sizeObservers   observerList[Size]
	offsetObservers observerList[Point]
}

// NewScrollView creates a scroll view with the given viewport size.
func NewScrollView(loop *Loop, width, height float32) *ScrollView {
	return newScrollView(loop, KindScrollView, width, height)
}

func newScrollView(loop *Loop, kind WidgetKind, width, height float32) *ScrollView {
	w := NewWidget(kind)
	w.SetSize(width, height)
	return &ScrollView{
		Widget: w,
		loop:   loop,
		scroll: DefaultScrollToConfig(),
		pan:    NewPanGesture(),
	}
}

// Loop returns the loop that owns this view.
func (s *ScrollView) Loop() *Loop {
	return s.loop
}

// SetScrollToConfig changes the animation used by SetContentOffset.
func (s *ScrollView) SetScrollToConfig(cfg ScrollToConfig) {
	if cfg.Duration == 0 {
		cfg.Duration = 250 * time.Millisecond
	}
	if cfg.Easing == nil {
		cfg.Easing = EaseOutCubic
	}
	s.scroll = cfg
}

// Bounds returns the viewport size.
func (s *ScrollView) Bounds() Size {
	w, h := s.Widget.Size()
	return Size{Width: w, Height: h}
}

// ContentSize returns the total content dimensions.
func (s *ScrollView) ContentSize() Size {
	return s.contentSize
}

// SetContentSize sets the total content dimensions and notifies observers
// when they change.
func (s *ScrollView) SetContentSize(size Size) {
	if s.contentSize == size {
		return
	}
	s.contentSize = size
	s.markScrollDirty(DirtyScroll)
	s.sizeObservers.notify(size)
}

// ContentOffset returns the point of the content shown at the viewport's
// top-left corner.
func (s *ScrollView) ContentOffset() Point {
	return s.contentOffset
}

// SetContentOffset scrolls to offset, optionally animated. An animated
// scroll replaces any running offset animation from its current position.
func (s *ScrollView) SetContentOffset(offset Point, animated bool) {
	if !animated {
		if anim := s.loop.Animations().Running(s.Widget, KeyContentOffset); anim != nil {
			anim.Cancel()
		}
		s.setContentOffset(offset)
		return
	}

	from := s.contentOffset
	s.Widget.Animate(s.loop.Animations()).
		Key(KeyContentOffset).
		Duration(s.scroll.Duration).
		Easing(s.scroll.Easing).
		Custom(func(progress float64) {
			s.setContentOffset(lerpPoint(from, offset, float32(progress)))
		})
}

func (s *ScrollView) setContentOffset(offset Point) {
	if s.contentOffset == offset {
		return
	}
	s.contentOffset = offset
	s.markScrollDirty(DirtyScroll)
	s.offsetObservers.notify(offset)
}

// ContentInset returns the caller-controlled inset around the content. While
// an inset animation runs this is already the animation's target; the
// interpolated value is PresentationContentInset.
func (s *ScrollView) ContentInset() Insets {
	return s.contentInset
}

// PresentationContentInset returns the inset as currently drawn.
func (s *ScrollView) PresentationContentInset() Insets {
	return s.presentationInset
}

// SetContentInset sets the inset immediately, cancelling any inset animation.
func (s *ScrollView) SetContentInset(inset Insets) {
	if anim := s.loop.Animations().Running(s.Widget, KeyContentInset); anim != nil {
		anim.Cancel()
	}
	s.contentInset = inset
	s.setPresentationInset(inset)
}

// AnimateContentInset transitions the inset to target over duration. The
// model value changes at once; the presentation value moves from wherever
// it currently is, so an interrupted animation continues smoothly.
// completion receives false when a later inset change interrupted this one.
// A non-positive duration applies the inset at once and completes
// synchronously.
func (s *ScrollView) AnimateContentInset(target Insets, duration time.Duration, completion func(finished bool)) {
	if duration <= 0 {
		s.SetContentInset(target)
		if completion != nil {
			completion(true)
		}
		return
	}

	s.contentInset = target
	from := s.presentationInset
	s.Widget.Animate(s.loop.Animations()).
		Key(KeyContentInset).
		Duration(duration).
		Easing(EaseInOutQuad).
		OnComplete(completion).
		Custom(func(progress float64) {
			s.setPresentationInset(lerpInsets(from, target, float32(progress)))
		})
}

func (s *ScrollView) setPresentationInset(inset Insets) {
	if s.presentationInset == inset {
		return
	}
	s.presentationInset = inset
	s.markScrollDirty(DirtyInset)
}

// SafeAreaInsets returns the system-imposed inset.
func (s *ScrollView) SafeAreaInsets() Insets {
	return s.safeAreaInsets
}

// SetSafeAreaInsets sets the system-imposed inset (status bars, notches).
func (s *ScrollView) SetSafeAreaInsets(inset Insets) {
	s.safeAreaInsets = inset
	s.markScrollDirty(DirtyInset)
}

// AdjustedContentInset is the content inset plus the safe area.
func (s *ScrollView) AdjustedContentInset() Insets {
	return s.contentInset.Add(s.safeAreaInsets)
}

func (s *ScrollView) markScrollDirty(flags uint64) {
	s.Widget.mu.Lock()
	s.Widget.markDirty(flags)
	s.Widget.mu.Unlock()
}

// ============================================================================
// Dragging
// ============================================================================

// PanGesture returns the view's pan gesture.
func (s *ScrollView) PanGesture() *PanGesture {
	return s.pan
}

// IsDragging reports whether a user drag is in progress.
func (s *ScrollView) IsDragging() bool {
	return s.dragging
}

// BeginDragging starts a user drag. Running offset animations stop where
// they are.
func (s *ScrollView) BeginDragging() {
	if anim := s.loop.Animations().Running(s.Widget, KeyContentOffset); anim != nil {
		anim.Cancel()
	}
	s.dragging = true
	s.pan.velocity = Point{}
	s.pan.setState(GestureBegan)
}

// Drag moves the finger by translation with the given velocity. The content
// follows the finger, so the offset moves opposite to the translation.
func (s *ScrollView) Drag(translation, velocity Point) {
	if !s.dragging {
		s.BeginDragging()
	}
	s.pan.translation.X += translation.X
	s.pan.translation.Y += translation.Y
	s.pan.velocity = velocity
	s.pan.setState(GestureChanged)
	s.setContentOffset(Point{
		X: s.contentOffset.X - translation.X,
		Y: s.contentOffset.Y - translation.Y,
	})
}

// EndDragging lifts the finger. The drag flag clears before gesture targets
// run.
func (s *ScrollView) EndDragging(velocity Point) {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.pan.velocity = velocity
	s.pan.setState(GestureEnded)
}

// ============================================================================
// Observation and Subviews
// ============================================================================

// ObserveContentSize delivers every content-size change to fn.
func (s *ScrollView) ObserveContentSize(fn func(Size)) *Observation {
	return s.sizeObservers.add(fn)
}

// ObserveContentOffset delivers every content-offset change to fn,
// programmatic or user-driven.
func (s *ScrollView) ObserveContentOffset(fn func(Point)) *Observation {
	return s.offsetObservers.add(fn)
}

// ObserverCount returns the number of live size and offset observers.
func (s *ScrollView) ObserverCount() int {
	return len(s.sizeObservers.fns) + len(s.offsetObservers.fns)
}

// AddSubview attaches w to the scroll view's content.
func (s *ScrollView) AddSubview(w *Widget) {
	s.Widget.AddChild(w)
}

// View returns the scroll view's own widget.
func (s *ScrollView) View() *Widget {
	return s.Widget
}

// MinContentOffset returns the smallest resting offset, -adjustedInset on
// the leading edges.
func (s *ScrollView) MinContentOffset() Point {
	adj := s.AdjustedContentInset()
	return Point{X: -adj.Left, Y: -adj.Top}
}

// MaxContentOffset returns the largest resting offset on both axes.
func (s *ScrollView) MaxContentOffset() Point {
	adj := s.AdjustedContentInset()
	bounds := s.Bounds()
	minOffset := s.MinContentOffset()
	maxOffset := Point{
		X: s.contentSize.Width + adj.Right - bounds.Width,
		Y: s.contentSize.Height + adj.Bottom - bounds.Height,
	}
	if maxOffset.X < minOffset.X {
		maxOffset.X = minOffset.X
	}
	if maxOffset.Y < minOffset.Y {
		maxOffset.Y = minOffset.Y
	}
	return maxOffset
}

// ClampOffset restricts an offset to the resting range.
func (s *ScrollView) ClampOffset(p Point) Point {
	minOffset, maxOffset := s.MinContentOffset(), s.MaxContentOffset()
	return Point{
		X: float32(clamp(float64(p.X), float64(minOffset.X), float64(maxOffset.X))),
		Y: float32(clamp(float64(p.Y), float64(minOffset.Y), float64(maxOffset.Y))),
	}
}
