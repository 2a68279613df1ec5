package infinitescroll

// ============================================================================
// Attach / Detach
// ============================================================================

// Attach installs infinite scroll on host. handler is called, on the host's
// loop, shortly after each load starts; it must eventually call Finish.
// Attaching an already attached host replaces its state.
func Attach(host Host, handler func(Host), opts ...Option) {
	if host == nil {
		return
	}
	if lookup(host) != nil {
		Detach(host)
	}

	s := newLoadingState(host, handler, resolveOptions(opts))
	s.attached = true

	if pan := host.PanGesture(); pan != nil {
		s.pan = pan
		s.panTarget = pan.AddTarget(s.onPanGesture)
	}
	s.sizeObservation = host.ObserveContentSize(s.onContentSizeChanged)
	s.offsetObservation = host.ObserveContentOffset(s.onContentOffsetChanged)

	register(host, s)
	s.log.V(1).Info("attached", "direction", s.direction, "triggerOffset", s.triggerOffset)
}

// SetShouldShow installs a predicate consulted before every load. A nil
// predicate allows all loads.
func SetShouldShow(host Host, fn func(Host) bool) {
	if s := lookup(host); s != nil {
		s.shouldShowHandler = fn
	}
}

// Detach removes infinite scroll from host, giving back any inset held by an
// active load. Safe to call when not attached.
func Detach(host Host) {
	if host == nil {
		return
	}
	s := unregister(host)
	if s == nil {
		return
	}
	s.detach()
}

func (s *loadingState) detach() {
	s.cancelPendingHandlers()

	// A release already returned its inset to the model value.
	if s.isLoading && s.phase != PhaseReleasing {
		held := s.indicatorInset + s.extraEndInset
		s.host.AnimateContentInset(addEndInset(s.host.ContentInset(), s.direction, -held), 0, nil)
	}
	s.indicatorInset = 0
	s.extraEndInset = 0
	s.isLoading = false
	s.phase = PhaseIdle
	s.attached = false

	if s.pan != nil {
		s.pan.RemoveTarget(s.panTarget)
		s.pan = nil
	}
	s.sizeObservation.Invalidate()
	s.offsetObservation.Invalidate()

	if s.indicator != nil {
		s.indicator.StopAnimating()
		s.indicator.View().RemoveFromParent()
		s.indicator = nil
	}
	s.log.V(1).Info("detached")
}

// IsAttached reports whether host has infinite scroll installed.
func IsAttached(host Host) bool {
	return lookup(host) != nil
}

// ============================================================================
// Loads
// ============================================================================

// Begin starts a load as if the user had scrolled to the trigger boundary.
// With force the indicator is scrolled into view even when the current
// offset is outside the indicator row. No-op while loading.
func Begin(host Host, force bool) {
	if s := lookup(host); s != nil {
		s.beginLoad(force)
	}
}

// Finish ends the active load and calls completion once the reserved inset
// is released. Calling it again before the release ends adds another
// completion to the same release. No-op when no load is active.
func Finish(host Host, completion func(Host)) {
	if s := lookup(host); s != nil {
		s.finishLoad(completion)
	}
}

// CurrentPhase returns where host is in the load cycle.
func CurrentPhase(host Host) Phase {
	if s := lookup(host); s != nil {
		return s.phase
	}
	return PhaseIdle
}

// ============================================================================
// Accessors
// ============================================================================

// DirectionOf returns the scroll axis of host's attachment.
func DirectionOf(host Host) Direction {
	if s := lookup(host); s != nil {
		return s.direction
	}
	return Vertical
}

// SetDirection changes the scroll axis. Ignored while a load holds inset on
// the current axis.
func SetDirection(host Host, d Direction) {
	s := lookup(host)
	if s == nil {
		return
	}
	if s.isLoading {
		s.log.V(1).Info("direction change ignored while loading", "direction", d)
		return
	}
	s.direction = d
	if s.indicator != nil {
		s.repositionIndicator(host.ContentSize())
	}
}

// IsLoading reports whether a load is active.
func IsLoading(host Host) bool {
	if s := lookup(host); s != nil {
		return s.isLoading
	}
	return false
}

// SetLoading overrides the loading flag without touching insets or the
// indicator.
func SetLoading(host Host, loading bool) {
	if s := lookup(host); s != nil {
		s.isLoading = loading
	}
}

// IndicatorView returns the indicator, creating the default one if needed and
// putting it back under host if it was removed. Nil when not attached.
func IndicatorView(host Host) Indicator {
	s := lookup(host)
	if s == nil {
		return nil
	}
	return s.ensureIndicator()
}

// SetIndicatorView replaces the indicator. The previous indicator's widget is
// removed from the hierarchy. A nil indicator falls back to the default.
func SetIndicatorView(host Host, ind Indicator) {
	s := lookup(host)
	if s == nil {
		return
	}
	if old := s.indicator; old != nil && old != ind {
		old.StopAnimating()
		old.View().RemoveFromParent()
	}
	s.indicator = ind
	if ind == nil {
		return
	}
	if s.isLoading {
		s.showIndicator()
		s.repositionIndicator(host.ContentSize())
		return
	}
	ind.View().SetVisible(false)
}

// IndicatorStyleOf returns the style used for the default indicator.
func IndicatorStyleOf(host Host) IndicatorStyle {
	if s := lookup(host); s != nil {
		return s.indicatorStyle
	}
	return StyleWhite
}

// SetIndicatorStyle changes the default indicator's style. An idle default
// indicator is rebuilt on next use; custom indicators are left alone.
func SetIndicatorStyle(host Host, style IndicatorStyle) {
	s := lookup(host)
	if s == nil {
		return
	}
	s.indicatorStyle = style
	if ai, ok := s.indicator.(*ActivityIndicator); ok && ai.Style() != style && !s.isLoading {
		ai.View().RemoveFromParent()
		s.indicator = nil
	}
}

// IndicatorMargin returns the space kept on both sides of the indicator.
func IndicatorMargin(host Host) float32 {
	if s := lookup(host); s != nil {
		return s.indicatorMargin
	}
	return DefaultIndicatorMargin
}

// SetIndicatorMargin changes the indicator margin. Takes effect on the next
// load.
func SetIndicatorMargin(host Host, margin float32) {
	if s := lookup(host); s != nil {
		s.indicatorMargin = margin
	}
}

// TriggerOffset returns how far before the content end loads start.
func TriggerOffset(host Host) float32 {
	if s := lookup(host); s != nil {
		return s.triggerOffset
	}
	return 0
}

// SetTriggerOffset changes how far before the content end loads start.
func SetTriggerOffset(host Host, offset float32) {
	if s := lookup(host); s != nil {
		s.triggerOffset = offset
	}
}
