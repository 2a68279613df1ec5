package infinitescroll

import (
	"github.com/agiangrant/infinitescroll/retained"
)

// ============================================================================
// Inset Transition Engine
// ============================================================================
//
// Idle -> Reserving -> Showing -> Releasing -> Idle
//
// A load reserves end inset for the indicator (plus whatever is needed to
// push a short content's end past the viewport), then releases exactly that
// amount when the caller finishes.

// beginLoad starts a load cycle unless one is active or the gate refuses.
func (s *loadingState) beginLoad(force bool) {
	if !s.attached || s.isLoading {
		s.log.V(2).Info("begin ignored", "attached", s.attached, "loading", s.isLoading)
		return
	}
	if !s.shouldShow() {
		s.log.V(1).Info("begin refused by visibility gate")
		return
	}

	s.startAnimating(force)
	s.scheduleHandler()
}

// startAnimating shows the indicator and reserves inset for it.
func (s *loadingState) startAnimating(force bool) {
	s.phase = PhaseReserving
	s.showIndicator()

	contentSize := s.host.ContentSize()
	s.repositionIndicator(contentSize)

	rowSize := s.indicatorRowSize()
	inset := addEndInset(s.host.ContentInset(), s.direction, rowSize)

	// Short content: extend the end so the indicator sits past the viewport.
	extra := s.clampedContentLength(contentSize) - axisLength(contentSize, s.direction)
	inset = addEndInset(inset, s.direction, extra)

	s.indicatorInset = rowSize
	s.extraEndInset = extra
	s.isLoading = true
	s.scrollToStartWhenFinished = !s.hasContent()

	s.log.V(1).Info("load started",
		"direction", s.direction,
		"force", force,
		"indicatorInset", rowSize,
		"extraEndInset", extra,
		"scrollToStart", s.scrollToStartWhenFinished)

	s.host.AnimateContentInset(inset, s.animationDuration, func(finished bool) {
		if s.phase == PhaseReserving {
			s.phase = PhaseShowing
		}
		if finished {
			s.scrollToIndicatorIfNeeded(true, force)
		}
	})
}

// scheduleHandler calls the loader once after the handler delay, even if the
// load has already finished by then. Only detach cancels it, and a late
// firing against a replaced or detached state does nothing.
func (s *loadingState) scheduleHandler() {
	var id retained.TimerID
	id = s.host.Loop().After(s.handlerDelay, func() {
		s.dropPendingHandler(id)
		if !s.current() || s.loadHandler == nil {
			return
		}
		s.log.V(1).Info("calling load handler", "loading", s.isLoading)
		s.loadHandler(s.host)
	})
	s.pendingHandlers = append(s.pendingHandlers, id)
}

func (s *loadingState) dropPendingHandler(id retained.TimerID) {
	for i, pending := range s.pendingHandlers {
		if pending == id {
			s.pendingHandlers = append(s.pendingHandlers[:i], s.pendingHandlers[i+1:]...)
			return
		}
	}
}

// cancelPendingHandlers stops every handler timer that has not fired.
func (s *loadingState) cancelPendingHandlers() {
	loop := s.host.Loop()
	for _, id := range s.pendingHandlers {
		loop.CancelTimer(id)
	}
	s.pendingHandlers = nil
}

// finishLoad releases the reserved inset. No-op unless loading. A finish
// that arrives while the release is animating only queues its completion.
func (s *loadingState) finishLoad(completion func(Host)) {
	if !s.isLoading {
		s.log.V(2).Info("finish ignored, not loading")
		return
	}
	if s.phase == PhaseReleasing {
		s.log.V(2).Info("finish joined release in flight")
		if completion != nil {
			s.releaseCompletions = append(s.releaseCompletions, completion)
		}
		return
	}
	s.stopAnimating(completion)
}

// stopAnimating gives back the held inset and hides the indicator once the
// release animation ends.
func (s *loadingState) stopAnimating(completion func(Host)) {
	s.phase = PhaseReleasing
	s.releaseCompletions = nil
	if completion != nil {
		s.releaseCompletions = append(s.releaseCompletions, completion)
	}

	// Lists may not have measured rows added by the loader yet.
	if r, ok := s.host.(ContentSizeRecomputer); ok {
		r.RecomputeContentSize()
	}

	held := s.indicatorInset + s.extraEndInset
	inset := addEndInset(s.host.ContentInset(), s.direction, -held)
	s.indicatorInset = 0
	s.extraEndInset = 0
	scrollToStart := s.scrollToStartWhenFinished

	s.log.V(1).Info("load finishing", "releasedInset", held, "scrollToStart", scrollToStart)

	s.host.AnimateContentInset(inset, s.animationDuration, func(finished bool) {
		if finished && s.attached {
			if scrollToStart {
				s.scrollToStart()
			} else {
				s.scrollToIndicatorIfNeeded(false, false)
			}
		}
		s.hideIndicator()
		s.isLoading = false
		s.phase = PhaseIdle
		s.log.V(1).Info("load finished", "finished", finished)
		completions := s.releaseCompletions
		s.releaseCompletions = nil
		for _, fn := range completions {
			fn(s.host)
		}
	})
}

// scrollToStart scrolls back to the axis origin, keeping the cross-axis
// offset.
func (s *loadingState) scrollToStart() {
	adj := s.host.AdjustedContentInset()
	offset := s.host.ContentOffset()
	if s.direction == Horizontal {
		offset.X = -adj.Left
	} else {
		offset.Y = -adj.Top
	}
	s.host.SetContentOffset(offset, true)
}

// scrollToIndicatorIfNeeded settles the offset around the indicator row.
// With reveal the row is scrolled fully into view, otherwise the content end
// is aligned with the viewport end. Only offsets already inside the row band
// are adjusted unless force is set. An active drag always wins.
func (s *loadingState) scrollToIndicatorIfNeeded(reveal, force bool) {
	if !s.attached || !s.isLoading || s.host.IsDragging() {
		return
	}

	if r, ok := s.host.(ContentSizeRecomputer); ok {
		r.RecomputeContentSize()
	}

	length := s.clampedContentLength(s.host.ContentSize())
	viewport := axisLength(s.host.Bounds(), s.direction)
	lo, hi := RevealRange(length, viewport, s.originalEndInset(), s.indicatorRowSize())

	offset := s.host.ContentOffset()
	pos := axisOffset(offset, s.direction)
	if !(pos > lo && pos < hi) && !force {
		return
	}

	if s.direction == Vertical {
		if rs, ok := s.host.(RowScroller); ok {
			rowPos := retained.RowPositionBottom
			if reveal {
				rowPos = retained.RowPositionTop
			}
			if rs.ScrollToLastRow(rowPos, true) {
				return
			}
		}
	}

	target := lo
	if reveal {
		target = hi
	}
	if s.direction == Horizontal {
		offset.X = target
	} else {
		offset.Y = target
	}
	s.log.V(2).Info("settling offset", "reveal", reveal, "target", target)
	s.host.SetContentOffset(offset, true)
}
