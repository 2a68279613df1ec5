package infinitescroll

import (
	"github.com/agiangrant/infinitescroll/retained"
)

// ============================================================================
// Scroll Signal Router
// ============================================================================

// onContentSizeChanged keeps the indicator glued to the content end while
// rows are populated, scrolling or not.
func (s *loadingState) onContentSizeChanged(size retained.Size) {
	if !s.attached {
		return
	}
	s.repositionIndicator(size)
}

// onContentOffsetChanged starts a load when a user drag crosses the trigger
// boundary heading toward the end. Programmatic scrolls are ignored, and so
// is bounce-back (positive velocity).
func (s *loadingState) onContentOffsetChanged(offset retained.Point) {
	if !s.attached || s.isLoading || !s.host.IsDragging() {
		return
	}

	length := s.clampedContentLength(s.host.ContentSize())
	viewport := axisLength(s.host.Bounds(), s.direction)
	boundary := TriggerBoundary(length, viewport, s.originalEndInset(), s.triggerOffset)

	var velocity float32
	if s.pan != nil {
		velocity = axisOffset(s.pan.Velocity(), s.direction)
	}

	pos := axisOffset(offset, s.direction)
	if pos > boundary && velocity <= 0 {
		s.log.V(2).Info("trigger boundary crossed", "offset", pos, "boundary", boundary, "velocity", velocity)
		s.beginLoad(false)
	}
}

// onPanGesture reveals the indicator once the finger lifts, so a load that
// began mid-drag settles into view.
func (s *loadingState) onPanGesture(g *retained.PanGesture) {
	if g.State() != retained.GestureEnded {
		return
	}
	s.scrollToIndicatorIfNeeded(true, false)
}
