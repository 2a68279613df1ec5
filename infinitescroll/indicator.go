package infinitescroll

import (
	"time"

	"github.com/agiangrant/infinitescroll/retained"
)

// Indicator is the view shown while a load is in flight. Its widget carries
// position, size and visibility; the animation hooks let it spin or pulse.
type Indicator interface {
	View() *retained.Widget
	StartAnimating()
	StopAnimating()
}

// ActivityIndicator is the default Indicator: a small square widget that
// rotates while animating.
type ActivityIndicator struct {
	widget *retained.Widget
	loop   *retained.Loop
	style  IndicatorStyle
	spin   *retained.Animation
}

// activityIndicatorPeriod is one full turn of the default indicator.
const activityIndicatorPeriod = time.Second

// NewActivityIndicator creates a hidden indicator sized for style whose spin
// animation runs on loop.
func NewActivityIndicator(loop *retained.Loop, style IndicatorStyle) *ActivityIndicator {
	side, color := indicatorMetrics(style)
	w := retained.NewWidget(retained.KindActivityIndicator)
	w.SetSize(side, side)
	w.SetBackgroundColor(color)
	w.SetVisible(false)
	return &ActivityIndicator{widget: w, loop: loop, style: style}
}

func indicatorMetrics(style IndicatorStyle) (side float32, color uint32) {
	switch style {
	case StyleWhiteLarge:
		return 37, 0xFFFFFFFF
	case StyleGray:
		return 20, 0x808080FF
	default:
		return 20, 0xFFFFFFFF
	}
}

// View returns the indicator widget.
func (a *ActivityIndicator) View() *retained.Widget {
	return a.widget
}

// Style returns the style the indicator was built with.
func (a *ActivityIndicator) Style() IndicatorStyle {
	return a.style
}

// StartAnimating begins spinning. Idempotent.
func (a *ActivityIndicator) StartAnimating() {
	if a.spin != nil && !a.spin.IsCancelled() {
		return
	}
	a.spin = retained.StartSpinAnimation(a.widget, a.loop.Animations(), activityIndicatorPeriod)
}

// StopAnimating halts the spin and resets the rotation.
func (a *ActivityIndicator) StopAnimating() {
	if a.spin != nil {
		a.spin.Cancel()
		a.spin = nil
	}
	a.widget.SetRotation(0)
}

// IsAnimating reports whether the spin animation is running.
func (a *ActivityIndicator) IsAnimating() bool {
	return a.spin != nil && !a.spin.IsCancelled()
}

// ============================================================================
// Indicator Controller
// ============================================================================

// ensureIndicator returns the state's indicator, creating the default one
// on first use, and makes sure it is attached under the host.
func (s *loadingState) ensureIndicator() Indicator {
	if s.indicator == nil {
		s.indicator = NewActivityIndicator(s.host.Loop(), s.indicatorStyle)
	}
	view := s.indicator.View()
	if view.Parent() != s.host.View() {
		s.host.AddSubview(view)
		if !s.isLoading {
			view.SetVisible(false)
		}
	}
	return s.indicator
}

func (s *loadingState) showIndicator() {
	ind := s.ensureIndicator()
	ind.View().SetVisible(true)
	ind.StartAnimating()
}

func (s *loadingState) hideIndicator() {
	if s.indicator == nil {
		return
	}
	s.indicator.StopAnimating()
	s.indicator.View().SetVisible(false)
}

// indicatorRowSize is the indicator's length along the axis plus margins.
// Zero when no indicator exists yet.
func (s *loadingState) indicatorRowSize() float32 {
	if s.indicator == nil {
		return 0
	}
	w, h := s.indicator.View().Size()
	length := h
	if s.direction == Horizontal {
		length = w
	}
	return IndicatorRowSize(length, s.indicatorMargin)
}

func (s *loadingState) originalEndInset() float32 {
	return OriginalEndInset(s.host.AdjustedContentInset(), s.extraEndInset, s.indicatorInset, s.direction)
}

func (s *loadingState) clampedContentLength(contentSize retained.Size) float32 {
	return ClampedContentLength(contentSize, s.host.Bounds(), s.host.AdjustedContentInset(), s.originalEndInset(), s.direction)
}

// repositionIndicator glues the indicator to the end of contentSize. The
// center is only written when it moves.
func (s *loadingState) repositionIndicator(contentSize retained.Size) {
	view := s.ensureIndicator().View()
	length := s.clampedContentLength(contentSize)
	center := IndicatorCenter(contentSize, length, s.indicatorRowSize(), s.direction)
	if view.Center() != center {
		view.SetCenter(center)
	}
}
