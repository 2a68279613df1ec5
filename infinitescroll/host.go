package infinitescroll

import (
	"time"

	"github.com/agiangrant/infinitescroll/retained"
)

// Host is the scrollable view infinite scroll attaches to.
// *retained.ScrollView and *retained.ListView implement it.
type Host interface {
	// Loop is the main execution context; timers and animations run on it.
	Loop() *retained.Loop

	// Bounds is the viewport size.
	Bounds() retained.Size

	ContentSize() retained.Size
	ContentOffset() retained.Point
	SetContentOffset(offset retained.Point, animated bool)

	ContentInset() retained.Insets
	AnimateContentInset(inset retained.Insets, duration time.Duration, completion func(finished bool))
	// AdjustedContentInset is ContentInset plus any system-imposed inset.
	AdjustedContentInset() retained.Insets

	IsDragging() bool
	PanGesture() *retained.PanGesture

	ObserveContentSize(fn func(retained.Size)) *retained.Observation
	ObserveContentOffset(fn func(retained.Point)) *retained.Observation

	// View is the host's own widget; the indicator is attached beneath it.
	View() *retained.Widget
	AddSubview(w *retained.Widget)
}

// ContentSizeRecomputer is implemented by list-like hosts whose content size
// lags behind their rows until explicitly measured.
type ContentSizeRecomputer interface {
	RecomputeContentSize()
}

// RowScroller is implemented by list-like hosts that scroll by row.
type RowScroller interface {
	ScrollToLastRow(position retained.RowPosition, animated bool) bool
}

var (
	_ Host                  = (*retained.ScrollView)(nil)
	_ Host                  = (*retained.ListView)(nil)
	_ ContentSizeRecomputer = (*retained.ListView)(nil)
	_ RowScroller           = (*retained.ListView)(nil)
)
