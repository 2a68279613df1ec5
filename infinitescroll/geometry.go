package infinitescroll

import (
	"github.com/agiangrant/infinitescroll/retained"
)

// ============================================================================
// Geometry
// ============================================================================
//
// Pure functions over host geometry. Nothing here reads or writes state.

// axisLength returns the size component along the scroll axis.
func axisLength(size retained.Size, dir Direction) float32 {
	if dir == Horizontal {
		return size.Width
	}
	return size.Height
}

// axisOffset returns the point component along the scroll axis.
func axisOffset(p retained.Point, dir Direction) float32 {
	if dir == Horizontal {
		return p.X
	}
	return p.Y
}

// leadingInset returns the top (vertical) or left (horizontal) inset.
func leadingInset(in retained.Insets, dir Direction) float32 {
	if dir == Horizontal {
		return in.Left
	}
	return in.Top
}

// endInset returns the bottom (vertical) or right (horizontal) inset.
func endInset(in retained.Insets, dir Direction) float32 {
	if dir == Horizontal {
		return in.Right
	}
	return in.Bottom
}

// addEndInset returns in with delta added to the end edge of the axis.
func addEndInset(in retained.Insets, dir Direction, delta float32) retained.Insets {
	if dir == Horizontal {
		in.Right += delta
	} else {
		in.Bottom += delta
	}
	return in
}

// ClampedContentLength returns the content length along the axis, raised to
// at least the viewport length left after the leading inset and the original
// end inset. The indicator is placed after this length, so it never lands
// inside the visible area of short content.
func ClampedContentLength(contentSize, bounds retained.Size, adjustedInset retained.Insets, originalEndInset float32, dir Direction) float32 {
	minLength := axisLength(bounds, dir) - leadingInset(adjustedInset, dir) - originalEndInset
	return max(axisLength(contentSize, dir), minLength)
}

// IndicatorCenter centers the indicator on the cross axis of the content and
// half a row past the clamped content end on the scroll axis.
func IndicatorCenter(contentSize retained.Size, clampedLength, rowSize float32, dir Direction) retained.Point {
	if dir == Horizontal {
		return retained.Point{X: clampedLength + rowSize*0.5, Y: contentSize.Height * 0.5}
	}
	return retained.Point{X: contentSize.Width * 0.5, Y: clampedLength + rowSize*0.5}
}

// IndicatorRowSize is the space reserved for the indicator: its length plus
// the margin on both sides.
func IndicatorRowSize(indicatorLength, margin float32) float32 {
	return indicatorLength + margin*2
}

// OriginalEndInset is the end inset the host had before any of the extra
// and indicator inset held by an active load.
func OriginalEndInset(adjustedInset retained.Insets, extraEndInset, indicatorInset float32, dir Direction) float32 {
	return endInset(adjustedInset, dir) - extraEndInset - indicatorInset
}

// TriggerBoundary is the axis offset past which a drag starts a load.
func TriggerBoundary(clampedLength, viewportLength, originalEndInset, triggerOffset float32) float32 {
	return clampedLength - viewportLength + originalEndInset - triggerOffset
}

// RevealRange returns the offsets at which the content end sits at the
// viewport end (lo) and at which the indicator row is fully shown (hi).
func RevealRange(clampedLength, viewportLength, originalEndInset, rowSize float32) (lo, hi float32) {
	lo = clampedLength - viewportLength + originalEndInset
	return lo, lo + rowSize
}
