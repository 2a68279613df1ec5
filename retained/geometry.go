package retained

// ============================================================================
// Geometry Primitives
// ============================================================================

// Point is a location in a widget's coordinate space.
type Point struct {
	X, Y float32
}

// Size is a width/height pair.
type Size struct {
	Width, Height float32
}

// Insets are edge distances in CSS order semantics (top, left, bottom, right).
type Insets struct {
	Top, Left, Bottom, Right float32
}

// Add returns the per-edge sum of two insets.
func (in Insets) Add(o Insets) Insets {
	return Insets{
		Top:    in.Top + o.Top,
		Left:   in.Left + o.Left,
		Bottom: in.Bottom + o.Bottom,
		Right:  in.Right + o.Right,
	}
}

// Bounds is a rectangle in screen or content coordinates.
type Bounds struct {
	X, Y          float32 // Top-left corner
	Width, Height float32
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// LocalPoint converts screen coordinates to local coordinates relative to bounds.
func (b Bounds) LocalPoint(screenX, screenY float32) (localX, localY float32) {
	return screenX - b.X, screenY - b.Y
}

// Center returns the midpoint of the rectangle.
func (b Bounds) Center() Point {
	return Point{X: b.X + b.Width*0.5, Y: b.Y + b.Height*0.5}
}

// Size returns the rectangle's dimensions.
func (b Bounds) Size() Size {
	return Size{Width: b.Width, Height: b.Height}
}

func lerpPoint(from, to Point, t float32) Point {
	return Point{X: lerp(from.X, to.X, t), Y: lerp(from.Y, to.Y, t)}
}

func lerpInsets(from, to Insets, t float32) Insets {
	return Insets{
		Top:    lerp(from.Top, to.Top, t),
		Left:   lerp(from.Left, to.Left, t),
		Bottom: lerp(from.Bottom, to.Bottom, t),
		Right:  lerp(from.Right, to.Right, t),
	}
}
