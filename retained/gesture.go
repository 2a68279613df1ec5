package retained

// GestureState is the recognition phase of a continuous gesture.
type GestureState int

const (
	GesturePossible GestureState = iota
	GestureBegan
	GestureChanged
	GestureEnded
	GestureCancelled
)

func (s GestureState) String() string {
	switch s {
	case GesturePossible:
		return "possible"
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// GestureTargetID identifies a registered gesture target.
type GestureTargetID uint64

// PanGesture tracks a drag across a scroll view. Velocity is in points per
// second in the view's coordinate space: dragging the finger toward the top
// (revealing content further down) yields a negative Y velocity.
type PanGesture struct {
	state       GestureState
	translation Point
	velocity    Point

	targets    map[GestureTargetID]func(*PanGesture)
	order      []GestureTargetID
	nextTarget GestureTargetID
}

// NewPanGesture creates an idle pan gesture.
func NewPanGesture() *PanGesture {
	return &PanGesture{
		targets: make(map[GestureTargetID]func(*PanGesture)),
	}
}

// State returns the current recognition phase.
func (g *PanGesture) State() GestureState {
	return g.state
}

// Velocity returns the most recent drag velocity.
func (g *PanGesture) Velocity() Point {
	return g.velocity
}

// Translation returns the accumulated translation since the gesture began.
func (g *PanGesture) Translation() Point {
	return g.translation
}

// AddTarget registers fn to be called on every state change.
func (g *PanGesture) AddTarget(fn func(*PanGesture)) GestureTargetID {
	g.nextTarget++
	id := g.nextTarget
	g.targets[id] = fn
	g.order = append(g.order, id)
	return id
}

// RemoveTarget unregisters a target. Returns false if it was not registered.
func (g *PanGesture) RemoveTarget(id GestureTargetID) bool {
	if _, ok := g.targets[id]; !ok {
		return false
	}
	delete(g.targets, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

// TargetCount returns the number of registered targets.
func (g *PanGesture) TargetCount() int {
	return len(g.targets)
}

func (g *PanGesture) setState(state GestureState) {
	g.state = state
	if state == GestureBegan {
		g.translation = Point{}
	}

	ids := make([]GestureTargetID, len(g.order))
	copy(ids, g.order)
	for _, id := range ids {
		if fn, ok := g.targets[id]; ok {
			fn(g)
		}
	}

	if state == GestureEnded || state == GestureCancelled {
		g.state = GesturePossible
	}
}
