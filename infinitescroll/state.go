package infinitescroll

import (
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/agiangrant/infinitescroll/retained"
)

// Phase is the position of an attachment in the load cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseReserving
	PhaseShowing
	PhaseReleasing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseReserving:
		return "reserving"
	case PhaseShowing:
		return "showing"
	case PhaseReleasing:
		return "releasing"
	default:
		return "unknown"
	}
}

// loadingState is the per-host record. Fields are touched only from the
// host's loop, except through the registry which is guarded separately.
type loadingState struct {
	host Host
	log  logr.Logger

	attached  bool
	isLoading bool
	phase     Phase
	direction Direction

	indicator       Indicator
	indicatorStyle  IndicatorStyle
	indicatorMargin float32
	triggerOffset   float32

	// Inset held by an active load, released in exactly these amounts.
	extraEndInset  float32
	indicatorInset float32

	scrollToStartWhenFinished bool

	loadHandler       func(Host)
	shouldShowHandler func(Host) bool

	animationDuration time.Duration
	handlerDelay      time.Duration
	// One timer per begun load; a load finished early keeps its handler.
	pendingHandlers []retained.TimerID
	// Completions waiting on the release in flight.
	releaseCompletions []func(Host)

	pan               *retained.PanGesture
	panTarget         retained.GestureTargetID
	sizeObservation   *retained.Observation
	offsetObservation *retained.Observation
}

func newLoadingState(host Host, handler func(Host), o Options) *loadingState {
	return &loadingState{
		host:              host,
		log:               o.Logger,
		direction:         o.Direction,
		indicator:         o.Indicator,
		indicatorStyle:    o.IndicatorStyle,
		indicatorMargin:   o.IndicatorMargin,
		triggerOffset:     o.TriggerOffset,
		loadHandler:       handler,
		animationDuration: o.AnimationDuration,
		handlerDelay:      o.HandlerDelay,
	}
}

// shouldShow evaluates the visibility gate; absent gate means always.
func (s *loadingState) shouldShow() bool {
	if s.shouldShowHandler == nil {
		return true
	}
	return s.shouldShowHandler(s.host)
}

// hasContent reports whether the host shows anything along the axis.
// List-like hosts count a single point of length as empty.
func (s *loadingState) hasContent() bool {
	var threshold float32
	if _, ok := s.host.(ContentSizeRecomputer); ok {
		threshold = 1
	}
	return axisLength(s.host.ContentSize(), s.direction) > threshold
}

// ============================================================================
// Registry
// ============================================================================

// registry maps host identity to its attachment. It is process-wide and only
// mutated by Attach and Detach.
var registry = struct {
	sync.RWMutex
	states map[Host]*loadingState
}{states: make(map[Host]*loadingState)}

func lookup(host Host) *loadingState {
	if host == nil {
		return nil
	}
	registry.RLock()
	defer registry.RUnlock()
	return registry.states[host]
}

func register(host Host, s *loadingState) {
	registry.Lock()
	registry.states[host] = s
	registry.Unlock()
}

func unregister(host Host) *loadingState {
	registry.Lock()
	defer registry.Unlock()
	s := registry.states[host]
	delete(registry.states, host)
	return s
}

// current reports whether s is still the live attachment for its host.
func (s *loadingState) current() bool {
	return s.attached && lookup(s.host) == s
}

// attachedCount returns the number of live attachments.
func attachedCount() int {
	registry.RLock()
	defer registry.RUnlock()
	return len(registry.states)
}
